// Package registry holds the in-memory domain collections shared by every
// dashboard. Collections are flat and insertion-ordered; cross-entity
// references are plain string ids resolved by linear scan. The registry
// itself enforces nothing: validation and integrity are the caller's job.
//
// Each entity type exposes a snapshot reader, an atomic update mutator and a
// replace-whole-collection setter. Edits go through Update*: the transform
// runs on a copy of the collection under the write lock, so two concurrent
// edits can never interleave and lose a write. The Set* setters replace a
// collection wholesale without reading it first; they exist for seeding and
// startup restore. Transforms must not call back into the registry.
package registry

import (
	"sync"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
)

// Collection names a registry collection in change events and in the
// optional persistence backend.
type Collection string

const (
	CollectionUsers     Collection = "users"
	CollectionStudents  Collection = "students"
	CollectionClasses   Collection = "classes"
	CollectionFinance   Collection = "finance"
	CollectionInventory Collection = "inventory"
	CollectionSite      Collection = "site"
)

// Change notifies subscribers that a collection was replaced. Size is the
// collection length after the replace (1 for the site singleton).
type Change struct {
	Collection Collection
	Size       int
}

// Registry is the shared store. A single mutex serializes every mutation so
// two edits can never interleave.
type Registry struct {
	mu        sync.RWMutex
	users     []models.User
	students  []models.Student
	classes   []models.Class
	finance   []models.FinancialRecord
	inventory []models.InventoryItem
	site      models.SiteContent

	subMu sync.Mutex
	subs  []func(Change)
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Subscribe registers fn to be called after every collection replace.
// Callbacks run outside the registry mutex and must not mutate the registry
// synchronously from within the callback.
func (r *Registry) Subscribe(fn func(Change)) {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	r.subs = append(r.subs, fn)
}

func (r *Registry) notify(c Change) {
	r.subMu.Lock()
	subs := make([]func(Change), len(r.subs))
	copy(subs, r.subs)
	r.subMu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}

// Users returns a snapshot copy of the user collection.
func (r *Registry) Users() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

// SetUsers replaces the user collection wholesale.
func (r *Registry) SetUsers(users []models.User) {
	r.mu.Lock()
	r.users = make([]models.User, len(users))
	copy(r.users, users)
	size := len(r.users)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionUsers, Size: size})
}

// UpdateUsers applies transform to a copy of the user collection under the
// write lock and stores the result.
func (r *Registry) UpdateUsers(transform func([]models.User) []models.User) {
	r.mu.Lock()
	r.users = transform(append([]models.User(nil), r.users...))
	size := len(r.users)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionUsers, Size: size})
}

// Students returns a snapshot copy of the student collection.
func (r *Registry) Students() []models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Student, len(r.students))
	copy(out, r.students)
	return out
}

// SetStudents replaces the student collection wholesale.
func (r *Registry) SetStudents(students []models.Student) {
	r.mu.Lock()
	r.students = make([]models.Student, len(students))
	copy(r.students, students)
	size := len(r.students)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionStudents, Size: size})
}

// UpdateStudents applies transform to a copy of the student collection under
// the write lock and stores the result.
func (r *Registry) UpdateStudents(transform func([]models.Student) []models.Student) {
	r.mu.Lock()
	r.students = transform(append([]models.Student(nil), r.students...))
	size := len(r.students)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionStudents, Size: size})
}

// Classes returns a snapshot copy of the class collection.
func (r *Registry) Classes() []models.Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Class, len(r.classes))
	copy(out, r.classes)
	return out
}

// SetClasses replaces the class collection wholesale.
func (r *Registry) SetClasses(classes []models.Class) {
	r.mu.Lock()
	r.classes = make([]models.Class, len(classes))
	copy(r.classes, classes)
	size := len(r.classes)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionClasses, Size: size})
}

// UpdateClasses applies transform to a copy of the class collection under the
// write lock and stores the result.
func (r *Registry) UpdateClasses(transform func([]models.Class) []models.Class) {
	r.mu.Lock()
	r.classes = transform(append([]models.Class(nil), r.classes...))
	size := len(r.classes)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionClasses, Size: size})
}

// FinancialRecords returns a snapshot copy of the ledger.
func (r *Registry) FinancialRecords() []models.FinancialRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.FinancialRecord, len(r.finance))
	copy(out, r.finance)
	return out
}

// SetFinancialRecords replaces the ledger wholesale. Seeding and startup
// restore only; appends go through UpdateFinancialRecords.
func (r *Registry) SetFinancialRecords(records []models.FinancialRecord) {
	r.mu.Lock()
	r.finance = make([]models.FinancialRecord, len(records))
	copy(r.finance, records)
	size := len(r.finance)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionFinance, Size: size})
}

// UpdateFinancialRecords applies transform to a copy of the ledger under the
// write lock and stores the result. Appends go through here so concurrent
// entries are never lost.
func (r *Registry) UpdateFinancialRecords(transform func([]models.FinancialRecord) []models.FinancialRecord) {
	r.mu.Lock()
	r.finance = transform(append([]models.FinancialRecord(nil), r.finance...))
	size := len(r.finance)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionFinance, Size: size})
}

// InventoryItems returns a snapshot copy of the inventory collection.
func (r *Registry) InventoryItems() []models.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.InventoryItem, len(r.inventory))
	copy(out, r.inventory)
	return out
}

// SetInventoryItems replaces the inventory collection wholesale.
func (r *Registry) SetInventoryItems(items []models.InventoryItem) {
	r.mu.Lock()
	r.inventory = make([]models.InventoryItem, len(items))
	copy(r.inventory, items)
	size := len(r.inventory)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionInventory, Size: size})
}

// UpdateInventoryItems applies transform to a copy of the inventory
// collection under the write lock and stores the result.
func (r *Registry) UpdateInventoryItems(transform func([]models.InventoryItem) []models.InventoryItem) {
	r.mu.Lock()
	r.inventory = transform(append([]models.InventoryItem(nil), r.inventory...))
	size := len(r.inventory)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionInventory, Size: size})
}

// Site returns the site content singleton.
func (r *Registry) Site() models.SiteContent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.site
}

// SetSite replaces the site content singleton.
func (r *Registry) SetSite(content models.SiteContent) {
	r.mu.Lock()
	r.site = content
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionSite, Size: 1})
}

// UpdateSite applies transform to the site content singleton under the write
// lock and stores the result.
func (r *Registry) UpdateSite(transform func(models.SiteContent) models.SiteContent) {
	r.mu.Lock()
	r.site = transform(r.site)
	r.mu.Unlock()
	r.notify(Change{Collection: CollectionSite, Size: 1})
}
