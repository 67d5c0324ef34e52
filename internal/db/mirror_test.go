package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// memStore is an in-memory DocumentStore used to exercise the mirror without
// a database.
type memStore struct {
	mu   sync.Mutex
	docs map[string][]json.RawMessage
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]json.RawMessage)}
}

func (m *memStore) SelectAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[collection], nil
}

func (m *memStore) Insert(ctx context.Context, collection string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs[collection] = append(m.docs[collection], payload)
	m.mu.Unlock()
	return nil
}

func (m *memStore) count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs[collection])
}

func (m *memStore) Enabled() bool { return true }
func (m *memStore) Close()        {}

func TestLedgerMirrorPersistsAppendsOnly(t *testing.T) {
	store := newMemStore()
	reg := registry.New()

	opening := []models.FinancialRecord{{ID: "f1", Type: models.RecordIncome, Amount: 100}}
	reg.SetFinancialRecords(opening)

	NewLedgerMirror(store, reg, 1).Attach()

	// The opening record counts as already persisted and is not re-inserted.
	reg.SetUsers([]models.User{{ID: "u1"}})
	assert.Empty(t, store.docs[string(registry.CollectionFinance)])

	next := append(reg.FinancialRecords(), models.FinancialRecord{ID: "f2", Type: models.RecordExpense, Amount: 50})
	reg.SetFinancialRecords(next)

	docs := store.docs[string(registry.CollectionFinance)]
	require.Len(t, docs, 1)

	var rec models.FinancialRecord
	require.NoError(t, json.Unmarshal(docs[0], &rec))
	assert.Equal(t, "f2", rec.ID)
}

// Appends from parallel staff sessions must each be persisted exactly once.
func TestLedgerMirrorUnderConcurrentAppends(t *testing.T) {
	store := newMemStore()
	reg := registry.New()
	NewLedgerMirror(store, reg, 0).Attach()

	const workers = 8
	const perWorker = 20

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				rec := models.FinancialRecord{ID: fmt.Sprintf("w%d-r%d", worker, j)}
				reg.UpdateFinancialRecords(func(records []models.FinancialRecord) []models.FinancialRecord {
					return append(records, rec)
				})
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, store.count(string(registry.CollectionFinance)))

	seen := make(map[string]bool)
	for _, doc := range store.docs[string(registry.CollectionFinance)] {
		var rec models.FinancialRecord
		require.NoError(t, json.Unmarshal(doc, &rec))
		assert.False(t, seen[rec.ID], "record %s mirrored twice", rec.ID)
		seen[rec.ID] = true
	}
}

func TestLedgerMirrorIgnoresOtherCollections(t *testing.T) {
	store := newMemStore()
	reg := registry.New()
	NewLedgerMirror(store, reg, 0).Attach()

	reg.SetInventoryItems([]models.InventoryItem{{ID: "i1"}})
	reg.SetSite(models.SiteContent{InstitutionName: "Complexo Erasmus"})

	assert.Empty(t, store.docs)
}

func TestNoopStoreSwallowsEverything(t *testing.T) {
	store := NewNoopStore()
	assert.False(t, store.Enabled())

	require.NoError(t, store.Insert(context.Background(), "finance", models.FinancialRecord{ID: "f1"}))
	docs, err := store.SelectAll(context.Background(), "finance")
	require.NoError(t, err)
	assert.Empty(t, docs)
}
