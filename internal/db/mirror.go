package db

import (
	"context"
	"sync"
	"time"

	"github.com/erasmusedu/erasmus-portal/internal/pkg/logger"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// LedgerMirror copies new financial records into the document store as they
// are appended. Only the ledger is mirrored continuously: it is the one
// append-only collection, which is all the insert-only store interface can
// represent. Other collections are loaded from the store at startup only.
//
// Registry callbacks run on whichever goroutine performed the update, so the
// persisted cursor is guarded by its own mutex.
type LedgerMirror struct {
	store DocumentStore
	reg   *registry.Registry

	mu       sync.Mutex
	mirrored int
}

// NewLedgerMirror creates a mirror with the given number of records already
// persisted (typically the count loaded at startup).
func NewLedgerMirror(store DocumentStore, reg *registry.Registry, alreadyPersisted int) *LedgerMirror {
	return &LedgerMirror{store: store, reg: reg, mirrored: alreadyPersisted}
}

// Attach subscribes the mirror to registry changes. A write failure is logged
// and dropped: persistence is best-effort and must never surface into the
// dashboards.
func (m *LedgerMirror) Attach() {
	if !m.store.Enabled() {
		return
	}

	m.reg.Subscribe(func(c registry.Change) {
		if c.Collection != registry.CollectionFinance {
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		records := m.reg.FinancialRecords()
		if len(records) <= m.mirrored {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		for _, rec := range records[m.mirrored:] {
			if err := m.store.Insert(ctx, string(registry.CollectionFinance), rec); err != nil {
				logger.Error().Err(err).Str("recordId", rec.ID).Msg("Failed to mirror financial record")
				return
			}
			m.mirrored++
		}
	})
}
