// Package db implements the optional persistence backend. When a database
// URL is configured the registry collections are read and mirrored through a
// generic document interface; when it is not, the no-op store keeps the whole
// application memory-only without any behavioral difference beyond losing
// state on restart.
package db

import (
	"context"
	"encoding/json"
)

// DocumentStore is the persistence boundary: select-all-ordered and insert.
// There is deliberately no update or delete; collections that need more than
// appends are reloaded wholesale at startup only.
type DocumentStore interface {
	// SelectAll returns every document of a collection in insertion order.
	SelectAll(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Insert appends one document to a collection.
	Insert(ctx context.Context, collection string, doc interface{}) error
	// Enabled reports whether a real backend is attached.
	Enabled() bool
	// Close releases the underlying connections, if any.
	Close()
}

// noopStore is used when no database is configured. Reads return empty
// results and writes are swallowed.
type noopStore struct{}

// NewNoopStore returns the stub store.
func NewNoopStore() DocumentStore {
	return noopStore{}
}

func (noopStore) SelectAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	return nil, nil
}

func (noopStore) Insert(ctx context.Context, collection string, doc interface{}) error {
	return nil
}

func (noopStore) Enabled() bool { return false }

func (noopStore) Close() {}
