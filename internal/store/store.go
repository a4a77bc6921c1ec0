// Package store defines the persistence port for the expense collection.
// Implementations live in the subpackages jsonfile, sqlite and memory.
package store

import (
	"context"

	"expenses/internal/core"
)

// Store persists the expense collection as a whole. There are no partial
// updates: every mutation goes through a full Load, modify, Save cycle.
type Store interface {
	// Load reads the entire collection in insertion order.
	Load(ctx context.Context) ([]core.Expense, error)

	// Save replaces the entire persisted collection. On error nothing was
	// persisted and the previous state still stands.
	Save(ctx context.Context, list []core.Expense) error
}
