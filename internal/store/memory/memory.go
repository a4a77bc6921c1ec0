// Package memory keeps the expense collection in process memory. It backs
// ledger tests and throwaway sessions where nothing should touch disk.
package memory

import (
	"context"
	"sync"

	"expenses/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.Expense
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...), nil
}

func (s *Store) Save(_ context.Context, list []core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Expense(nil), list...)
	return nil
}
