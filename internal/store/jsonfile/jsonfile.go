// Package jsonfile persists the expense collection as a single JSON array
// on disk. It is the default backend and carries the lenient read policy:
// a missing or unreadable file loads as an empty collection, never as an
// error. Availability of the tool wins over strict integrity reporting.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expenses/internal/core"
)

type Store struct {
	path string
}

// New ensures the backing file exists and returns a store for it. Creating
// the file up front is idempotent and mirrors first-run initialization.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
			return nil, fmt.Errorf("create expense file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat expense file: %w", err)
	}
	return &Store{path: path}, nil
}

// Load reads the whole collection. Corruption or absence downgrades to an
// empty collection with a warning; the next Save starts the file over.
func (s *Store) Load(ctx context.Context) ([]core.Expense, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		slog.WarnContext(ctx, "Expense file not readable, starting empty",
			"path", s.path, "error", err)
		return nil, nil
	}
	var list []core.Expense
	if err := json.Unmarshal(data, &list); err != nil {
		slog.WarnContext(ctx, "Expense file corrupt, starting empty",
			"path", s.path, "error", err)
		return nil, nil
	}
	return list, nil
}

// Save overwrites the file with the whole collection, pretty-printed. The
// write goes to a temp file first and is renamed into place, so a failed
// save leaves the previous contents intact.
func (s *Store) Save(ctx context.Context, list []core.Expense) error {
	if list == nil {
		list = []core.Expense{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal expenses: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write expense file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace expense file: %w", err)
	}
	slog.DebugContext(ctx, "Expense file saved", "path", s.path, "count", len(list))
	return nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}
