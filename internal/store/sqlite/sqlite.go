// Package sqlite persists the expense collection in an SQLite database.
// It keeps the same whole-collection contract as the other backends: Save
// replaces every row in one transaction, Load reads them back in id order.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"expenses/internal/core"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and runs pending
// schema migrations.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the whole collection in id order. Ids are assigned
// monotonically, so id order is insertion order.
func (s *Store) Load(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, amount_cents, category, description, date
		 FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var list []core.Expense
	for rows.Next() {
		var (
			e       core.Expense
			cents   int64
			dateRaw string
		)
		if err := rows.Scan(&e.ID, &cents, &e.Category, &e.Description, &dateRaw); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Amount = core.Money{Cents: cents}
		date, err := time.Parse(time.RFC3339Nano, dateRaw)
		if err != nil {
			return nil, fmt.Errorf("parse expense date %q: %w", dateRaw, err)
		}
		e.Date = date
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return list, nil
}

// Save replaces all rows with the given collection in a single transaction,
// matching the whole-file rewrite of the jsonfile backend.
func (s *Store) Save(ctx context.Context, list []core.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (id, amount_cents, category, description, date)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range list {
		_, err := stmt.ExecContext(ctx,
			e.ID, e.Amount.Cents, string(e.Category), e.Description,
			e.Date.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert expense %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.DebugContext(ctx, "Expenses saved to SQLite", "count", len(list))
	return nil
}
