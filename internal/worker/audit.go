// Package worker appends expense.added events to a durable audit log, one
// JSON object per line. The log is append-only and survives independently
// of the expense store, so it doubles as a recovery trail.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"expenses/internal/amqp"
)

type AuditWorker struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// NewAuditWorker opens (creating if needed) the audit log for appending.
func NewAuditWorker(path string) (*AuditWorker, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create audit log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return &AuditWorker{file: file, path: path}, nil
}

// HandleExpenseAdded appends one JSON line per event. An error tells the
// consumer to requeue the event.
func (w *AuditWorker) HandleExpenseAdded(ctx context.Context, msg *amqp.ExpenseAddedMessage) error {
	line, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}

	slog.InfoContext(ctx, "Audit entry recorded",
		"id", msg.ID,
		"category", msg.Category,
		"amount_cents", msg.AmountCents,
		"path", w.path)

	return nil
}

func (w *AuditWorker) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
