// Package ledger enforces the expense business rules: validation,
// identifier assignment, filtering and aggregation. It holds no state of
// its own; every operation is a function of the store's current content
// and its arguments. Mutations run a full load-modify-save cycle, which is
// fine for a single writer and documented as unsafe for concurrent ones.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"expenses/internal/core"
	"expenses/internal/store"
)

// EventPublisher emits an event after an expense has been durably saved.
// Publishing is best-effort: a publish failure never undoes a save.
type EventPublisher interface {
	PublishExpenseAdded(ctx context.Context, e core.Expense) error
}

type Ledger struct {
	store  store.Store
	events EventPublisher
}

// New builds a ledger over the given store. events may be nil to disable
// event publishing.
func New(st store.Store, events EventPublisher) *Ledger {
	return &Ledger{
		store:  st,
		events: events,
	}
}

// AddExpense validates the input, assigns the next identifier, stamps the
// creation time and persists the grown collection. The saved expense is
// returned. Validation failures and save failures leave the persisted
// collection untouched.
func (l *Ledger) AddExpense(ctx context.Context, amount float64, category, description string) (core.Expense, error) {
	if amount <= 0 {
		return core.Expense{}, core.ErrInvalidAmount
	}
	cat, err := core.ParseCategory(category)
	if err != nil {
		return core.Expense{}, err
	}
	money, err := core.MoneyFromFloat(amount)
	if err != nil {
		return core.Expense{}, err
	}

	list, err := l.store.Load(ctx)
	if err != nil {
		return core.Expense{}, fmt.Errorf("load expenses: %w", err)
	}

	expense := core.Expense{
		ID:          core.NextID(list),
		Amount:      money,
		Category:    cat,
		Description: core.NormalizeDescription(description),
		Date:        time.Now(),
	}

	list = append(list, expense)
	if err := l.store.Save(ctx, list); err != nil {
		return core.Expense{}, fmt.Errorf("save expenses: %w", err)
	}

	slog.InfoContext(ctx, "Expense recorded",
		"id", expense.ID,
		"amount_cents", expense.Amount.Cents,
		"category", expense.Category)

	if l.events != nil {
		if err := l.events.PublishExpenseAdded(ctx, expense); err != nil {
			// The expense is saved; losing an event is not worth failing the add.
			slog.ErrorContext(ctx, "Failed to publish expense.added event",
				"id", expense.ID, "error", err)
		}
	}

	return expense, nil
}

// Expenses returns the full persisted collection in insertion order.
func (l *Ledger) Expenses(ctx context.Context) ([]core.Expense, error) {
	list, err := l.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return list, nil
}

// ExpensesByCategory returns the expenses whose category matches name,
// ignoring case. An unknown name yields an empty result, not an error.
func (l *Ledger) ExpensesByCategory(ctx context.Context, name string) ([]core.Expense, error) {
	list, err := l.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return core.FilterByCategory(list, name), nil
}

// Total sums the persisted collection. Use core.Total to sum an already
// loaded or filtered collection.
func (l *Ledger) Total(ctx context.Context) (core.Money, error) {
	list, err := l.store.Load(ctx)
	if err != nil {
		return core.Money{}, fmt.Errorf("load expenses: %w", err)
	}
	return core.Total(list), nil
}

// CategorySummary accumulates spending per category over the persisted
// collection. Categories without expenses are absent.
func (l *Ledger) CategorySummary(ctx context.Context) (map[core.Category]core.Money, error) {
	list, err := l.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return core.SummarizeByCategory(list), nil
}

// Categories returns a copy of the fixed category set.
func (l *Ledger) Categories() []core.Category {
	return core.Categories()
}
