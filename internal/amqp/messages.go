package amqp

import (
	"encoding/json"
	"time"

	"expenses/internal/core"
)

// ExpenseAddedMessage is published after an expense is durably saved. It
// carries enough of the record for the audit worker to log it without
// reading the store.
type ExpenseAddedMessage struct {
	ID          int64     `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExpenseAddedMessage builds the event for a freshly saved expense.
func NewExpenseAddedMessage(e core.Expense) *ExpenseAddedMessage {
	return &ExpenseAddedMessage{
		ID:          e.ID,
		AmountCents: e.Amount.Cents,
		Category:    string(e.Category),
		Description: e.Description,
		Date:        e.Date,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ExpenseAddedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseAddedMessageFromJSON parses a message from JSON bytes.
func ExpenseAddedMessageFromJSON(data []byte) (*ExpenseAddedMessage, error) {
	var msg ExpenseAddedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
