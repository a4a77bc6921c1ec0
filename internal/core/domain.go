package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Bills          Category = "Bills"
	Healthcare     Category = "Healthcare"
	Education      Category = "Education"
	Other          Category = "Other"
)

// NoDescription is stored when the caller provides no description.
const NoDescription = "No description"

type (
	// Category is one of the fixed expense categories. The set is closed;
	// validation and summaries rely on exact membership.
	Category string

	// Expense is one recorded expenditure.
	Expense struct {
		ID          int64     `json:"id"`
		Amount      Money     `json:"amount"`
		Category    Category  `json:"category"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
	}
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidID       = errors.New("invalid expense id")
	ErrUnknownCategory = errors.New("unknown category")
)

var categories = []Category{
	Food, Transportation, Entertainment, Shopping,
	Bills, Healthcare, Education, Other,
}

// Categories returns a copy of the category set in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// CategoryNames returns the category set as plain strings.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}

// ParseCategory resolves a name against the category set. Membership is
// exact; case-insensitive matching is a query concern, not a validation one.
func ParseCategory(name string) (Category, error) {
	for _, c := range categories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q: choose from %s",
		ErrUnknownCategory, name, strings.Join(CategoryNames(), ", "))
}

func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

func (c Category) String() string {
	return string(c)
}

// Matches reports whether name refers to this category, ignoring case.
func (c Category) Matches(name string) bool {
	return strings.EqualFold(string(c), name)
}

func (e Expense) Validate() error {
	if e.ID < 1 {
		return ErrInvalidID
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.IsValid() {
		_, err := ParseCategory(string(e.Category))
		return err
	}
	if e.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// NormalizeDescription trims surrounding whitespace and substitutes the
// placeholder for empty input.
func NormalizeDescription(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoDescription
	}
	return s
}

// NextID returns the identifier for the next expense: highest existing id
// plus one, or 1 for an empty collection. Recomputed from the current
// collection on every call, so it follows out-of-process changes to the
// backing file but is not safe under concurrent writers.
func NextID(list []Expense) int64 {
	var max int64
	for _, e := range list {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
