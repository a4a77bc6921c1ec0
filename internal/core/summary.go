package core

import "sort"

// CategoryAmount is an amount aggregated under one category.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// Total sums the amounts of a collection. The empty collection sums to zero.
// Amounts are whole cents, so the sum is exact at two decimals.
func Total(list []Expense) Money {
	var cents int64
	for _, e := range list {
		cents += e.Amount.Cents
	}
	return Money{Cents: cents}
}

// SummarizeByCategory accumulates amounts per category. Categories without
// expenses are absent from the result.
func SummarizeByCategory(list []Expense) map[Category]Money {
	summary := make(map[Category]Money)
	for _, e := range list {
		m := summary[e.Category]
		m.Cents += e.Amount.Cents
		summary[e.Category] = m
	}
	return summary
}

// SortedSummary flattens a summary into entries ordered by amount
// descending, ties broken by category name. Map iteration order is not
// significant; presentation wants the biggest spenders first.
func SortedSummary(summary map[Category]Money) []CategoryAmount {
	entries := make([]CategoryAmount, 0, len(summary))
	for c, m := range summary {
		entries = append(entries, CategoryAmount{Category: c, Amount: m})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount.Cents != entries[j].Amount.Cents {
			return entries[i].Amount.Cents > entries[j].Amount.Cents
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}

// FilterByCategory returns the expenses whose category matches name,
// ignoring case. Unknown names simply yield an empty result.
func FilterByCategory(list []Expense, name string) []Expense {
	var out []Expense
	for _, e := range list {
		if e.Category.Matches(name) {
			out = append(out, e)
		}
	}
	return out
}
