package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"expenses/internal/ledger"
	"expenses/internal/store/memory"
)

func runScript(t *testing.T, led *ledger.Ledger, script string) string {
	t.Helper()
	var out bytes.Buffer
	app := newApp(led, strings.NewReader(script), &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestAppAddAndList(t *testing.T) {
	led := ledger.New(memory.New(), nil)

	// Add 10.005 under Food (category 1) with a description, then list.
	out := runScript(t, led, "1\n10.005\n1\nlunch\n2\n6\n")

	if !strings.Contains(out, "✓ Expense added successfully!") {
		t.Errorf("missing add confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Amount: $10.01") {
		t.Errorf("amount should round half-up to 10.01:\n%s", out)
	}
	if !strings.Contains(out, "TOTAL:") || !strings.Contains(out, "$10.01") {
		t.Errorf("listing should show the total:\n%s", out)
	}
}

func TestAppRejectsBadInput(t *testing.T) {
	led := ledger.New(memory.New(), nil)

	out := runScript(t, led, "1\n-5\n1\nabc\n6\n")
	if !strings.Contains(out, "Error: Amount must be positive!") {
		t.Errorf("negative amount should be rejected at the prompt:\n%s", out)
	}
	if !strings.Contains(out, "Error: Please enter a valid amount!") {
		t.Errorf("non-numeric amount should be rejected:\n%s", out)
	}

	list, err := led.Expenses(context.Background())
	if err != nil {
		t.Fatalf("Expenses: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("no expense should be recorded, got %d", len(list))
	}
}

func TestAppSummary(t *testing.T) {
	ctx := context.Background()
	led := ledger.New(memory.New(), nil)
	led.AddExpense(ctx, 10, "Food", "a")
	led.AddExpense(ctx, 5, "Food", "b")
	led.AddExpense(ctx, 20, "Bills", "c")

	out := runScript(t, led, "4\n6\n")

	if !strings.Contains(out, "Bills") || !strings.Contains(out, "$20.00") {
		t.Errorf("summary missing Bills total:\n%s", out)
	}
	if !strings.Contains(out, "$15.00") {
		t.Errorf("summary missing Food total:\n%s", out)
	}
	// Bills (20.00) outspends Food (15.00) and must come first.
	if strings.Index(out, "Bills") > strings.Index(out, "$15.00") {
		t.Errorf("summary should be sorted by amount descending:\n%s", out)
	}
	if !strings.Contains(out, "100.0%") {
		t.Errorf("summary missing total percentage:\n%s", out)
	}
}

func TestAppTotalSpending(t *testing.T) {
	ctx := context.Background()
	led := ledger.New(memory.New(), nil)
	led.AddExpense(ctx, 10, "Food", "a")
	led.AddExpense(ctx, 20, "Bills", "b")

	out := runScript(t, led, "5\n6\n")

	if !strings.Contains(out, "Total Expenses: 2") {
		t.Errorf("missing expense count:\n%s", out)
	}
	if !strings.Contains(out, "Total Amount: $30.00") {
		t.Errorf("missing total amount:\n%s", out)
	}
	if !strings.Contains(out, "Average per Expense: $15.00") {
		t.Errorf("missing average:\n%s", out)
	}
}

func TestAppViewByCategory(t *testing.T) {
	ctx := context.Background()
	led := ledger.New(memory.New(), nil)
	led.AddExpense(ctx, 10, "Food", "groceries")
	led.AddExpense(ctx, 20, "Bills", "rent")

	// Food is option 1 in the category list.
	out := runScript(t, led, "3\n1\n6\n")

	if !strings.Contains(out, "--- Food Expenses ---") {
		t.Errorf("missing category header:\n%s", out)
	}
	if !strings.Contains(out, "groceries") {
		t.Errorf("missing matching expense:\n%s", out)
	}
	if strings.Contains(out, "rent") {
		t.Errorf("other categories must be filtered out:\n%s", out)
	}
	if !strings.Contains(out, "Total for Food: $10.00") {
		t.Errorf("missing category total:\n%s", out)
	}
}

func TestAppEmptyStates(t *testing.T) {
	led := ledger.New(memory.New(), nil)

	out := runScript(t, led, "2\n4\n6\n")
	if !strings.Contains(out, "No expenses found.") {
		t.Errorf("missing empty listing message:\n%s", out)
	}
	if !strings.Contains(out, "No expenses to summarize.") {
		t.Errorf("missing empty summary message:\n%s", out)
	}
}
