package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"expenses/internal/core"
)

func testExpenses() []core.Expense {
	return []core.Expense{
		{
			ID:          1,
			Amount:      core.Money{Cents: 1001},
			Category:    core.Food,
			Description: "lunch",
			Date:        time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Amount:      core.Money{Cents: 500},
			Category:    core.Bills,
			Description: "No description",
			Date:        time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestNewCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "expenses.json")

	st, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("new file contains %q, want empty array", data)
	}

	// Idempotent: a second New must not clobber existing data.
	if err := st.Save(context.Background(), testExpenses()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := New(path); err != nil {
		t.Fatalf("second New: %v", err)
	}
	list, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("second New truncated the file: %d records, want 2", len(list))
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	st, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	os.Remove(path)

	list, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("missing file loaded %d records, want 0", len(list))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	cases := []string{
		"not json at all",
		`{"object": "not an array"}`,
		`[{"id": 1, "amount": "NaN"}]`,
	}
	for _, content := range cases {
		path := filepath.Join(t.TempDir(), "expenses.json")
		st, err := New(path)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		list, err := st.Load(context.Background())
		if err != nil {
			t.Fatalf("corrupt file must not error: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("corrupt file %q loaded %d records, want 0", content, len(list))
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, err := New(filepath.Join(t.TempDir(), "expenses.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := testExpenses()
	if err := st.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertEqual(t, got, want)

	// Save(Load()) is idempotent.
	if err := st.Save(ctx, got); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	again, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	assertEqual(t, again, want)
}

func TestSaveFileFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "expenses.json")
	st, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := st.Save(ctx, testExpenses()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// The on-disk contract: an array of objects with the five fields,
	// amounts as two-decimal numbers, dates in ISO-8601.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("file is not a JSON array: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("file has %d objects, want 2", len(raw))
	}
	for _, key := range []string{"id", "amount", "category", "description", "date"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("object missing field %q", key)
		}
	}
	if !strings.Contains(string(data), `"amount": 10.01`) {
		t.Errorf("amount should render with two decimals, file:\n%s", data)
	}
	dateStr, _ := raw[0]["date"].(string)
	if _, err := time.Parse(time.RFC3339, dateStr); err != nil {
		t.Errorf("date %q is not RFC 3339: %v", dateStr, err)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "expenses.json")
	st, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := st.Save(ctx, nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil collection saved as %q, want []", data)
	}
}

func assertEqual(t *testing.T, got, want []core.Expense) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Amount != w.Amount || g.Category != w.Category ||
			g.Description != w.Description || !g.Date.Equal(w.Date) {
			t.Errorf("record %d = %+v, want %+v", i, g, w)
		}
	}
}
