package memory

import (
	"context"
	"testing"

	"expenses/internal/core"
)

func TestSaveLoadIsolation(t *testing.T) {
	ctx := context.Background()
	st := New()

	list, err := st.Load(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("fresh store Load = %v, %v, want empty", list, err)
	}

	saved := []core.Expense{{ID: 1, Amount: core.Money{Cents: 100}, Category: core.Food}}
	if err := st.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating the caller's slice after Save must not affect the store.
	saved[0].ID = 99

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got[0].ID != 1 {
		t.Errorf("store shares memory with caller: id = %d, want 1", got[0].ID)
	}

	// Mutating the loaded slice must not affect the store either.
	got[0].ID = 42
	again, _ := st.Load(ctx)
	if again[0].ID != 1 {
		t.Errorf("Load leaked internal slice: id = %d, want 1", again[0].ID)
	}
}
