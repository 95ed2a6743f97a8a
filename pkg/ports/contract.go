package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/cinta/pkg/domain"
)

// RunRunStoreContract exercises the RunStore semantics against any
// implementation. Adapter test suites call this to prove compliance.
func RunRunStoreContract(t *testing.T, store RunStore) {
	t.Helper()
	ctx := context.Background()

	// 1. Load non-existent run
	if _, err := store.Load(ctx, "missing"); !errors.Is(err, domain.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}

	// 2. Save a result
	result := &domain.RunResult{
		Input:      "aabb",
		Accepted:   true,
		FinalState: "qf",
		FinalTape:  "XXYY",
		IDs:        []string{"[q0]aabb", "[qf]XXYY"},
		Steps:      1,
	}
	if err := store.Save(ctx, "run-1", result); err != nil {
		t.Fatalf("failed to save result: %v", err)
	}

	// 3. Load it back
	loaded, err := store.Load(ctx, "run-1")
	if err != nil {
		t.Fatalf("failed to load result: %v", err)
	}
	if loaded.Input != result.Input || loaded.FinalState != result.FinalState {
		t.Errorf("loaded result mismatch: got %+v", loaded)
	}
	if len(loaded.IDs) != len(result.IDs) {
		t.Errorf("expected %d IDs, got %d", len(result.IDs), len(loaded.IDs))
	}
	if !loaded.Accepted {
		t.Error("expected accepted result")
	}

	// 4. Mutating the loaded copy must not leak into the store
	loaded.IDs[0] = "tampered"
	again, err := store.Load(ctx, "run-1")
	if err != nil {
		t.Fatalf("failed to reload result: %v", err)
	}
	if again.IDs[0] != "[q0]aabb" {
		t.Errorf("store leaked a mutable reference: got %q", again.IDs[0])
	}

	// 5. List includes the run
	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	found := false
	for _, id := range ids {
		if id == "run-1" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected run-1 in list, got %v", ids)
	}

	// 6. Delete and verify absence
	if err := store.Delete(ctx, "run-1"); err != nil {
		t.Fatalf("failed to delete run: %v", err)
	}
	if _, err := store.Load(ctx, "run-1"); !errors.Is(err, domain.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound after delete, got %v", err)
	}
}
