package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/cinta/pkg/adapters/memory"
	"github.com/aretw0/cinta/pkg/domain"
	"github.com/aretw0/cinta/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	ports.RunRunStoreContract(t, memory.NewStore())
}

func TestStore_ListSorted(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	for _, id := range []string{"b-2", "a-1", "c-3"} {
		require.NoError(t, store.Save(ctx, id, &domain.RunResult{Input: id}))
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1", "b-2", "c-3"}, ids)
}

func TestStore_SaveCopiesResult(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	result := &domain.RunResult{Input: "a", IDs: []string{"[q0]a"}}
	require.NoError(t, store.Save(ctx, "run", result))

	// Mutating the caller's value after Save must not affect the stored copy.
	result.IDs[0] = "tampered"

	loaded, err := store.Load(ctx, "run")
	require.NoError(t, err)
	assert.Equal(t, "[q0]a", loaded.IDs[0])
}
