package redis_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redisstore "github.com/aretw0/cinta/internal/adapters/redis"
	"github.com/aretw0/cinta/pkg/domain"
	"github.com/aretw0/cinta/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redisstore.Option) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redisstore.NewFromClient(client, opts...)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunRunStoreContract(t, store)
}

func TestStore_KeyPrefix(t *testing.T) {
	store, mr := newTestStore(t, redisstore.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-1", &domain.RunResult{Input: "a"}))

	assert.True(t, mr.Exists("custom:run-1"))
	assert.True(t, mr.Exists("custom:index"))
}

func TestStore_TTLExpiresRuns(t *testing.T) {
	store, mr := newTestStore(t, redisstore.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-1", &domain.RunResult{Input: "a"}))

	_, err := store.Load(ctx, "run-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	// The index entry is pruned lazily on List.
	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_ListSurvivesWithoutTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-1", &domain.RunResult{Input: "a"}))
	mr.FastForward(24 * time.Hour)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"run-1"}, ids)
}
