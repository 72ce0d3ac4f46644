package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cmdassist/pkg/adapters/memory"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunStateStoreContract(t, store)
}

func TestMemoryStore_TTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore(
		memory.WithTTL(time.Minute),
		memory.WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", domain.NewState()))
	now = now.Add(30 * time.Second)
	require.NoError(t, store.Save(ctx, "b", domain.NewState()))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	now = now.Add(45 * time.Second)
	_, err = store.Load(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.Load(ctx, "b")
	assert.NoError(t, err)

	// saving refreshes the deadline
	require.NoError(t, store.Save(ctx, "b", domain.NewState()))
	now = now.Add(50 * time.Second)
	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestMemoryStore_LoadKeepsSaveAfterExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var (
		store   *memory.Store
		resave  bool
		revived = domain.NewState()
	)
	revived.Platform = "linux"

	// The clock is read by Load between releasing the read lock and taking
	// the write lock: a Save issued there must survive the expiry sweep.
	store = memory.NewStore(
		memory.WithTTL(time.Minute),
		memory.WithClock(func() time.Time {
			if resave {
				resave = false
				require.NoError(t, store.Save(ctx, "a", revived))
			}
			return now
		}),
	)

	require.NoError(t, store.Save(ctx, "a", domain.NewState()))
	now = now.Add(2 * time.Minute)
	resave = true

	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "linux", got.Platform)

	got, err = store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "linux", got.Platform)
}
