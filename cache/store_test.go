package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	val, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, store.Delete(ctx, "k"))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "live", "v", time.Minute))
	require.NoError(t, store.Set(ctx, "dead1", "v", 5*time.Millisecond))
	require.NoError(t, store.Set(ctx, "dead2", "v", 5*time.Millisecond))
	time.Sleep(15 * time.Millisecond)

	assert.Equal(t, 2, store.Sweep())
	assert.Equal(t, 0, store.Sweep())

	val, err := store.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}
