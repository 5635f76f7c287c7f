package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCacheMemory_HitWithinTTL(t *testing.T) {
	cache := NewPageCacheMemory()
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.SetClock(func() time.Time { return now })

	require.NoError(t, cache.Put(ctx, "index_page", []byte("body-1"), 20*time.Second))

	body, ok, err := cache.Get(ctx, "index_page")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("body-1"), body)

	// Still cached one tick before the deadline.
	now = now.Add(19 * time.Second)
	body, ok, err = cache.Get(ctx, "index_page")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("body-1"), body)
}

func TestPageCacheMemory_ExpiresAtTTL(t *testing.T) {
	cache := NewPageCacheMemory()
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.SetClock(func() time.Time { return now })

	require.NoError(t, cache.Put(ctx, "index_page", []byte("stale"), 20*time.Second))

	now = now.Add(20 * time.Second)
	_, ok, err := cache.Get(ctx, "index_page")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPageCacheMemory_Flush(t *testing.T) {
	cache := NewPageCacheMemory()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "index_page", []byte("x"), time.Minute))
	require.NoError(t, cache.Flush(ctx))

	_, ok, err := cache.Get(ctx, "index_page")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPageCacheMemory_SweepRemovesOnlyExpired(t *testing.T) {
	cache := NewPageCacheMemory()
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.SetClock(func() time.Time { return now })

	require.NoError(t, cache.Put(ctx, "short", []byte("a"), 10*time.Second))
	require.NoError(t, cache.Put(ctx, "long", []byte("b"), 10*time.Minute))

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, cache.Sweep())

	_, ok, err := cache.Get(ctx, "long")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPageCacheMemory_GetReturnsCopy(t *testing.T) {
	cache := NewPageCacheMemory()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "k", []byte("abc"), time.Minute))
	body, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	body[0] = 'z'
	again, _, _ := cache.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}
