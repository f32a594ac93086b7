package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "stats:all", `{"vehicles":{}}`, 30*time.Second))
	require.NoError(t, cache.Set(ctx, "forever", "x", 0))

	val, ok := cache.Get(ctx, "stats:all")
	assert.True(t, ok)
	assert.Equal(t, `{"vehicles":{}}`, val)

	now = now.Add(30 * time.Second)
	_, ok = cache.Get(ctx, "stats:all")
	assert.False(t, ok, "entry should expire at its deadline")

	val, ok = cache.Get(ctx, "forever")
	assert.True(t, ok)
	assert.Equal(t, "x", val)

	_, ok = cache.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestMemoryCacheSetSweepsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	for _, dealer := range []string{"a", "b", "c", "d"} {
		require.NoError(t, cache.Set(ctx, "admin_stats:"+dealer, "{}", 30*time.Second))
	}
	require.NoError(t, cache.Set(ctx, "forever", "x", 0))
	assert.Equal(t, 5, cache.Len())

	now = now.Add(time.Minute)
	require.NoError(t, cache.Set(ctx, "admin_stats:e", "{}", 30*time.Second))
	assert.Equal(t, 2, cache.Len())

	_, ok := cache.Get(ctx, "admin_stats:a")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "admin_stats:e")
	assert.True(t, ok)
}

func TestMemoryCacheExpiredReadKeepsFreshReplacement(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }
	require.NoError(t, cache.Set(ctx, "admin_stats:", "stale", time.Second))

	// a Set lands after Get has seen the stale entry but before it takes the write lock
	later := now.Add(2 * time.Second)
	replaced := false
	cache.now = func() time.Time {
		if !replaced {
			replaced = true
			cache.data["admin_stats:"] = memoryEntry{value: "fresh", expiresAt: later.Add(time.Hour)}
		}
		return later
	}

	_, ok := cache.Get(ctx, "admin_stats:")
	assert.False(t, ok)

	val, ok := cache.Get(ctx, "admin_stats:")
	require.True(t, ok)
	assert.Equal(t, "fresh", val)
}
