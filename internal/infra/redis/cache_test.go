package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, zap.NewNop(), "portal-test"), mr
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "search:abc", []byte(`{"results":[]}`), time.Minute)
	require.NoError(t, err)

	data, err := cache.Get(ctx, "search:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"results":[]}`), data)
}

func TestCache_Get_Missing(t *testing.T) {
	cache, _ := setupTestCache(t)

	data, err := cache.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Second))

	mr.FastForward(2 * time.Second)

	data, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestCache_Delete(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))

	data, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Deleting a missing key is not an error
	assert.NoError(t, cache.Delete(ctx, "k"))
}

func TestCache_Clear_OnlyOwnPrefix(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Minute))
	mr.Set("other-app:c", "3")

	require.NoError(t, cache.Clear(ctx))

	data, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Keys outside the prefix survive
	assert.True(t, mr.Exists("other-app:c"))
}
