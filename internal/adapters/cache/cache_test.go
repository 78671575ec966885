package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/medibook/internal/domain/providers"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

func exerciseProvider(t *testing.T, cache providers.CacheProvider) {
	ctx := context.Background()

	_, err := cache.Get(ctx, "medibook:test:missing")
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, cache.Set(ctx, "medibook:test:key", []byte("value"), time.Minute))
	got, err := cache.Get(ctx, "medibook:test:key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	require.NoError(t, cache.Delete(ctx, "medibook:test:key"))
	_, err = cache.Get(ctx, "medibook:test:key")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMemoryAdapter(t *testing.T) {
	exerciseProvider(t, NewMemoryAdapter())
}

func TestMemoryAdapter_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryAdapter()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "short", []byte("a"), time.Second))
	require.NoError(t, cache.Set(ctx, "forever", []byte("b"), 0))

	now = now.Add(2 * time.Second)

	_, err := cache.Get(ctx, "short")
	assert.True(t, apperrors.IsNotFound(err))

	got, err := cache.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestMemoryAdapter_CopiesValues(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryAdapter()

	value := []byte("abc")
	require.NoError(t, cache.Set(ctx, "k", value, 0))
	value[0] = 'z'

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestRedisAdapter(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	exerciseProvider(t, NewRedisAdapter(client))
}
