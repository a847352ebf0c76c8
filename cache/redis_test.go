// api/cache/redis_test.go
package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/lotr/api/cache"
	lotr_errors "github.com/dev-mohitbeniwal/lotr/api/errors"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *cache.RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, cache.NewRedisCache(client)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("SetGet_RoundTrip", func(t *testing.T) {
		_, c := newTestCache(t)

		require.NoError(t, c.Set(ctx, "greeting", "hello", time.Minute))
		value, err := c.Get(ctx, "greeting")
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	})

	t.Run("Get_MissingKeyIsCacheMiss", func(t *testing.T) {
		_, c := newTestCache(t)

		_, err := c.Get(ctx, "absent")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("Get_ConnectivityErrorIsNotCacheMiss", func(t *testing.T) {
		mr, c := newTestCache(t)
		mr.Close()

		_, err := c.Get(ctx, "anything")
		require.Error(t, err)
		assert.NotErrorIs(t, err, cache.ErrCacheMiss)
		assert.ErrorIs(t, err, lotr_errors.ErrCacheOperation)
	})

	t.Run("Set_EntryExpires", func(t *testing.T) {
		mr, c := newTestCache(t)

		require.NoError(t, c.Set(ctx, "short-lived", "value", time.Minute))
		mr.FastForward(2 * time.Minute)

		_, err := c.Get(ctx, "short-lived")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("Delete_RemovesKey", func(t *testing.T) {
		_, c := newTestCache(t)

		require.NoError(t, c.Set(ctx, "doomed", "value", time.Minute))
		require.NoError(t, c.Delete(ctx, "doomed"))

		_, err := c.Get(ctx, "doomed")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)

		// Deleting an absent key is not an error.
		assert.NoError(t, c.Delete(ctx, "doomed"))
	})

	t.Run("Flush_ClearsEverything", func(t *testing.T) {
		_, c := newTestCache(t)

		require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
		require.NoError(t, c.Set(ctx, "b", "2", time.Minute))
		require.NoError(t, c.Flush(ctx))

		_, err := c.Get(ctx, "a")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
		_, err = c.Get(ctx, "b")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("Increment_CountsAndRefreshesTTL", func(t *testing.T) {
		mr, c := newTestCache(t)

		count, err := c.Increment(ctx, "counter", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		mr.FastForward(30 * time.Second)

		count, err = c.Increment(ctx, "counter", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		// The second increment re-armed the full TTL, so the counter
		// survives past the original deadline.
		mr.FastForward(45 * time.Second)
		value, err := c.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, "2", value)

		mr.FastForward(time.Minute)
		_, err = c.Get(ctx, "counter")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})
}
