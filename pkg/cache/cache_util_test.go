package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *Cache) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewCacheFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return mr, c
}

func TestJSONRoundTripAndMiss(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	var got map[string]int
	assert.ErrorIs(t, c.GetJSON(ctx, "profiles", "u1", &got), ErrMiss)

	require.NoError(t, c.SetJSON(ctx, "profiles", "u1", map[string]int{"heightCm": 170}, time.Minute))
	assert.True(t, mr.Exists("profiles:u1"))
	require.NoError(t, c.GetJSON(ctx, "profiles", "u1", &got))
	assert.Equal(t, 170, got["heightCm"])

	require.NoError(t, c.Delete(ctx, "profiles", "u1"))
	assert.ErrorIs(t, c.GetJSON(ctx, "profiles", "u1", &got), ErrMiss)
}

func TestIncrWithExpire(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		n, err := c.IncrWithExpire(ctx, "global", "ip:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	ttl, err := c.GetTTL(ctx, "global", "ip:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(time.Minute + time.Second)
	n, err := c.IncrWithExpire(ctx, "global", "ip:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "window restarts after expiry")
}
