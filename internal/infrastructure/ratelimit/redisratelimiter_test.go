package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLimiter(t *testing.T) *RedisRateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRedisRateLimiter(client)
	// strictly increasing clock so members never collide
	base := time.Now()
	tick := 0
	limiter.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
	return limiter
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name    string
		config  RateLimitConfig
		allowed int
	}{
		{"per minute", RateLimitConfig{RequestsPerMinute: 5}, 5},
		{"per hour", RateLimitConfig{RequestsPerHour: 3}, 3},
		{"tightest window wins", RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := setupTestLimiter(t)
			ctx := context.Background()

			for i := 0; i < tt.allowed; i++ {
				ok, err := limiter.Allow(ctx, "login:10.0.0.1", tt.config)
				require.NoError(t, err)
				assert.True(t, ok, "request %d should be allowed", i+1)
			}

			ok, err := limiter.Allow(ctx, "login:10.0.0.1", tt.config)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := setupTestLimiter(t)
	ctx := context.Background()
	config := RateLimitConfig{RequestsPerMinute: 1}

	ok, err := limiter.Allow(ctx, "a", config)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "b", config)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	limiter := setupTestLimiter(t)
	ctx := context.Background()
	config := RateLimitConfig{RequestsPerMinute: 2}

	for i := 0; i < 2; i++ {
		_, err := limiter.Allow(ctx, "k", config)
		require.NoError(t, err)
	}

	used, err := limiter.GetUsed(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), used)

	require.NoError(t, limiter.Reset(ctx, "k"))

	used, err = limiter.GetUsed(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, used)

	ok, err := limiter.Allow(ctx, "k", config)
	require.NoError(t, err)
	assert.True(t, ok)
}
