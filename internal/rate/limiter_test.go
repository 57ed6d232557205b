package rate

import (
	"context"
	"os"
	"testing"
	"time"

	rdb "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterBlocksAfterBurst(t *testing.T) {
	l := NewMemoryLimiter(3, time.Minute)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		require.True(t, res.Allowed, "request %d", i)
	}

	res, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Equal(t, int64(0), res.Remaining)
	require.InDelta(t, 20, res.RetryAfter.Seconds(), 1)

	// otra key tiene su propio bucket
	res, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	require.True(t, res.Allowed)
	require.Equal(t, int64(2), res.Remaining)
}

func TestMemoryLimiterRefills(t *testing.T) {
	l := NewMemoryLimiter(2, time.Minute)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, _ := l.Allow(ctx, "k")
		require.True(t, res.Allowed)
	}
	res, _ := l.Allow(ctx, "k")
	require.False(t, res.Allowed)

	now = now.Add(30 * time.Second)
	res, _ = l.Allow(ctx, "k")
	require.True(t, res.Allowed)
}

func TestWindowResult(t *testing.T) {
	res := windowResult(5, 5, 10*time.Second, time.Minute)
	require.True(t, res.Allowed)
	require.Equal(t, int64(0), res.Remaining)

	res = windowResult(6, 5, -1, time.Minute)
	require.False(t, res.Allowed)
	require.Equal(t, time.Minute, res.RetryAfter)
}

func TestNewPicksBackend(t *testing.T) {
	_, ok := New(nil, Config{MaxRequests: 10, Window: time.Second}).(*MemoryLimiter)
	require.True(t, ok)

	client := rdb.NewClient(&rdb.Options{Addr: "localhost:0"})
	defer client.Close()
	rl, ok := New(client, Config{MaxRequests: 10, Window: time.Second, Prefix: "gesclient"}).(*RedisLimiter)
	require.True(t, ok)
	require.Equal(t, "gesclient:rl:", rl.Prefix)
}

func TestRedisLimiterFixedWindow(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := rdb.NewClient(&rdb.Options{Addr: addr})
	defer client.Close()

	l := NewRedisLimiter(client, "test:rl:"+time.Now().Format("150405.000")+":", 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := l.Allow(ctx, "127.0.0.1")
		require.NoError(t, err)
		require.True(t, res.Allowed)
	}
	res, err := l.Allow(ctx, "127.0.0.1")
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Greater(t, res.RetryAfter, time.Duration(0))
}
