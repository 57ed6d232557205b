package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	c := NewMemory("test")
	ctx := context.Background()

	_, err := c.Get(ctx, "k")
	require.True(t, IsNotFound(err))

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", v)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTTLExpires(t *testing.T) {
	c := NewMemory("")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 20*time.Millisecond))
	time.Sleep(50 * time.Millisecond)

	_, err := c.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewDefaultsToMemory(t *testing.T) {
	c, err := New(context.Background(), Config{Driver: "unknown"})
	require.NoError(t, err)
	require.Equal(t, "memory", c.Driver())
	require.NoError(t, c.Ping(context.Background()))
	require.NoError(t, c.Close())
}

func TestPrefixed(t *testing.T) {
	require.Equal(t, "k", prefixed("", "k"))
	require.Equal(t, "app:k", prefixed("app", "k"))
}
