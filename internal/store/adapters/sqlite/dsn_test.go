package sqlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	require.Equal(t, "/tmp/clients.db", normalizeDSN("sqlite:///tmp/clients.db"))
	require.Equal(t, "clients.db", normalizeDSN("sqlite:clients.db"))
	require.Equal(t, "file:x?mode=memory&cache=shared", normalizeDSN("file:x?mode=memory&cache=shared"))

	for _, dsn := range []string{":memory:", "sqlite::memory:", " :memory: "} {
		got := normalizeDSN(dsn)
		require.True(t, strings.HasPrefix(got, "file:mem-"), got)
		require.True(t, strings.HasSuffix(got, "?mode=memory&cache=shared"), got)
		require.True(t, isMemoryDSN(got))
	}
	require.NotEqual(t, normalizeDSN(":memory:"), normalizeDSN(":memory:"))
	require.False(t, isMemoryDSN("/var/lib/clients.db"))
}
