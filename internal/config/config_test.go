package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	require.True(t, c.IsDev())
	require.Equal(t, ":3000", c.ListenAddr())
	require.Equal(t, []string{"*"}, c.Server.CORSAllowedOrigins)
	require.Equal(t, "", c.Storage.DSN)
	require.Equal(t, 2*time.Second, c.Storage.PingTimeout)
	require.Equal(t, 10*time.Second, c.Storage.ReconnectInterval)
	require.Equal(t, time.Duration(0), c.Storage.ProbeTTL)
	require.True(t, c.Storage.Seed)
	require.Equal(t, "memory", c.Cache.Kind)
	require.False(t, c.Rate.Enabled)
	require.True(t, c.Metrics.Enabled)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  app_env: prod
server:
  port: 8080
storage:
  dsn: postgres://file/db
  ping_timeout: 500ms
  seed: false
rate:
  enabled: true
  max_requests: 10
  window: 30s
`), 0o600))

	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("STORAGE_PROBE_TTL", "3s")
	t.Setenv("SERVER_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	c, err := Load(path)
	require.NoError(t, err)

	require.False(t, c.IsDev())
	require.Equal(t, ":8080", c.ListenAddr())
	require.Equal(t, "postgres://env/db", c.Storage.DSN)
	require.Equal(t, 500*time.Millisecond, c.Storage.PingTimeout)
	require.Equal(t, 3*time.Second, c.Storage.ProbeTTL)
	require.False(t, c.Storage.Seed)
	require.True(t, c.Rate.Enabled)
	require.Equal(t, 30*time.Second, c.Rate.Window)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, c.Server.CORSAllowedOrigins)
	// defaults no pisados por el archivo
	require.Equal(t, 10, c.Storage.MaxOpenConns)
}

func TestStorageDSNAlias(t *testing.T) {
	t.Setenv("STORAGE_DSN", "file:clients.db")
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "file:clients.db", c.Storage.DSN)
}

func TestServerAddrOverridesPort(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", c.ListenAddr())
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	_, err := Load("")
	require.ErrorContains(t, err, "unsupported storage driver")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
