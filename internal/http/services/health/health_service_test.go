package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	dto "github.com/dropDatabas3/gesclient/internal/http/dto/health"
	"github.com/dropDatabas3/gesclient/internal/store"
)

type fakeProbe struct {
	configured bool
	pingErr    error
	mode       store.Mode
}

func (f fakeProbe) Configured() bool                    { return f.configured }
func (f fakeProbe) Ping(ctx context.Context) error      { return f.pingErr }
func (f fakeProbe) Mode(ctx context.Context) store.Mode { return f.mode }

func TestCheck(t *testing.T) {
	cacheDown := func(ctx context.Context) error { return errors.New("dial tcp: refused") }
	cacheUp := func(ctx context.Context) error { return nil }

	tests := []struct {
		name       string
		deps       Deps
		wantStatus string
		wantMode   string
		wantStore  string
		wantCache  string
	}{
		{
			name:       "sin store",
			deps:       Deps{},
			wantStatus: dto.StatusUnavailable,
			wantStore:  "error",
		},
		{
			name:       "solo memoria",
			deps:       Deps{Store: fakeProbe{mode: store.ModeMemory}},
			wantStatus: dto.StatusReady,
			wantMode:   "memory",
			wantStore:  "disabled",
			wantCache:  "disabled",
		},
		{
			name:       "durable sano",
			deps:       Deps{Store: fakeProbe{configured: true, mode: store.ModeDurable}, CacheCheck: cacheUp},
			wantStatus: dto.StatusReady,
			wantMode:   "durable",
			wantStore:  "ok",
			wantCache:  "ok",
		},
		{
			name:       "durable caído",
			deps:       Deps{Store: fakeProbe{configured: true, pingErr: errors.New("refused"), mode: store.ModeMemory}},
			wantStatus: dto.StatusDegraded,
			wantMode:   "memory",
			wantStore:  "error",
			wantCache:  "disabled",
		},
		{
			name:       "cache caído",
			deps:       Deps{Store: fakeProbe{configured: true, mode: store.ModeDurable}, CacheCheck: cacheDown},
			wantStatus: dto.StatusDegraded,
			wantMode:   "durable",
			wantStore:  "ok",
			wantCache:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.deps.Version = "test"
			resp := NewHealthService(tt.deps).Check(context.Background())

			require.Equal(t, tt.wantStatus, resp.Status)
			require.Equal(t, tt.wantMode, resp.Mode)
			require.Equal(t, "test", resp.Version)
			require.Equal(t, tt.wantStore, resp.Components["store"].Status)
			if tt.wantCache != "" {
				require.Equal(t, tt.wantCache, resp.Components["cache"].Status)
			}
			require.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestVersionFromEnv(t *testing.T) {
	t.Setenv("SERVICE_VERSION", "1.2.3")
	resp := NewHealthService(Deps{Store: fakeProbe{mode: store.ModeMemory}}).Check(context.Background())
	require.Equal(t, "1.2.3", resp.Version)
}
