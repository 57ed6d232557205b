package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":                      "/",
		"/":                     "/",
		"/api/clients":          "/api/clients",
		"/api/clients/CLI001":   "/api/clients/:param",
		"/api/clients/01234567": "/api/clients/:param",
		"/api/api-docs":         "/api/api-docs",
		"/logs?x=1":             "/logs",
	}
	for in, want := range cases {
		require.Equal(t, want, normalizePath(in), in)
	}
	require.Equal(t, "/api/clients/:param", normalizePath("/api/clients/3f2c6f7e-6a39-4b0e-a1a0-0d3c1f0f0b9a"))
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()

	h1, err := Register(Config{Registry: reg, Gatherer: reg})
	require.NoError(t, err)
	require.NotNil(t, h1)

	_, err = Register(Config{Registry: reg, Gatherer: reg})
	require.NoError(t, err)
}

func TestWithMetricsExposesCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler, err := Register(Config{Registry: reg, Gatherer: reg})
	require.NoError(t, err)

	app := WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/logs", nil))

	SetStoreMode(true)
	RecordClientOperation("get", "success", "memory")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	out := string(body)
	require.True(t, strings.Contains(out, `http_requests_total{method="GET",path="/logs",status="418"}`), out)
	require.Contains(t, out, "store_durable_active 1")
	require.Contains(t, out, `client_operations_total{op="get",outcome="success",store="memory"}`)
}
