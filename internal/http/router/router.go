// Package router arma el router chi con todas las rutas y middlewares globales.
package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/gesclient/internal/http/controllers"
	httperrors "github.com/dropDatabas3/gesclient/internal/http/errors"
	"github.com/dropDatabas3/gesclient/internal/http/helpers"
	mw "github.com/dropDatabas3/gesclient/internal/http/middlewares"
	"github.com/dropDatabas3/gesclient/internal/metrics"
)

// Deps contiene las dependencias del router.
type Deps struct {
	Controllers *controllers.Controllers

	// MetricsHandler sirve /metrics. nil: métricas deshabilitadas.
	MetricsHandler http.Handler

	RateLimiter mw.RateLimiter // opcional
	CORSOrigins []string

	// Dev expone el stack trace en las respuestas 500 por panic.
	Dev bool
}

// AvailableRoutes es la lista publicada en las respuestas 404.
var AvailableRoutes = []string{
	"GET /api/clients",
	"GET /api/clients/:numero",
	"POST /api/clients",
	"PUT /api/clients/:numero",
	"DELETE /api/clients/:numero",
	"GET /logs",
	"GET /api-docs",
	"GET /api/api-docs",
	"GET /healthz",
	"GET /readyz",
	"GET /metrics",
}

// publicPaths no pasan por el rate limiter.
var publicPaths = []string{"/healthz", "/readyz", "/metrics"}

// New crea el handler HTTP raíz.
//
// Orden de middlewares: request id → logging → recover → cors → metrics → rate limit.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithRecover(d.Dev),
		mw.WithCORS(d.CORSOrigins),
	)
	if d.MetricsHandler != nil {
		r.Use(metrics.WithMetrics)
	}
	r.Use(mw.WithRateLimit(mw.RateLimitConfig{
		Limiter:   d.RateLimiter,
		Whitelist: publicPaths,
	}))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	c := d.Controllers
	RegisterClientRoutes(r, c.Clients)
	RegisterLogRoutes(r, c.Logs)
	RegisterDocsRoutes(r, c.Docs)
	RegisterHealthRoutes(r, c.Health)

	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	return r
}

type routeNotFoundResponse struct {
	Error           string   `json:"error"`
	Message         string   `json:"message"`
	AvailableRoutes []string `json:"availableRoutes"`
}

// routeNotFound responde 404 también para métodos no soportados en rutas conocidas.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusNotFound, routeNotFoundResponse{
		Error:           httperrors.ErrRouteNotFound.Message,
		Message:         fmt.Sprintf("La route %s %s n'existe pas", r.Method, r.URL.Path),
		AvailableRoutes: AvailableRoutes,
	})
}
