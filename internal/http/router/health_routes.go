package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/gesclient/internal/http/controllers/health"
)

// RegisterHealthRoutes registra /healthz y /readyz (públicos).
func RegisterHealthRoutes(r chi.Router, c *ctrl.Controllers) {
	r.Get("/healthz", c.Health.Healthz)
	r.Get("/readyz", c.Health.Readyz)
}
