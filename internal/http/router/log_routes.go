package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/gesclient/internal/http/controllers/logs"
)

// RegisterLogRoutes registra GET /logs.
func RegisterLogRoutes(r chi.Router, c *ctrl.Controllers) {
	r.Get("/logs", c.Logs.List)
}
