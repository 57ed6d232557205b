package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/gesclient/internal/http/controllers/clients"
)

// RegisterClientRoutes registra el CRUD de /api/clients.
func RegisterClientRoutes(r chi.Router, c *ctrl.Controllers) {
	r.Route("/api/clients", func(r chi.Router) {
		r.Get("/", c.Clients.List)
		r.Post("/", c.Clients.Create)
		r.Get("/{numero}", c.Clients.Get)
		r.Put("/{numero}", c.Clients.Update)
		r.Delete("/{numero}", c.Clients.Delete)
	})
}
