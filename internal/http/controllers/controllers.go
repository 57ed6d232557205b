// Package controllers agrupa los controllers HTTP por dominio.
package controllers

import (
	"github.com/dropDatabas3/gesclient/internal/http/controllers/clients"
	"github.com/dropDatabas3/gesclient/internal/http/controllers/docs"
	"github.com/dropDatabas3/gesclient/internal/http/controllers/health"
	"github.com/dropDatabas3/gesclient/internal/http/controllers/logs"
	"github.com/dropDatabas3/gesclient/internal/http/services"
)

// Controllers agrupa todos los controllers.
type Controllers struct {
	Clients *clients.Controllers
	Logs    *logs.Controllers
	Health  *health.Controllers
	Docs    *docs.DocsController
}

// New crea todos los controllers a partir de los services.
func New(s *services.Services) (*Controllers, error) {
	d, err := docs.NewDocsController()
	if err != nil {
		return nil, err
	}
	return &Controllers{
		Clients: clients.NewControllers(s.Clients),
		Logs:    logs.NewControllers(s.Logs),
		Health:  health.NewControllers(s.Health),
		Docs:    d,
	}, nil
}
