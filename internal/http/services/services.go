// Package services es el composition root de los services HTTP.
//
// Cada dominio vive en su sub-paquete (clients, logs, health) con su propio
// Deps y aggregator Services; este paquete los une.
package services

import (
	"github.com/dropDatabas3/gesclient/internal/http/services/clients"
	"github.com/dropDatabas3/gesclient/internal/http/services/health"
	"github.com/dropDatabas3/gesclient/internal/http/services/logs"
	"github.com/dropDatabas3/gesclient/internal/store"
)

// Deps contiene las dependencias base para crear los services.
type Deps struct {
	Store *store.Manager

	HealthDeps health.Deps
}

// Services agrupa todos los sub-services por dominio.
type Services struct {
	Clients clients.Services
	Logs    logs.Services
	Health  health.Services
}

// New crea todos los services. El service de clients registra su
// auditoría a través del service de logs.
func New(d Deps) *Services {
	logSvcs := logs.NewServices(logs.Deps{Store: d.Store})

	healthDeps := d.HealthDeps
	if healthDeps.Store == nil && d.Store != nil {
		healthDeps.Store = d.Store
	}

	return &Services{
		Clients: clients.NewServices(clients.Deps{Store: d.Store, Audit: logSvcs.Logs}),
		Logs:    logSvcs,
		Health:  health.NewServices(healthDeps),
	}
}
