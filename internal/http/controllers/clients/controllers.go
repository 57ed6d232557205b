package clients

import svc "github.com/dropDatabas3/gesclient/internal/http/services/clients"

// Controllers agrupa los controllers del dominio clients.
type Controllers struct {
	Clients *ClientsController
}

// NewControllers crea el agregador de controllers clients.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Clients: NewClientsController(s.Clients),
	}
}
