package clients

// Services agrupa los services del dominio clients.
type Services struct {
	Clients ClientService
}

// NewServices crea el agregador de services clients.
func NewServices(d Deps) Services {
	return Services{
		Clients: NewClientService(d),
	}
}
