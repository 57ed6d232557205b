package logs

// Services agrupa los services del dominio logs.
type Services struct {
	Logs LogService
}

// NewServices crea el agregador de services logs.
func NewServices(d Deps) Services {
	return Services{
		Logs: NewLogService(d),
	}
}
