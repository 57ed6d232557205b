package logs

import svc "github.com/dropDatabas3/gesclient/internal/http/services/logs"

// Controllers agrupa los controllers del dominio logs.
type Controllers struct {
	Logs *LogsController
}

// NewControllers crea el agregador de controllers logs.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Logs: NewLogsController(s.Logs),
	}
}
