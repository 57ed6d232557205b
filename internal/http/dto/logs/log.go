// Package logs contiene los DTOs de /logs.
package logs

import (
	"time"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

// LogResponse representa una entrada de log de auditoría.
type LogResponse struct {
	ID      string    `json:"id"`
	Numero  string    `json:"numero"`
	Statut  string    `json:"statut"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// FromLogs mapea los logs de dominio; nunca retorna nil.
func FromLogs(in []repository.Log) []LogResponse {
	out := make([]LogResponse, 0, len(in))
	for _, l := range in {
		out = append(out, LogResponse{
			ID:      l.ID,
			Numero:  l.Numero,
			Statut:  l.Statut,
			Message: l.Message,
			Date:    l.Date.UTC(),
		})
	}
	return out
}
