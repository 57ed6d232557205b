package repository

import (
	"context"
	"time"
)

const (
	LogStatutSucces = "succès"
	LogStatutErreur = "erreur"

	// LogNumeroAll se usa en operaciones sobre todos los clients.
	LogNumeroAll = "ALL"
	// LogNumeroUnknown se usa cuando la operación no traía numero.
	LogNumeroUnknown = "UNKNOWN"
)

// Log es una entrada de auditoría append-only.
type Log struct {
	ID      string
	Numero  string
	Statut  string // "succès" | "erreur"
	Message string
	Date    time.Time
}

// LogRepository define las operaciones sobre logs. No hay update ni delete.
type LogRepository interface {
	// Append persiste l. Si l.Date es cero usa la hora actual.
	Append(ctx context.Context, l Log) (*Log, error)

	// List retorna todos los logs, el más reciente primero.
	List(ctx context.Context) ([]Log, error)
}
