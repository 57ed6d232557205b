// Package logs contiene el service de logs de auditoría.
package logs

import (
	"context"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
	"github.com/dropDatabas3/gesclient/internal/metrics"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
	"github.com/dropDatabas3/gesclient/internal/store"
)

// LogService registra y lista los logs de auditoría.
type LogService interface {
	// Record agrega un log con la hora actual. Nunca falla: los errores de
	// escritura se reportan al logger del servidor y se descartan.
	Record(ctx context.Context, numero, statut, message string)

	// RecordIn es Record sobre un repositorio ya elegido por el caller, para
	// que el log quede en el mismo store que la operación que audita.
	RecordIn(ctx context.Context, repo repository.LogRepository, mode store.Mode, numero, statut, message string)

	// List retorna todos los logs, el más reciente primero.
	List(ctx context.Context) ([]repository.Log, error)
}

// Store abstrae la selección del repositorio de logs (store.Manager).
type Store interface {
	Logs(ctx context.Context) (repository.LogRepository, store.Mode)
}

// Deps contiene las dependencias del service.
type Deps struct {
	Store Store
}

type logService struct {
	store Store
}

// NewLogService crea el service de logs.
func NewLogService(d Deps) LogService {
	return &logService{store: d.Store}
}

const componentLogs = "logs"

func (s *logService) Record(ctx context.Context, numero, statut, message string) {
	repo, mode := s.store.Logs(ctx)
	s.RecordIn(ctx, repo, mode, numero, statut, message)
}

func (s *logService) RecordIn(ctx context.Context, repo repository.LogRepository, mode store.Mode, numero, statut, message string) {
	_, err := repo.Append(ctx, repository.Log{
		Numero:  numero,
		Statut:  statut,
		Message: message,
	})
	if err == nil {
		return
	}

	metrics.RecordLogWriteFailure()
	logger.From(ctx).Warn("audit log write failed",
		logger.Layer("service"),
		logger.Component(componentLogs),
		logger.Op("Record"),
		logger.Numero(numero),
		logger.StoreMode(string(mode)),
		logger.Err(err),
	)
}

func (s *logService) List(ctx context.Context) ([]repository.Log, error) {
	repo, _ := s.store.Logs(ctx)
	return repo.List(ctx)
}
