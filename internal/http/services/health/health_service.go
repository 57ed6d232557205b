// Package health contiene el service de health checks.
package health

import (
	"context"
	"os"
	"time"

	dto "github.com/dropDatabas3/gesclient/internal/http/dto/health"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
	"github.com/dropDatabas3/gesclient/internal/store"
)

// HealthService define las operaciones de health check.
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

// StoreProbe abstrae el store.Manager para el health check.
type StoreProbe interface {
	Configured() bool
	Ping(ctx context.Context) error
	Mode(ctx context.Context) store.Mode
}

// Deps contiene las dependencias inyectables para el health service.
type Deps struct {
	Store StoreProbe
	// CacheCheck hace ping al cache compartido (redis). nil: cache en memoria.
	CacheCheck func(ctx context.Context) error
	Version    string
}

type healthService struct {
	deps Deps
}

// NewHealthService crea un nuevo service de health check.
func NewHealthService(deps Deps) HealthService {
	if deps.Version == "" {
		deps.Version = os.Getenv("SERVICE_VERSION")
	}
	return &healthService{deps: deps}
}

const componentHealth = "health"

func (s *healthService) Check(ctx context.Context) dto.HealthResponse {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentHealth),
		logger.Op("Check"),
	)

	response := dto.HealthResponse{
		Components: make(map[string]dto.HealthStatus),
		Version:    s.deps.Version,
		Timestamp:  time.Now().UTC(),
	}

	if s.deps.Store == nil {
		response.Status = dto.StatusUnavailable
		response.Components["store"] = dto.HealthStatus{Status: "error", Message: "store not initialized"}
		return response
	}

	degraded := false

	// 1) Store durable (sin él se sirve desde memoria)
	switch {
	case !s.deps.Store.Configured():
		response.Components["store"] = dto.HealthStatus{Status: "disabled", Message: "in-memory store only"}
	default:
		if err := s.deps.Store.Ping(ctx); err != nil {
			response.Components["store"] = dto.HealthStatus{Status: "error", Message: err.Error()}
			degraded = true
			log.Warn("durable store unavailable", logger.Err(err))
		} else {
			response.Components["store"] = dto.HealthStatus{Status: "ok"}
		}
	}
	response.Mode = string(s.deps.Store.Mode(ctx))
	if s.deps.Store.Configured() && response.Mode == string(store.ModeMemory) {
		degraded = true
	}

	// 2) Cache (no crítico)
	if s.deps.CacheCheck != nil {
		if err := s.deps.CacheCheck(ctx); err != nil {
			response.Components["cache"] = dto.HealthStatus{Status: "error", Message: err.Error()}
			degraded = true
			log.Warn("cache unavailable", logger.Err(err))
		} else {
			response.Components["cache"] = dto.HealthStatus{Status: "ok"}
		}
	} else {
		response.Components["cache"] = dto.HealthStatus{Status: "disabled", Message: "memory cache only"}
	}

	if degraded {
		response.Status = dto.StatusDegraded
	} else {
		response.Status = dto.StatusReady
	}
	return response
}
