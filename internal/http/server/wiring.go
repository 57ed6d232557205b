// Package server es el composition root HTTP: arma cache, store, services,
// controllers y router a partir de la configuración.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/gesclient/internal/cache"
	"github.com/dropDatabas3/gesclient/internal/config"
	"github.com/dropDatabas3/gesclient/internal/http/controllers"
	mw "github.com/dropDatabas3/gesclient/internal/http/middlewares"
	"github.com/dropDatabas3/gesclient/internal/http/router"
	"github.com/dropDatabas3/gesclient/internal/http/services"
	"github.com/dropDatabas3/gesclient/internal/http/services/health"
	"github.com/dropDatabas3/gesclient/internal/metrics"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
	"github.com/dropDatabas3/gesclient/internal/rate"
	"github.com/dropDatabas3/gesclient/internal/store"
	"github.com/dropDatabas3/gesclient/internal/util"

	// adapters durables (se registran en init)
	_ "github.com/dropDatabas3/gesclient/internal/store/adapters/pg"
	_ "github.com/dropDatabas3/gesclient/internal/store/adapters/sqlite"
)

// Options permite inyectar dependencias en tests.
type Options struct {
	// Registry para las métricas. nil: registry global de Prometheus.
	Registry *prometheus.Registry
	// Fallback reemplaza el store en memoria.
	Fallback store.AdapterConnection
}

// BuildHandler construye el handler HTTP con todas las dependencias.
// El cleanup retornado cierra store y conexiones; debe llamarse al apagar.
func BuildHandler(ctx context.Context, cfg *config.Config) (http.Handler, func() error, error) {
	return BuildHandlerWithOptions(ctx, cfg, Options{})
}

// BuildHandlerWithOptions es BuildHandler con dependencias inyectables.
func BuildHandlerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (http.Handler, func() error, error) {
	log := logger.From(ctx).With(logger.Component("wiring"))

	var closers []func() error
	cleanup := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	// 1. Redis (opcional, compartido por cache y rate limiter)
	var rdb *redis.Client
	if cfg.Cache.Kind == "redis" {
		client, err := connectRedis(ctx, cfg)
		if err != nil {
			log.Warn("redis unavailable, using in-memory cache and rate limiter", logger.Err(err))
		} else {
			rdb = client
			closers = append(closers, rdb.Close)
		}
	}

	// 2. Cache
	var (
		cacheClient cache.Client
		cacheCheck  func(ctx context.Context) error
	)
	if rdb != nil {
		cacheClient = cache.NewRedisFromClient(rdb, cfg.Cache.Redis.Prefix)
		cacheCheck = cacheClient.Ping
	} else {
		cacheClient = cache.NewMemory(cfg.Cache.Redis.Prefix)
	}
	closers = append(closers, cacheClient.Close)

	// 3. Store (durable con fallback en memoria)
	manager := store.NewManager(ctx, store.ManagerConfig{
		Driver:            cfg.Storage.Driver,
		DSN:               cfg.Storage.DSN,
		MaxOpenConns:      cfg.Storage.MaxOpenConns,
		MaxIdleConns:      cfg.Storage.MaxIdleConns,
		ConnMaxLifetime:   cfg.Storage.ConnMaxLifetime,
		ConnectTimeout:    cfg.Storage.ConnectTimeout,
		PingTimeout:       cfg.Storage.PingTimeout,
		ReconnectInterval: cfg.Storage.ReconnectInterval,
		ProbeTTL:          cfg.Storage.ProbeTTL,
		ProbeCache:        cacheClient,
		Seed:              cfg.Storage.Seed,
		Fallback:          opts.Fallback,
	})
	closers = append(closers, manager.Close)

	// 4. Services + controllers
	svcs := services.New(services.Deps{
		Store: manager,
		HealthDeps: health.Deps{
			Store:      manager,
			CacheCheck: cacheCheck,
			Version:    cfg.App.Version,
		},
	})
	ctrls, err := controllers.New(svcs)
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("wiring: controllers: %w", err)
	}

	// 5. Métricas
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		mcfg := metrics.Config{}
		if opts.Registry != nil {
			mcfg = metrics.Config{Registry: opts.Registry, Gatherer: opts.Registry}
		}
		metricsHandler, err = metrics.Register(mcfg)
		if err != nil {
			_ = cleanup()
			return nil, nil, fmt.Errorf("wiring: metrics: %w", err)
		}
	}

	// 6. Rate limiting
	var limiter mw.RateLimiter
	if cfg.Rate.Enabled {
		limiter = rate.New(rdb, rate.Config{
			MaxRequests: cfg.Rate.MaxRequests,
			Window:      cfg.Rate.Window,
			Prefix:      cfg.Cache.Redis.Prefix,
		})
	}

	handler := router.New(router.Deps{
		Controllers:    ctrls,
		MetricsHandler: metricsHandler,
		RateLimiter:    limiter,
		CORSOrigins:    cfg.Server.CORSAllowedOrigins,
		Dev:            cfg.IsDev(),
	})

	log.Info("http handler ready",
		logger.StoreMode(string(manager.Mode(ctx))),
		logger.Driver(manager.Driver()),
		logger.String("dsn", util.MaskDSN(cfg.Storage.DSN)),
		logger.String("cache", cacheClient.Driver()),
		logger.Bool("rate_limit", limiter != nil),
		logger.Bool("metrics", metricsHandler != nil),
	)
	return handler, cleanup, nil
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
