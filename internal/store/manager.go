package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/gesclient/internal/cache"
	"github.com/dropDatabas3/gesclient/internal/domain/repository"
	"github.com/dropDatabas3/gesclient/internal/metrics"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
	"github.com/dropDatabas3/gesclient/internal/store/adapters/memory"
	"github.com/dropDatabas3/gesclient/internal/store/seed"
)

// Mode indica qué store atiende una operación.
type Mode string

const (
	ModeDurable Mode = "durable"
	ModeMemory  Mode = "memory"
)

const (
	defaultConnectTimeout    = 5 * time.Second
	defaultPingTimeout       = 2 * time.Second
	defaultReconnectInterval = 10 * time.Second

	probeCacheKey = "store:durable:alive"
)

// ManagerConfig configura el Manager.
type ManagerConfig struct {
	// Driver del store durable. Vacío: se infiere del DSN.
	Driver string
	// DSN del store durable. Vacío: solo memoria.
	DSN string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	ConnectTimeout    time.Duration
	PingTimeout       time.Duration
	ReconnectInterval time.Duration

	// ProbeTTL > 0 recuerda un ping exitoso durante ese tiempo. 0: ping en cada operación.
	ProbeTTL   time.Duration
	ProbeCache cache.Client

	// Seed inserta los datos de ejemplo en el store durable si está vacío.
	Seed bool

	// Fallback reemplaza el store en memoria (tests).
	Fallback AdapterConnection
}

// Manager elige, en cada operación, entre el store durable y el fallback en memoria:
// durable si hay DSN configurado y la conexión responde, memoria en otro caso.
type Manager struct {
	cfg      ManagerConfig
	fallback AdapterConnection

	mu            sync.RWMutex
	durable       AdapterConnection
	lastAttempt   time.Time
	seeded        bool
	closed        bool
	reconnectOnce singleflight.Group

	now func() time.Time
}

// NewManager intenta conectar al store durable. Nunca falla por problemas de
// conectividad: registra un warning y sigue con el store en memoria.
func NewManager(ctx context.Context, cfg ManagerConfig) *Manager {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.PingTimeout <= 0 {
		cfg.PingTimeout = defaultPingTimeout
	}
	if cfg.ReconnectInterval <= 0 {
		cfg.ReconnectInterval = defaultReconnectInterval
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverFromDSN(cfg.DSN)
	}
	if cfg.ProbeTTL > 0 && cfg.ProbeCache == nil {
		cfg.ProbeCache = cache.NewMemory("")
	}

	m := &Manager{cfg: cfg, fallback: cfg.Fallback, now: time.Now}
	if m.fallback == nil {
		m.fallback = memory.New()
	}

	log := logger.From(ctx).With(logger.Layer("store"), logger.Component("store.manager"))

	if cfg.DSN == "" {
		log.Warn("no database configured, serving from the in-memory store")
		metrics.SetStoreMode(false)
		return m
	}

	if _, err := m.connect(ctx); err != nil {
		log.Warn("durable store unavailable at startup, serving from the in-memory store",
			logger.Driver(cfg.Driver), logger.Err(err))
		metrics.SetStoreMode(false)
		return m
	}

	log.Info("durable store connected", logger.Driver(cfg.Driver))
	metrics.SetStoreMode(true)
	return m
}

// Configured indica si hay un DSN de store durable configurado.
func (m *Manager) Configured() bool { return m.cfg.DSN != "" }

// Driver retorna el adapter durable configurado ("" si no hay).
func (m *Manager) Driver() string { return m.cfg.Driver }

// Conn retorna la conexión que debe usar esta operación.
// La disponibilidad se evalúa en cada llamada.
func (m *Manager) Conn(ctx context.Context) (AdapterConnection, Mode) {
	if !m.Configured() {
		metrics.SetStoreMode(false)
		return m.fallback, ModeMemory
	}

	conn := m.current()
	if conn == nil {
		var err error
		conn, err = m.reconnect(ctx)
		if err != nil || conn == nil {
			metrics.SetStoreMode(false)
			return m.fallback, ModeMemory
		}
		metrics.SetStoreMode(true)
		return conn, ModeDurable
	}

	if err := m.probe(ctx, conn); err != nil {
		logger.From(ctx).Warn("durable store ping failed, using the in-memory store",
			logger.Layer("store"), logger.Component("store.manager"), logger.Err(err))
		metrics.SetStoreMode(false)
		return m.fallback, ModeMemory
	}
	metrics.SetStoreMode(true)
	return conn, ModeDurable
}

// Clients retorna el repositorio de clients del store activo.
func (m *Manager) Clients(ctx context.Context) (repository.ClientRepository, Mode) {
	conn, mode := m.Conn(ctx)
	return conn.Clients(), mode
}

// Logs retorna el repositorio de logs del store activo.
func (m *Manager) Logs(ctx context.Context) (repository.LogRepository, Mode) {
	conn, mode := m.Conn(ctx)
	return conn.Logs(), mode
}

// Mode reporta el store que atendería una operación ahora.
func (m *Manager) Mode(ctx context.Context) Mode {
	_, mode := m.Conn(ctx)
	return mode
}

// Ping verifica el store durable. ErrNoDatabase si no hay DSN o conexión.
func (m *Manager) Ping(ctx context.Context) error {
	if !m.Configured() {
		return repository.ErrNoDatabase
	}
	conn := m.current()
	if conn == nil {
		return fmt.Errorf("%w: not connected", repository.ErrNoDatabase)
	}
	pingCtx, cancel := context.WithTimeout(ctx, m.cfg.PingTimeout)
	defer cancel()
	return conn.Ping(pingCtx)
}

// Close cierra el store durable y el fallback.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	var errs []error
	if m.durable != nil {
		errs = append(errs, m.durable.Close())
		m.durable = nil
	}
	errs = append(errs, m.fallback.Close())
	return errors.Join(errs...)
}

func (m *Manager) current() AdapterConnection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.durable
}

// probe hace ping al store durable, usando el cache si ProbeTTL > 0.
func (m *Manager) probe(ctx context.Context, conn AdapterConnection) error {
	if m.cfg.ProbeTTL > 0 {
		if _, err := m.cfg.ProbeCache.Get(ctx, probeCacheKey); err == nil {
			return nil
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, m.cfg.PingTimeout)
	defer cancel()
	if err := conn.Ping(pingCtx); err != nil {
		return err
	}

	if m.cfg.ProbeTTL > 0 {
		_ = m.cfg.ProbeCache.Set(ctx, probeCacheKey, "1", m.cfg.ProbeTTL)
	}
	return nil
}

// reconnect reintenta la conexión inicial como mucho una vez cada ReconnectInterval.
// Las llamadas concurrentes comparten el mismo intento.
func (m *Manager) reconnect(ctx context.Context) (AdapterConnection, error) {
	m.mu.RLock()
	wait := m.closed || (!m.lastAttempt.IsZero() && m.now().Sub(m.lastAttempt) < m.cfg.ReconnectInterval)
	m.mu.RUnlock()
	if wait {
		return nil, repository.ErrNoDatabase
	}

	v, err, _ := m.reconnectOnce.Do("durable", func() (interface{}, error) {
		if conn := m.current(); conn != nil {
			return conn, nil
		}
		conn, err := m.connect(ctx)
		if err != nil {
			logger.From(ctx).Warn("durable store reconnect failed",
				logger.Layer("store"), logger.Driver(m.cfg.Driver), logger.Err(err))
			return nil, err
		}
		logger.From(ctx).Info("durable store reconnected",
			logger.Layer("store"), logger.Driver(m.cfg.Driver))
		return conn, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(AdapterConnection), nil
}

// connect abre el adapter durable, siembra si corresponde y lo publica.
func (m *Manager) connect(ctx context.Context) (AdapterConnection, error) {
	m.mu.Lock()
	m.lastAttempt = m.now()
	m.mu.Unlock()

	if m.cfg.Driver == "" {
		return nil, fmt.Errorf("store: cannot infer driver from DSN")
	}

	connectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.ConnectTimeout)
	defer cancel()

	conn, err := OpenAdapter(connectCtx, AdapterConfig{
		Name:            m.cfg.Driver,
		DSN:             m.cfg.DSN,
		MaxOpenConns:    m.cfg.MaxOpenConns,
		MaxIdleConns:    m.cfg.MaxIdleConns,
		ConnMaxLifetime: m.cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		_ = conn.Close()
		return nil, errors.New("store: manager closed")
	}
	m.durable = conn

	if m.cfg.Seed && !m.seeded {
		applied, err := seed.Apply(connectCtx, conn.Clients(), conn.Logs())
		if err != nil {
			logger.From(ctx).Warn("seeding durable store failed", logger.Layer("store"), logger.Err(err))
		} else {
			m.seeded = true
			if applied {
				logger.From(ctx).Info("durable store seeded with example clients", logger.Layer("store"))
			}
		}
	}
	return conn, nil
}
