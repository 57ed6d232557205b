// Package sqlite implementa el adapter SQLite (gorm). Pensado para desarrollo
// local y tests del camino durable.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"

	"github.com/dropDatabas3/gesclient/internal/store"
	"github.com/dropDatabas3/gesclient/internal/store/adapters/sqlrepo"
)

func init() {
	store.RegisterAdapter(&sqliteAdapter{})
}

type sqliteAdapter struct{}

func (a *sqliteAdapter) Name() string { return "sqlite" }

func (a *sqliteAdapter) Connect(ctx context.Context, cfg store.AdapterConfig) (store.AdapterConnection, error) {
	path := normalizeDSN(cfg.DSN)
	if path == "" {
		return nil, errors.New("sqlite: DSN required")
	}

	conn, err := sqlrepo.Open(a.Name(), sqlite.Open(path), sqlrepo.Options{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB().DB()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite: get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if isMemoryDSN(path) {
		// la base en memoria vive mientras quede una conexión abierta
		sqlDB.SetMaxIdleConns(max(cfg.MaxIdleConns, 1))
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	} else if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite: ping failed: %w", err)
	}
	if err := conn.Migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

// normalizeDSN acepta "sqlite://path", "sqlite:path", "file:..." o un path directo.
// ":memory:" se convierte en una base en memoria con nombre único y cache
// compartido, para que todas las conexiones del pool vean las mismas tablas.
func normalizeDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		dsn = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "sqlite:"):
		dsn = strings.TrimPrefix(dsn, "sqlite:")
	}
	if dsn == ":memory:" || dsn == "file::memory:" {
		return "file:mem-" + uuid.NewString() + "?mode=memory&cache=shared"
	}
	return dsn
}

// isMemoryDSN indica si el DSN (ya normalizado) apunta a una base en memoria.
func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}
