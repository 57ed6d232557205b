// Package pg implementa el adapter PostgreSQL: pool pgxpool expuesto como
// database/sql a gorm.
package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"

	"github.com/dropDatabas3/gesclient/internal/store"
	"github.com/dropDatabas3/gesclient/internal/store/adapters/sqlrepo"
)

const (
	defaultMaxConns = 10
	defaultMinConns = 2
)

func init() {
	store.RegisterAdapter(&postgresAdapter{})
}

type postgresAdapter struct{}

func (a *postgresAdapter) Name() string { return "postgres" }

func (a *postgresAdapter) Connect(ctx context.Context, cfg store.AdapterConfig) (store.AdapterConnection, error) {
	if cfg.DSN == "" {
		return nil, errors.New("pg: DSN required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg: parse DSN: %w", err)
	}
	poolCfg.MaxConns = defaultMaxConns
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	poolCfg.MinConns = defaultMinConns
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = int32(cfg.MaxIdleConns)
	}
	if poolCfg.MinConns > poolCfg.MaxConns {
		poolCfg.MinConns = poolCfg.MaxConns
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pg: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg: ping failed: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	conn, err := sqlrepo.Open(a.Name(), postgres.New(postgres.Config{Conn: sqlDB}), sqlrepo.Options{
		Ping: pool.Ping,
		Close: func() error {
			err := sqlDB.Close()
			pool.Close()
			return err
		},
	})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, err
	}

	if err := conn.Migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
