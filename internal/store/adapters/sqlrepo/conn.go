package sqlrepo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
)

// Options permite al adapter sobreescribir ping/close (ej: pgxpool).
type Options struct {
	Ping  func(ctx context.Context) error
	Close func() error
}

// Connection implementa store.AdapterConnection sobre un *gorm.DB.
type Connection struct {
	name string
	db   *gorm.DB
	opts Options
}

// Open abre gorm con el dialector dado. No ejecuta AutoMigrate.
func Open(name string, dialector gorm.Dialector, opts Options) (*Connection, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("%s: open gorm: %w", name, err)
	}
	return New(name, db, opts), nil
}

// New envuelve un *gorm.DB ya abierto.
func New(name string, db *gorm.DB, opts Options) *Connection {
	return &Connection{name: name, db: db, opts: opts}
}

// Migrate crea las tablas clients y logs si no existen.
func (c *Connection) Migrate(ctx context.Context) error {
	if err := c.db.WithContext(ctx).AutoMigrate(&clientModel{}, &logModel{}); err != nil {
		return fmt.Errorf("%s: automigrate: %w", c.name, err)
	}
	return nil
}

func (c *Connection) Name() string { return c.name }

func (c *Connection) Ping(ctx context.Context) error {
	if c.opts.Ping != nil {
		return c.opts.Ping(ctx)
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *Connection) Close() error {
	if c.opts.Close != nil {
		return c.opts.Close()
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *Connection) Clients() repository.ClientRepository { return &clientRepo{db: c.db} }
func (c *Connection) Logs() repository.LogRepository       { return &logRepo{db: c.db} }

// DB expone el *gorm.DB subyacente (tests, herramientas).
func (c *Connection) DB() *gorm.DB { return c.db }

// zapWriter adapta zap al Writer del logger de gorm.
type zapWriter struct{ s *zap.SugaredLogger }

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.s.Warnf(format, args...)
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(
		zapWriter{s: logger.Named("gorm").Sugar()},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
