// Package store provee el registry de adaptadores y el Manager que elige,
// en cada operación, entre el store durable y el fallback en memoria.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

// Adapter representa un backend de almacenamiento capaz de abrir conexiones.
type Adapter interface {
	// Name retorna el nombre del adapter ("postgres", "sqlite").
	Name() string

	// Connect establece conexión con el almacenamiento.
	Connect(ctx context.Context, cfg AdapterConfig) (AdapterConnection, error)
}

// AdapterConnection representa una conexión activa con sus repositorios.
type AdapterConnection interface {
	Name() string
	Ping(ctx context.Context) error
	Close() error

	Clients() repository.ClientRepository
	Logs() repository.LogRepository
}

// AdapterConfig configuración para conectar a un almacenamiento.
type AdapterConfig struct {
	// Name del adapter: "postgres" | "sqlite"
	Name string

	// DSN connection string
	DSN string

	// Pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

var (
	registryMu sync.RWMutex
	adapters   = make(map[string]Adapter)
)

// RegisterAdapter registra un adapter. Llamar en init() de cada adapter.
func RegisterAdapter(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := a.Name()
	if _, exists := adapters[name]; exists {
		panic(fmt.Sprintf("adapter: %q already registered", name))
	}
	adapters[name] = a
}

// GetAdapter obtiene un adapter por nombre.
func GetAdapter(name string) (Adapter, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := adapters[name]
	return a, ok
}

// ListAdapters retorna los nombres registrados, ordenados.
func ListAdapters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(adapters))
	for name := range adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenAdapter abre una conexión usando el adapter indicado en la config.
func OpenAdapter(ctx context.Context, cfg AdapterConfig) (AdapterConnection, error) {
	a, ok := GetAdapter(cfg.Name)
	if !ok {
		return nil, fmt.Errorf("adapter: %q not registered (available: %s)", cfg.Name, strings.Join(ListAdapters(), ", "))
	}
	return a.Connect(ctx, cfg)
}

// DriverFromDSN infiere el adapter a partir del esquema del DSN.
// Retorna "" si no lo reconoce.
func DriverFromDSN(dsn string) string {
	d := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case d == "":
		return ""
	case strings.HasPrefix(d, "postgres://"), strings.HasPrefix(d, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(d, "sqlite:"), strings.HasPrefix(d, "file:"),
		strings.HasSuffix(d, ".db"), strings.HasSuffix(d, ".sqlite"), d == ":memory:":
		return "sqlite"
	case strings.Contains(d, "host=") && strings.Contains(d, "dbname="):
		// DSN key/value de libpq
		return "postgres"
	}
	return ""
}
