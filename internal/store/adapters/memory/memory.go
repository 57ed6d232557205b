// Package memory implementa el store en memoria usado como fallback cuando no
// hay base de datos configurada o disponible.
//
// No se auto-registra en el registry: el Manager lo crea explícitamente.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
	"github.com/dropDatabas3/gesclient/internal/store/seed"
)

// Name es el nombre con el que se reporta esta conexión.
const Name = "memory"

// Connection agrupa los repositorios en memoria. Es seguro para uso concurrente.
type Connection struct {
	clients *clientRepo
	logs    *logRepo
}

// New crea un store en memoria precargado con los datos de ejemplo.
func New() *Connection {
	c := NewEmpty()
	ctx := context.Background()
	for _, cl := range seed.Clients() {
		_, _ = c.clients.Create(ctx, cl)
	}
	for _, l := range seed.Logs() {
		_, _ = c.logs.Append(ctx, l)
	}
	return c
}

// NewEmpty crea un store en memoria vacío.
func NewEmpty() *Connection {
	return &Connection{
		clients: &clientRepo{byNumero: make(map[string]*repository.Client), now: time.Now},
		logs:    &logRepo{now: time.Now},
	}
}

func (c *Connection) Name() string                         { return Name }
func (c *Connection) Ping(ctx context.Context) error       { return nil }
func (c *Connection) Close() error                         { return nil }
func (c *Connection) Clients() repository.ClientRepository { return c.clients }
func (c *Connection) Logs() repository.LogRepository       { return c.logs }

// ─── Clients ───

type clientRepo struct {
	mu       sync.RWMutex
	byNumero map[string]*repository.Client
	order    []string // orden de inserción, para listados estables
	now      func() time.Time
}

func (r *clientRepo) GetByNumero(ctx context.Context, numero string) (*repository.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byNumero[numero]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *clientRepo) List(ctx context.Context, filter repository.ClientFilter) ([]repository.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]repository.Client, 0, len(r.order))
	for _, numero := range r.order {
		c := r.byNumero[numero]
		if filter.Statut != "" && c.Statut != filter.Statut {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

// Create hace check-then-insert bajo el lock de escritura.
func (r *clientRepo) Create(ctx context.Context, c repository.Client) (*repository.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byNumero[c.Numero]; exists {
		return nil, repository.ErrConflict
	}

	now := r.now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := c
	r.byNumero[c.Numero] = &stored
	r.order = append(r.order, c.Numero)
	return &c, nil
}

func (r *clientRepo) Update(ctx context.Context, numero string, patch repository.ClientPatch) (*repository.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byNumero[numero]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(c)
	c.UpdatedAt = r.now().UTC()

	out := *c
	return &out, nil
}

func (r *clientRepo) Delete(ctx context.Context, numero string) (*repository.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byNumero[numero]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.byNumero, numero)
	for i, n := range r.order {
		if n == numero {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return c, nil
}

func (r *clientRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byNumero)), nil
}

// ─── Logs ───

type logRepo struct {
	mu      sync.RWMutex
	entries []repository.Log
	now     func() time.Time
}

func (r *logRepo) Append(ctx context.Context, l repository.Log) (*repository.Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = uuid.NewString()
	if l.Date.IsZero() {
		l.Date = r.now().UTC()
	}
	r.entries = append(r.entries, l)
	return &l, nil
}

// List ordena por fecha descendente; a igual fecha, el último insertado primero.
func (r *logRepo) List(ctx context.Context) ([]repository.Log, error) {
	r.mu.RLock()
	out := make([]repository.Log, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, r.entries[i])
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
