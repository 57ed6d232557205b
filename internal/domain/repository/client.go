package repository

import (
	"context"
	"time"
)

const (
	StatutActif   = "actif"
	StatutInactif = "inactif"
)

// ValidStatut indica si s es un estado de client conocido.
func ValidStatut(s string) bool {
	return s == StatutActif || s == StatutInactif
}

// Client es un registro de cliente identificado por su numero de negocio.
type Client struct {
	ID        string
	Numero    string
	Statut    string // "actif" | "inactif"
	Nom       string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si el client puede ser consultado.
func (c Client) IsActive() bool { return c.Statut == StatutActif }

// ClientFilter filtra el listado. Campos vacíos no filtran.
type ClientFilter struct {
	Statut string
}

// ClientPatch contiene los campos a modificar. nil significa "sin cambios".
// El numero no forma parte del patch: no se puede renumerar un client.
type ClientPatch struct {
	Statut *string
	Nom    *string
	Email  *string
}

// Apply aplica el patch sobre c.
func (p ClientPatch) Apply(c *Client) {
	if p.Statut != nil {
		c.Statut = *p.Statut
	}
	if p.Nom != nil {
		c.Nom = *p.Nom
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
}

// ClientRepository define las operaciones sobre clients.
type ClientRepository interface {
	// GetByNumero retorna ErrNotFound si no existe.
	GetByNumero(ctx context.Context, numero string) (*Client, error)

	List(ctx context.Context, filter ClientFilter) ([]Client, error)

	// Create retorna ErrConflict si el numero ya existe.
	// ID, CreatedAt y UpdatedAt los asigna el store.
	Create(ctx context.Context, c Client) (*Client, error)

	// Update retorna ErrNotFound si no existe.
	Update(ctx context.Context, numero string, patch ClientPatch) (*Client, error)

	// Delete retorna el snapshot eliminado, o ErrNotFound.
	Delete(ctx context.Context, numero string) (*Client, error)

	Count(ctx context.Context) (int64, error)
}
