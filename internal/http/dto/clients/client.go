// Package clients contiene los DTOs de /api/clients.
package clients

import (
	"time"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

// CreateClientRequest es el body de POST /api/clients.
type CreateClientRequest struct {
	Numero string `json:"numero"`
	Statut string `json:"statut"`
	Nom    string `json:"nom"`
	Email  string `json:"email,omitempty"`
}

// HasRequiredFields indica si numero, statut y nom vienen informados.
func (r CreateClientRequest) HasRequiredFields() bool {
	return r.Numero != "" && r.Statut != "" && r.Nom != ""
}

// UpdateClientRequest es el body de PUT /api/clients/{numero}.
// Los campos ausentes no se modifican. Numero se acepta pero se ignora.
type UpdateClientRequest struct {
	Numero *string `json:"numero,omitempty"`
	Statut *string `json:"statut,omitempty"`
	Nom    *string `json:"nom,omitempty"`
	Email  *string `json:"email,omitempty"`
}

// Patch convierte el request al patch de dominio.
func (r UpdateClientRequest) Patch() repository.ClientPatch {
	return repository.ClientPatch{Statut: r.Statut, Nom: r.Nom, Email: r.Email}
}

// ClientResponse representa un client en las respuestas.
type ClientResponse struct {
	ID        string    `json:"id"`
	Numero    string    `json:"numero"`
	Statut    string    `json:"statut"`
	Nom       string    `json:"nom"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromClient mapea un client de dominio a su respuesta.
func FromClient(c repository.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Numero:    c.Numero,
		Statut:    c.Statut,
		Nom:       c.Nom,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

// FromClients mapea una lista; nunca retorna nil.
func FromClients(in []repository.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromClient(c))
	}
	return out
}

// Envelope es el cuerpo de respuesta de los endpoints de clients.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}
