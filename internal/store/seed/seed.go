// Package seed contiene los datos de ejemplo con los que arrancan los stores.
package seed

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

// Clients retorna los clients de ejemplo. Cada llamada devuelve una copia nueva.
func Clients() []repository.Client {
	return []repository.Client{
		{Numero: "0123456789", Statut: repository.StatutActif, Nom: "John Doe", Email: "john.doe@example.com"},
		{Numero: "0987654321", Statut: repository.StatutInactif, Nom: "Jane Smith", Email: "jane.smith@example.com"},
		{Numero: "0112233445", Statut: repository.StatutActif, Nom: "Albert Einstein", Email: "albert.einstein@example.com"},
	}
}

// Logs retorna los logs de ejemplo que acompañan a Clients.
func Logs() []repository.Log {
	return []repository.Log{
		{Numero: "0123456789", Statut: repository.LogStatutSucces, Message: "Client trouvé"},
		{Numero: "0987654321", Statut: repository.LogStatutErreur, Message: "Client inactif"},
		{Numero: "0112233445", Statut: repository.LogStatutSucces, Message: "Client trouvé"},
	}
}

// Apply inserta los datos de ejemplo solo si no hay ningún client.
// Retorna true si insertó datos.
func Apply(ctx context.Context, clients repository.ClientRepository, logs repository.LogRepository) (bool, error) {
	n, err := clients.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count clients: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	for _, c := range Clients() {
		if _, err := clients.Create(ctx, c); err != nil {
			return false, fmt.Errorf("seed: create client %s: %w", c.Numero, err)
		}
	}
	for _, l := range Logs() {
		if _, err := logs.Append(ctx, l); err != nil {
			return false, fmt.Errorf("seed: append log %s: %w", l.Numero, err)
		}
	}
	return true, nil
}
