package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

func TestNewIsSeeded(t *testing.T) {
	conn := New()
	ctx := context.Background()

	n, err := conn.Clients().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	logs, err := conn.Logs().List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 3)

	c, err := conn.Clients().GetByNumero(ctx, "0987654321")
	require.NoError(t, err)
	require.Equal(t, repository.StatutInactif, c.Statut)
	require.NotEmpty(t, c.ID)
}

func TestClientCRUD(t *testing.T) {
	repo := NewEmpty().Clients()
	ctx := context.Background()

	created, err := repo.Create(ctx, repository.Client{Numero: "CLI001", Statut: "actif", Nom: "Jean Dupont"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	_, err = repo.Create(ctx, repository.Client{Numero: "CLI001", Statut: "actif", Nom: "Autre"})
	require.ErrorIs(t, err, repository.ErrConflict)

	statut := repository.StatutInactif
	updated, err := repo.Update(ctx, "CLI001", repository.ClientPatch{Statut: &statut})
	require.NoError(t, err)
	require.Equal(t, "inactif", updated.Statut)
	require.Equal(t, "Jean Dupont", updated.Nom)

	_, err = repo.Update(ctx, "NOPE", repository.ClientPatch{Statut: &statut})
	require.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err := repo.Delete(ctx, "CLI001")
	require.NoError(t, err)
	require.Equal(t, "CLI001", deleted.Numero)

	_, err = repo.GetByNumero(ctx, "CLI001")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Delete(ctx, "CLI001")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewEmpty().Clients()
	ctx := context.Background()

	_, err := repo.Create(ctx, repository.Client{Numero: "A", Statut: "actif", Nom: "A"})
	require.NoError(t, err)

	c, err := repo.GetByNumero(ctx, "A")
	require.NoError(t, err)
	c.Nom = "mutated"

	again, err := repo.GetByNumero(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, "A", again.Nom)
}

func TestListFilterAndOrder(t *testing.T) {
	repo := NewEmpty().Clients()
	ctx := context.Background()

	for _, c := range []repository.Client{
		{Numero: "1", Statut: "actif", Nom: "uno"},
		{Numero: "2", Statut: "inactif", Nom: "dos"},
		{Numero: "3", Statut: "actif", Nom: "tres"},
	} {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, repository.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"1", "2", "3"}, numeros(all))

	active, err := repo.List(ctx, repository.ClientFilter{Statut: "actif"})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, numeros(active))

	none, err := repo.List(ctx, repository.ClientFilter{Statut: "archive"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestConcurrentDuplicateCreate(t *testing.T) {
	repo := NewEmpty().Clients()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		success atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Create(ctx, repository.Client{Numero: "DUP", Statut: "actif", Nom: "x"}); err == nil {
				success.Add(1)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, success.Load())
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestLogsNewestFirst(t *testing.T) {
	conn := NewEmpty()
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := conn.Logs().Append(ctx, repository.Log{Numero: "a", Statut: "succès", Message: "old", Date: base})
	require.NoError(t, err)
	_, err = conn.Logs().Append(ctx, repository.Log{Numero: "b", Statut: "succès", Message: "new", Date: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = conn.Logs().Append(ctx, repository.Log{Numero: "c", Statut: "erreur", Message: "mid", Date: base.Add(time.Minute)})
	require.NoError(t, err)
	defaulted, err := conn.Logs().Append(ctx, repository.Log{Numero: "d", Statut: "succès", Message: "now"})
	require.NoError(t, err)
	require.False(t, defaulted.Date.IsZero())

	logs, err := conn.Logs().List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 4)
	require.Equal(t, "now", logs[0].Message)
	require.Equal(t, "new", logs[1].Message)
	require.Equal(t, "mid", logs[2].Message)
	require.Equal(t, "old", logs[3].Message)
}

func TestLogsSameDateLatestInsertFirst(t *testing.T) {
	conn := NewEmpty()
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, m := range []string{"first", "second", "third"} {
		_, err := conn.Logs().Append(ctx, repository.Log{Numero: "x", Statut: "succès", Message: m, Date: at})
		require.NoError(t, err)
	}

	logs, err := conn.Logs().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "third", logs[0].Message)
	require.Equal(t, "first", logs[2].Message)
}

func numeros(cs []repository.Client) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Numero)
	}
	return out
}
