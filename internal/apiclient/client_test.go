package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/gesclient/internal/apiclient"
	"github.com/dropDatabas3/gesclient/internal/config"
	"github.com/dropDatabas3/gesclient/internal/http/server"
	"github.com/dropDatabas3/gesclient/internal/store/adapters/memory"
)

func newAPI(t *testing.T) *apiclient.Client {
	t.Helper()
	handler, cleanup, err := server.BuildHandlerWithOptions(context.Background(), config.Default(), server.Options{
		Registry: prometheus.NewRegistry(),
		Fallback: memory.NewEmpty(),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		_ = cleanup()
	})
	return apiclient.New(srv.URL + "/")
}

func TestClientRoundTrip(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()

	created, err := api.CreateClient(ctx, apiclient.CreateInput{Numero: "CLI001", Statut: "actif", Nom: "Jean Dupont"})
	require.NoError(t, err)
	require.Equal(t, "CLI001", created.Numero)
	require.NotEmpty(t, created.ID)

	got, err := api.GetClient(ctx, "CLI001")
	require.NoError(t, err)
	require.Equal(t, "Jean Dupont", got.Nom)

	inactif := "inactif"
	updated, err := api.UpdateClient(ctx, "CLI001", apiclient.UpdateInput{Statut: &inactif})
	require.NoError(t, err)
	require.Equal(t, "inactif", updated.Statut)

	_, err = api.GetClient(ctx, "CLI001")
	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Client inactif", apiErr.Message)

	list, err := api.ListClients(ctx, "inactif")
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := api.DeleteClient(ctx, "CLI001")
	require.NoError(t, err)
	require.Equal(t, "CLI001", deleted.Numero)

	logs, err := api.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 6)
	require.Equal(t, "Client supprimé avec succès", logs[0].Message)

	ready, err := api.Ready(ctx)
	require.NoError(t, err)
	require.Equal(t, "memory", ready.Mode)
}
