package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	httperrors "github.com/dropDatabas3/gesclient/internal/http/errors"
)

type payload struct {
	Numero string `json:"numero"`
	Nom    string `json:"nom"`
}

func TestReadJSON(t *testing.T) {
	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"numero":"CLI001","nom":"Jean","extra":true}`))
	require.NoError(t, ReadJSON(httptest.NewRecorder(), req, &p))
	require.Equal(t, payload{Numero: "CLI001", Nom: "Jean"}, p)
}

func TestReadJSONEmptyBody(t *testing.T) {
	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, ReadJSON(httptest.NewRecorder(), req, &p))
	require.Zero(t, p)
}

func TestReadJSONInvalid(t *testing.T) {
	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"numero":`))
	err := ReadJSON(httptest.NewRecorder(), req, &p)

	appErr := httperrors.FromError(err)
	require.Equal(t, "INVALID_JSON", appErr.Code)
	require.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestReadJSONTooLarge(t *testing.T) {
	var p payload
	big := `{"nom":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	err := ReadJSON(httptest.NewRecorder(), req, &p)

	require.ErrorIs(t, err, httperrors.ErrBodyTooLarge)
}
