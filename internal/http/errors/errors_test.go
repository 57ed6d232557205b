package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrRouteNotFound.WithDetail("La route GET /nope n'existe pas"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	require.Equal(t, "Route non trouvée", body["error"])
	require.Equal(t, "La route GET /nope n'existe pas", body["message"])
	require.NotContains(t, body, "stack")
}

func TestWriteErrorWithStack(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorWithStack(rec, ErrInternalServerError, "goroutine 1 [running]")

	body := decode(t, rec)
	require.Equal(t, "goroutine 1 [running]", body["stack"])
}

func TestWriteEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteEnvelope(rec, ErrBusinessRule.WithDetail("Client inactif"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Client inactif", body["message"])

	rec = httptest.NewRecorder()
	WriteEnvelope(rec, ErrMissingFields)
	require.Equal(t, "Les champs numero, statut et nom sont obligatoires", decode(t, rec)["message"])
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	cause := stderrors.New("socket closed")
	appErr := FromError(cause)

	require.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	require.ErrorIs(t, appErr, cause)
	require.Same(t, ErrStoreFailure, FromError(ErrStoreFailure))
}

func TestWithDetailCopies(t *testing.T) {
	detailed := ErrBusinessRule.WithDetail("x")
	require.Equal(t, "x", detailed.Detail)
	require.Empty(t, ErrBusinessRule.Detail)
	require.Equal(t, "x", detailed.UserMessage())
	require.Equal(t, ErrBusinessRule.Message, ErrBusinessRule.UserMessage())
}

func TestPredefinedErrors(t *testing.T) {
	cases := map[*AppError]int{
		ErrInvalidJSON:         http.StatusBadRequest,
		ErrMissingFields:       http.StatusBadRequest,
		ErrBusinessRule:        http.StatusBadRequest,
		ErrBodyTooLarge:        http.StatusRequestEntityTooLarge,
		ErrRouteNotFound:       http.StatusNotFound,
		ErrRateLimitExceeded:   http.StatusTooManyRequests,
		ErrInternalServerError: http.StatusInternalServerError,
		ErrStoreFailure:        http.StatusInternalServerError,
	}
	codes := map[string]bool{}
	for e, status := range cases {
		require.Equal(t, status, e.HTTPStatus, e.Code)
		require.NotEmpty(t, e.Message, e.Code)
		require.False(t, codes[e.Code], "código duplicado %s", e.Code)
		codes[e.Code] = true
	}
}
