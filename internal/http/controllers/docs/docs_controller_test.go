package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentIsValidOpenAPI(t *testing.T) {
	c, err := NewDocsController()
	require.NoError(t, err)

	doc := c.Document()
	require.Equal(t, "3.1.0", doc["openapi"])
	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "API Gestion des Clients", info["title"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, paths, "/api/clients")
	require.Contains(t, paths, "/api/clients/{numero}")
	require.Contains(t, paths, "/logs")
}

func TestJSONEncodes(t *testing.T) {
	c, err := NewDocsController()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c.JSON(rec, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "3.1.0", out["openapi"])
}

func TestUIPointsToRelativeSpec(t *testing.T) {
	c, err := NewDocsController()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c.UI(rec, httptest.NewRequest(http.MethodGet, "/api/api-docs/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), PageTitle)
	require.Contains(t, rec.Body.String(), "/api/api-docs/openapi.json")
}

func TestYAMLServesRawDocument(t *testing.T) {
	c, err := NewDocsController()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c.YAML(rec, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.yaml", nil))
	require.Equal(t, openapiYAML, rec.Body.Bytes())
}
