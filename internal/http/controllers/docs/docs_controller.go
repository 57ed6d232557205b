// Package docs sirve la documentación OpenAPI y la página de Swagger UI.
package docs

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dropDatabas3/gesclient/internal/http/helpers"
)

//go:embed openapi.yaml
var openapiYAML []byte

// PageTitle es el título de la página de documentación.
const PageTitle = "API Gestion Clients - Documentation"

// DocsController sirve {base}, {base}/openapi.json y {base}/openapi.yaml.
type DocsController struct {
	doc map[string]any
}

// NewDocsController parsea el documento embebido.
func NewDocsController() (*DocsController, error) {
	var raw any
	if err := yaml.Unmarshal(openapiYAML, &raw); err != nil {
		return nil, fmt.Errorf("docs: parse openapi.yaml: %w", err)
	}
	doc, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("docs: openapi.yaml is not a mapping")
	}
	return &DocsController{doc: doc}, nil
}

// Document retorna el documento OpenAPI parseado.
func (c *DocsController) Document() map[string]any { return c.doc }

// JSON maneja GET {base}/openapi.json
func (c *DocsController) JSON(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.doc)
}

// YAML maneja GET {base}/openapi.yaml
func (c *DocsController) YAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiYAML)
}

// UI maneja GET {base}: página Swagger UI que carga openapi.json relativo a la ruta.
func (c *DocsController) UI(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSuffix(r.URL.Path, "/")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = uiTemplate.Execute(w, struct {
		Title   string
		SpecURL string
	}{Title: PageTitle, SpecURL: base + "/openapi.json"})
}

var uiTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>
    .swagger-ui .topbar { display: none }
    .swagger-ui .info .title { color: #ff6600 }
  </style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: "{{.SpecURL}}", dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`))

// normalize convierte los mapas con keys no-string que pueda producir yaml.v3
// en map[string]any, para poder serializarlos a JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	}
	return v
}
