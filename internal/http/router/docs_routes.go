package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/gesclient/internal/http/controllers/docs"
)

// docsBases son los prefijos donde se publica la documentación.
var docsBases = []string{"/api-docs", "/api/api-docs"}

// RegisterDocsRoutes registra Swagger UI y el documento OpenAPI en cada prefijo.
func RegisterDocsRoutes(r chi.Router, c *ctrl.DocsController) {
	for _, base := range docsBases {
		r.Get(base, c.UI)
		r.Get(base+"/", c.UI)
		r.Get(base+"/openapi.json", c.JSON)
		r.Get(base+"/openapi.yaml", c.YAML)
	}
}
