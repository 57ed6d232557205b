// Package logs contiene el controller de /logs.
package logs

import (
	"net/http"

	dto "github.com/dropDatabas3/gesclient/internal/http/dto/logs"
	httperrors "github.com/dropDatabas3/gesclient/internal/http/errors"
	"github.com/dropDatabas3/gesclient/internal/http/helpers"
	svc "github.com/dropDatabas3/gesclient/internal/http/services/logs"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
)

// LogsController maneja GET /logs.
type LogsController struct {
	service svc.LogService
}

// NewLogsController crea un nuevo controller de logs.
func NewLogsController(service svc.LogService) *LogsController {
	return &LogsController{service: service}
}

// List responde el array de logs, el más reciente primero.
func (c *LogsController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.service.List(r.Context())
	if err != nil {
		logger.From(r.Context()).Error("list logs failed",
			logger.Layer("controller"), logger.Op("LogsController.List"), logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrStoreFailure.WithDetail(err.Error()).WithCause(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.FromLogs(list))
}
