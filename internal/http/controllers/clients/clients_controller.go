// Package clients contiene el controller de /api/clients.
package clients

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
	dto "github.com/dropDatabas3/gesclient/internal/http/dto/clients"
	httperrors "github.com/dropDatabas3/gesclient/internal/http/errors"
	"github.com/dropDatabas3/gesclient/internal/http/helpers"
	svc "github.com/dropDatabas3/gesclient/internal/http/services/clients"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
	"github.com/dropDatabas3/gesclient/internal/util"
)

// ClientsController maneja las rutas /api/clients
type ClientsController struct {
	service svc.ClientService
}

// NewClientsController crea un nuevo controller de clients.
func NewClientsController(service svc.ClientService) *ClientsController {
	return &ClientsController{service: service}
}

// List maneja GET /api/clients?statut=
func (c *ClientsController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := repository.ClientFilter{Statut: r.URL.Query().Get("statut")}

	list, err := c.service.List(ctx, filter)
	if err != nil {
		writeServiceError(w, r, "ClientsController.List", err)
		return
	}

	count := len(list)
	helpers.WriteJSON(w, http.StatusOK, dto.Envelope{
		Success: true,
		Count:   &count,
		Data:    dto.FromClients(list),
	})
}

// Get maneja GET /api/clients/{numero}
func (c *ClientsController) Get(w http.ResponseWriter, r *http.Request) {
	numero := chi.URLParam(r, "numero")

	client, err := c.service.GetByNumero(r.Context(), numero)
	if err != nil {
		writeServiceError(w, r, "ClientsController.Get", err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.Envelope{
		Success: true,
		Data:    dto.FromClient(*client),
	})
}

// Create maneja POST /api/clients
func (c *ClientsController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateClientRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteEnvelope(w, err)
		return
	}
	if !req.HasRequiredFields() {
		httperrors.WriteEnvelope(w, httperrors.ErrMissingFields)
		return
	}

	client, err := c.service.Create(ctx, svc.CreateInput{
		Numero: req.Numero,
		Statut: req.Statut,
		Nom:    req.Nom,
		Email:  req.Email,
	})
	if err != nil {
		writeServiceError(w, r, "ClientsController.Create", err)
		return
	}

	logger.From(ctx).Info("client created",
		logger.Layer("controller"),
		logger.Numero(client.Numero),
		logger.String("email", util.MaskEmail(client.Email)),
	)
	helpers.WriteJSON(w, http.StatusCreated, dto.Envelope{
		Success: true,
		Message: svc.MsgCreated,
		Data:    dto.FromClient(*client),
	})
}

// Update maneja PUT /api/clients/{numero}
func (c *ClientsController) Update(w http.ResponseWriter, r *http.Request) {
	numero := chi.URLParam(r, "numero")

	var req dto.UpdateClientRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteEnvelope(w, err)
		return
	}

	// el numero del body se ignora: manda el del path
	client, err := c.service.Update(r.Context(), numero, req.Patch())
	if err != nil {
		writeServiceError(w, r, "ClientsController.Update", err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.Envelope{
		Success: true,
		Message: svc.MsgUpdated,
		Data:    dto.FromClient(*client),
	})
}

// Delete maneja DELETE /api/clients/{numero}
func (c *ClientsController) Delete(w http.ResponseWriter, r *http.Request) {
	numero := chi.URLParam(r, "numero")

	client, err := c.service.Delete(r.Context(), numero)
	if err != nil {
		writeServiceError(w, r, "ClientsController.Delete", err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.Envelope{
		Success: true,
		Message: svc.MsgDeleted,
		Data:    dto.FromClient(*client),
	})
}

// writeServiceError mapea errores del service: negocio → 400, resto → 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if svc.IsBusiness(err) {
		httperrors.WriteEnvelope(w, httperrors.ErrBusinessRule.WithDetail(err.Error()).WithCause(err))
		return
	}

	logger.From(r.Context()).Error("client operation failed",
		logger.Layer("controller"), logger.Op(op), logger.Err(err))
	httperrors.WriteEnvelope(w, httperrors.ErrStoreFailure.WithDetail(err.Error()).WithCause(err))
}
