// Package clients contiene el service de negocio de clients.
//
// Cada operación deja exactamente un log de auditoría con su resultado final,
// sea cual sea el store activo.
package clients

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
	"github.com/dropDatabas3/gesclient/internal/metrics"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
	"github.com/dropDatabas3/gesclient/internal/store"
)

// ClientService define las operaciones de negocio sobre clients.
type ClientService interface {
	// GetByNumero retorna el client solo si está activo.
	GetByNumero(ctx context.Context, numero string) (*repository.Client, error)
	List(ctx context.Context, filter repository.ClientFilter) ([]repository.Client, error)
	Create(ctx context.Context, in CreateInput) (*repository.Client, error)
	// Update aplica un merge parcial. El numero nunca cambia.
	Update(ctx context.Context, numero string, patch repository.ClientPatch) (*repository.Client, error)
	// Delete retorna el snapshot eliminado.
	Delete(ctx context.Context, numero string) (*repository.Client, error)
}

// CreateInput son los datos de un client nuevo.
type CreateInput struct {
	Numero string
	Statut string
	Nom    string
	Email  string
}

// Store abstrae la selección del store activo (store.Manager).
// Se consulta una sola vez por operación: el client y su log de auditoría
// van al mismo store.
type Store interface {
	Conn(ctx context.Context) (store.AdapterConnection, store.Mode)
}

// Recorder registra logs de auditoría en un repositorio dado (logs.LogService).
type Recorder interface {
	RecordIn(ctx context.Context, repo repository.LogRepository, mode store.Mode, numero, statut, message string)
}

// Deps contiene las dependencias del service.
type Deps struct {
	Store Store
	Audit Recorder
}

type clientService struct {
	store Store
	audit Recorder
}

// NewClientService crea el service de clients.
func NewClientService(d Deps) ClientService {
	return &clientService{store: d.Store, audit: d.Audit}
}

const componentClients = "clients"

func (s *clientService) GetByNumero(ctx context.Context, numero string) (*repository.Client, error) {
	conn, mode := s.store.Conn(ctx)
	repo := conn.Clients()

	c, err := repo.GetByNumero(ctx, numero)
	switch {
	case repository.IsNotFound(err):
		return nil, s.fail(ctx, "get", conn, mode, numero, KindNotFound, MsgNotFound, MsgNotFound, nil)
	case err != nil:
		msg := fmt.Sprintf(MsgGetFailed, err)
		return nil, s.fail(ctx, "get", conn, mode, numero, KindStore, msg, msg, err)
	case !c.IsActive():
		return nil, s.fail(ctx, "get", conn, mode, numero, KindInactive, MsgInactive, MsgInactive, nil)
	}

	s.succeed(ctx, "get", conn, mode, numero, MsgFound)
	return c, nil
}

func (s *clientService) List(ctx context.Context, filter repository.ClientFilter) ([]repository.Client, error) {
	conn, mode := s.store.Conn(ctx)
	repo := conn.Clients()

	list, err := repo.List(ctx, filter)
	if err != nil {
		msg := fmt.Sprintf(MsgListFailed, err)
		return nil, s.fail(ctx, "list", conn, mode, repository.LogNumeroAll, KindStore, msg, msg, err)
	}

	s.succeed(ctx, "list", conn, mode, repository.LogNumeroAll, fmt.Sprintf(MsgListed, len(list)))
	return list, nil
}

func (s *clientService) Create(ctx context.Context, in CreateInput) (*repository.Client, error) {
	conn, mode := s.store.Conn(ctx)
	repo := conn.Clients()

	numero := in.Numero
	if numero == "" {
		numero = repository.LogNumeroUnknown
	}

	if in.Numero == "" || in.Statut == "" || in.Nom == "" {
		return nil, s.fail(ctx, "create", conn, mode, numero, KindValidation,
			fmt.Sprintf(MsgCreateFailed, MsgMissingFields), MsgMissingFields, nil)
	}
	if !repository.ValidStatut(in.Statut) {
		return nil, s.fail(ctx, "create", conn, mode, numero, KindValidation,
			fmt.Sprintf(MsgCreateFailed, MsgInvalidStatut), MsgInvalidStatut, nil)
	}

	c, err := repo.Create(ctx, repository.Client{
		Numero: in.Numero,
		Statut: in.Statut,
		Nom:    in.Nom,
		Email:  in.Email,
	})
	switch {
	case repository.IsConflict(err):
		return nil, s.fail(ctx, "create", conn, mode, numero, KindConflict, MsgDuplicateLog, MsgDuplicate, err)
	case err != nil:
		msg := fmt.Sprintf(MsgCreateFailed, err)
		return nil, s.fail(ctx, "create", conn, mode, numero, KindStore, msg, msg, err)
	}

	s.succeed(ctx, "create", conn, mode, numero, MsgCreated)
	return c, nil
}

func (s *clientService) Update(ctx context.Context, numero string, patch repository.ClientPatch) (*repository.Client, error) {
	conn, mode := s.store.Conn(ctx)
	repo := conn.Clients()

	if msg := validatePatch(patch); msg != "" {
		return nil, s.fail(ctx, "update", conn, mode, numero, KindValidation,
			fmt.Sprintf(MsgUpdateFailed, msg), msg, nil)
	}

	c, err := repo.Update(ctx, numero, patch)
	switch {
	case repository.IsNotFound(err):
		return nil, s.fail(ctx, "update", conn, mode, numero, KindNotFound, MsgUpdateNotFoundLog, MsgNotFound, err)
	case err != nil:
		msg := fmt.Sprintf(MsgUpdateFailed, err)
		return nil, s.fail(ctx, "update", conn, mode, numero, KindStore, msg, msg, err)
	}

	s.succeed(ctx, "update", conn, mode, numero, MsgUpdated)
	return c, nil
}

func (s *clientService) Delete(ctx context.Context, numero string) (*repository.Client, error) {
	conn, mode := s.store.Conn(ctx)
	repo := conn.Clients()

	c, err := repo.Delete(ctx, numero)
	switch {
	case repository.IsNotFound(err):
		return nil, s.fail(ctx, "delete", conn, mode, numero, KindNotFound, MsgDeleteNotFoundLog, MsgNotFound, err)
	case err != nil:
		msg := fmt.Sprintf(MsgDeleteFailed, err)
		return nil, s.fail(ctx, "delete", conn, mode, numero, KindStore, msg, msg, err)
	}

	s.succeed(ctx, "delete", conn, mode, numero, MsgDeleted)
	return c, nil
}

// validatePatch retorna el mensaje de validación, o "" si el patch es válido.
func validatePatch(p repository.ClientPatch) string {
	if p.Statut != nil && !repository.ValidStatut(*p.Statut) {
		return MsgInvalidStatut
	}
	if p.Nom != nil && *p.Nom == "" {
		return MsgEmptyNom
	}
	return ""
}

func (s *clientService) succeed(ctx context.Context, op string, conn store.AdapterConnection, mode store.Mode, numero, logMsg string) {
	s.audit.RecordIn(ctx, conn.Logs(), mode, numero, repository.LogStatutSucces, logMsg)
	metrics.RecordClientOperation(op, "success", string(mode))
}

// fail registra el log de error y construye el *Error devuelto al caller.
func (s *clientService) fail(ctx context.Context, op string, conn store.AdapterConnection, mode store.Mode, numero string, kind Kind, logMsg, userMsg string, cause error) error {
	s.audit.RecordIn(ctx, conn.Logs(), mode, numero, repository.LogStatutErreur, logMsg)
	metrics.RecordClientOperation(op, kind.String(), string(mode))

	if kind == KindStore {
		logger.From(ctx).Error("client operation failed",
			logger.Layer("service"),
			logger.Component(componentClients),
			logger.Op(op),
			logger.Numero(numero),
			logger.StoreMode(string(mode)),
			logger.Err(cause),
		)
	}
	return &Error{Kind: kind, Message: userMsg, Err: cause}
}
