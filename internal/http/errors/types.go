package errors

import (
	"fmt"
	"net/http"
)

// AppError define la estructura estándar para errores HTTP del servicio.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // causa original, solo para logs
}

// Error implementa la interfaz error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap permite acceder al error original
func (e *AppError) Unwrap() error {
	return e.Err
}

// FromError convierte un error genérico en AppError.
// Si no es un AppError devuelve un error interno conservando la causa.
func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrInternalServerError.WithCause(err)
}

// WithDetail devuelve una COPIA del error con el detalle indicado.
func (e *AppError) WithDetail(detail string) *AppError {
	newErr := *e
	newErr.Detail = detail
	return &newErr
}

// WithCause devuelve una COPIA del error con la causa indicada.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// UserMessage es el texto que ve el cliente: el detalle si existe, si no el mensaje.
func (e *AppError) UserMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

// =================================================================================
// ERRORES PREDEFINIDOS
// =================================================================================

// 400 Bad Request

var (
	ErrInvalidJSON = &AppError{
		Code:       "INVALID_JSON",
		Message:    "Le corps de la requête doit être un JSON valide",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrMissingFields = &AppError{
		Code:       "MISSING_FIELDS",
		Message:    "Les champs numero, statut et nom sont obligatoires",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrBusinessRule cubre los errores de negocio (no encontrado, inactivo,
	// duplicado, validación). El mensaje concreto va en Detail.
	ErrBusinessRule = &AppError{
		Code:       "BUSINESS_RULE",
		Message:    "Opération refusée",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrBodyTooLarge = &AppError{
		Code:       "BODY_TOO_LARGE",
		Message:    "Le corps de la requête est trop volumineux",
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}
)

// 404 Not Found

var (
	ErrRouteNotFound = &AppError{
		Code:       "ROUTE_NOT_FOUND",
		Message:    "Route non trouvée",
		HTTPStatus: http.StatusNotFound,
	}
)

// 429 Too Many Requests

var (
	ErrRateLimitExceeded = &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Trop de requêtes",
		HTTPStatus: http.StatusTooManyRequests,
	}
)

// 500 Internal Server Error

var (
	ErrInternalServerError = &AppError{
		Code:       "INTERNAL_SERVER_ERROR",
		Message:    "Erreur interne du serveur",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrStoreFailure = &AppError{
		Code:       "STORE_FAILURE",
		Message:    "Erreur de stockage",
		HTTPStatus: http.StatusInternalServerError,
	}
)
