// Package errors define los errores HTTP y cómo se serializan.
//
// Hay dos formatos de respuesta:
//   - WriteError: errores de ruta y globales, {"error", "message"}.
//   - WriteEnvelope: errores de los endpoints de clients, {"success": false, "message"}.
package errors

import (
	"encoding/json"
	"net/http"
)

// errorResponse es el cuerpo de los errores de ruta y globales.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// envelopeResponse es el cuerpo de error de los endpoints de clients.
type envelopeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteError escribe {"error": Message, "message": Detail}.
func WriteError(w http.ResponseWriter, err error) {
	writeError(w, FromError(err), "")
}

// WriteErrorWithStack igual que WriteError pero incluye el stack (solo modo dev).
func WriteErrorWithStack(w http.ResponseWriter, err error, stack string) {
	writeError(w, FromError(err), stack)
}

func writeError(w http.ResponseWriter, appErr *AppError, stack string) {
	resp := errorResponse{
		Error:   appErr.Message,
		Message: appErr.Detail,
		Stack:   stack,
	}
	writeJSON(w, appErr.HTTPStatus, resp)
}

// WriteEnvelope escribe {"success": false, "message": ...} con el status del error.
func WriteEnvelope(w http.ResponseWriter, err error) {
	appErr := FromError(err)
	writeJSON(w, appErr.HTTPStatus, envelopeResponse{
		Success: false,
		Message: appErr.UserMessage(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
