// Package apiclient es un cliente HTTP tipado para la API de gestión de clients.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client habla con la API en BaseURL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New crea un Client con timeout por defecto.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError es una respuesta no 2xx de la API.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status=%d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status=%d body=%s", e.Status, string(e.Body))
}

// ClientData es un client tal como lo devuelve la API.
type ClientData struct {
	ID        string    `json:"id"`
	Numero    string    `json:"numero"`
	Statut    string    `json:"statut"`
	Nom       string    `json:"nom"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LogEntry es un log de auditoría.
type LogEntry struct {
	ID      string    `json:"id"`
	Numero  string    `json:"numero"`
	Statut  string    `json:"statut"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// CreateInput es el body de creación.
type CreateInput struct {
	Numero string `json:"numero"`
	Statut string `json:"statut"`
	Nom    string `json:"nom"`
	Email  string `json:"email,omitempty"`
}

// UpdateInput es el body de actualización; nil no modifica el campo.
type UpdateInput struct {
	Statut *string `json:"statut,omitempty"`
	Nom    *string `json:"nom,omitempty"`
	Email  *string `json:"email,omitempty"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// Readiness es el cuerpo de /readyz.
type Readiness struct {
	Status     string `json:"status"`
	Mode       string `json:"mode"`
	Version    string `json:"version"`
	Components map[string]struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"components"`
}

// ListClients lista los clients, opcionalmente filtrados por statut.
func (c *Client) ListClients(ctx context.Context, statut string) ([]ClientData, error) {
	path := "/api/clients"
	if statut != "" {
		path += "?statut=" + url.QueryEscape(statut)
	}
	var out []ClientData
	_, err := c.doEnvelope(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// GetClient retorna un client activo.
func (c *Client) GetClient(ctx context.Context, numero string) (*ClientData, error) {
	var out ClientData
	if _, err := c.doEnvelope(ctx, http.MethodGet, clientPath(numero), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient crea un client.
func (c *Client) CreateClient(ctx context.Context, in CreateInput) (*ClientData, error) {
	var out ClientData
	if _, err := c.doEnvelope(ctx, http.MethodPost, "/api/clients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient modifica un client.
func (c *Client) UpdateClient(ctx context.Context, numero string, in UpdateInput) (*ClientData, error) {
	var out ClientData
	if _, err := c.doEnvelope(ctx, http.MethodPut, clientPath(numero), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient elimina un client y retorna el snapshot eliminado.
func (c *Client) DeleteClient(ctx context.Context, numero string) (*ClientData, error) {
	var out ClientData
	if _, err := c.doEnvelope(ctx, http.MethodDelete, clientPath(numero), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logs retorna los logs de auditoría, el más reciente primero.
func (c *Client) Logs(ctx context.Context) ([]LogEntry, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/logs", nil)
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, apiError(status, body)
	}
	var out []LogEntry
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("api: decode logs: %w", err)
	}
	return out, nil
}

// Ready consulta /readyz. Un 503 se retorna como *APIError.
func (c *Client) Ready(ctx context.Context) (*Readiness, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, apiError(status, body)
	}
	var out Readiness
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("api: decode readiness: %w", err)
	}
	return &out, nil
}

func clientPath(numero string) string {
	return "/api/clients/" + url.PathEscape(numero)
}

// doEnvelope ejecuta el request y decodifica data del envelope en out.
func (c *Client) doEnvelope(ctx context.Context, method, path string, in, out any) (string, error) {
	status, body, err := c.do(ctx, method, path, in)
	if err != nil {
		return "", err
	}
	if status/100 != 2 {
		return "", apiError(status, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("api: decode envelope: %w", err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("api: decode data: %w", err)
		}
	}
	return env.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any) (int, []byte, error) {
	var rdr io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, nil, err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rdr)
	if err != nil {
		return 0, nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, b, nil
}

// apiError extrae el mensaje de los dos formatos de error de la API.
func apiError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	return &APIError{Status: status, Message: msg, Body: body}
}
