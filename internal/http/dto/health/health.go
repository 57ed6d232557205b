// Package health contiene los DTOs de /healthz y /readyz.
package health

import "time"

const (
	StatusReady       = "ready"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
)

// HealthStatus es el estado de un componente: "ok" | "error" | "disabled".
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse es el cuerpo de /readyz.
type HealthResponse struct {
	Status     string                  `json:"status"`
	Mode       string                  `json:"mode"`
	Components map[string]HealthStatus `json:"components"`
	Version    string                  `json:"version,omitempty"`
	Timestamp  time.Time               `json:"timestamp"`
}

// LivenessResponse es el cuerpo de /healthz.
type LivenessResponse struct {
	Status string `json:"status"`
}
