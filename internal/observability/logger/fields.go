package logger

import (
	"go.uber.org/zap"
)

// --- HTTP ---

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }
func ClientIP(v string) zap.Field  { return zap.String("client_ip", v) }
func UserAgent(v string) zap.Field { return zap.String("user_agent", v) }

// --- Sistema ---

// Component identifica el módulo (ej: "clients", "store.manager").
func Component(v string) zap.Field { return zap.String("component", v) }

// Op identifica la operación en curso.
func Op(v string) zap.Field { return zap.String("op", v) }

// Layer identifica la capa (controller, service, store).
func Layer(v string) zap.Field { return zap.String("layer", v) }

func Err(err error) zap.Field { return zap.Error(err) }

// --- Dominio ---

// Numero es el identificador de negocio de un client.
func Numero(v string) zap.Field { return zap.String("numero", v) }

// Statut es el estado de un client o de un log.
func Statut(v string) zap.Field { return zap.String("statut", v) }

// StoreMode indica qué store atendió la operación (durable | memory).
func StoreMode(v string) zap.Field { return zap.String("store_mode", v) }

// Driver es el nombre del adapter de almacenamiento.
func Driver(v string) zap.Field { return zap.String("driver", v) }

// --- Genéricos ---

func Count(v int) zap.Field             { return zap.Int("count", v) }
func Any(key string, v any) zap.Field   { return zap.Any(key, v) }
func String(key, v string) zap.Field    { return zap.String(key, v) }
func Int(key string, v int) zap.Field   { return zap.Int(key, v) }
func Bool(key string, v bool) zap.Field { return zap.Bool(key, v) }
