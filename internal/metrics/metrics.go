// Package metrics expone las métricas Prometheus del servicio.
package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Número total de requests procesadas",
	}, []string{"method", "path", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latencia de los requests HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	httpInflight = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "http_inflight_requests",
		Help: "Requests en vuelo por método y ruta",
	}, []string{"method", "path"})

	storeDurable = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "store_durable_active",
		Help: "1 si la última operación usó el store durable, 0 si usó el fallback en memoria",
	})

	clientOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "client_operations_total",
		Help: "Operaciones del servicio de clients por resultado",
	}, []string{"op", "outcome", "store"})

	logWriteFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "log_write_failures_total",
		Help: "Escrituras de log de auditoría que fallaron y fueron descartadas",
	})
)

// Config agrupa las dependencias para exponer /metrics.
type Config struct {
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
}

// Register registra los collectors y devuelve el handler para /metrics.
// Es idempotente: los collectors ya registrados se ignoran.
func Register(cfg Config) (http.Handler, error) {
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{
		httpRequestsTotal, httpRequestDuration, httpInflight,
		storeDurable, clientOperations, logWriteFailures,
	} {
		if err := registerCollector(reg, c); err != nil {
			return nil, err
		}
	}

	if cfg.Gatherer != nil {
		return promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}), nil
	}
	return promhttp.Handler(), nil
}

// SetStoreMode actualiza el gauge del store activo.
func SetStoreMode(durable bool) {
	if durable {
		storeDurable.Set(1)
		return
	}
	storeDurable.Set(0)
}

// RecordClientOperation cuenta una operación del servicio de clients.
func RecordClientOperation(op, outcome, store string) {
	clientOperations.WithLabelValues(op, outcome, store).Inc()
}

// RecordLogWriteFailure cuenta una escritura de log descartada.
func RecordLogWriteFailure() {
	logWriteFailures.Inc()
}

// WithMetrics instrumenta requests HTTP (contadores, latencia, inflight).
// Usa el patrón de ruta de chi cuando está disponible para acotar la cardinalidad.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := strings.ToUpper(r.Method)
		inflightLabel := normalizePath(r.URL.Path)

		httpInflight.WithLabelValues(method, inflightLabel).Inc()
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		defer func() {
			httpInflight.WithLabelValues(method, inflightLabel).Dec()

			pathLabel := inflightLabel
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" && !strings.HasSuffix(p, "/*") {
					pathLabel = p
				}
			}
			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			httpRequestDuration.WithLabelValues(method, pathLabel).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(method, pathLabel, strconv.Itoa(status)).Inc()
		}()

		next.ServeHTTP(rec, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// registerCollector registra el collector ignorando duplicados.
func registerCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

var (
	uuidSegmentRE = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F-]{4}-[0-9a-fA-F-]{4,}$`)
	hexSegmentRE  = regexp.MustCompile(`^[0-9a-fA-F]{16,}$`)
)

// normalizePath reemplaza segmentos dinámicos (numeros, uuids) por ":param".
func normalizePath(p string) string {
	clean := strings.SplitN(p, "?", 2)[0]
	var out []string
	for _, seg := range strings.Split(clean, "/") {
		if seg == "" {
			continue
		}
		if isDynamicSegment(seg) {
			out = append(out, ":param")
		} else {
			out = append(out, seg)
		}
	}
	if len(out) == 0 {
		return "/"
	}
	return "/" + strings.Join(out, "/")
}

func isDynamicSegment(seg string) bool {
	if len(seg) > 48 || uuidSegmentRE.MatchString(seg) || hexSegmentRE.MatchString(seg) {
		return true
	}
	if _, err := strconv.Atoi(seg); err == nil {
		return true
	}
	// numeros de client tipo "CLI001": letras seguidas de dígitos
	return hasDigit(seg) && !strings.ContainsAny(seg, "-_.")
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
