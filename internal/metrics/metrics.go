// Package metrics expone contadores prometheus del servicio: requests
// HTTP y resultados por acción.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dash",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests HTTP por método, path y status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dash",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duración de requests HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	actionResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dash",
		Subsystem: "actions",
		Name:      "results_total",
		Help:      "Resultados de acciones por acción y outcome (ok, validation, auth, remote).",
	}, []string{"action", "outcome"})

	viewInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dash",
		Subsystem: "views",
		Name:      "invalidations_total",
		Help:      "Invalidaciones de vista por path.",
	}, []string{"view"})
)

// Handler expone /metrics.
func Handler() http.Handler { return promhttp.Handler() }

// Action registra el resultado de una acción.
func Action(action, outcome string) {
	actionResults.WithLabelValues(action, outcome).Inc()
}

// ViewInvalidated registra una invalidación de vista.
func ViewInvalidated(view string) {
	viewInvalidations.WithLabelValues(view).Inc()
}

// statusRecorder mínimo para capturar el status.
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

// WithMetrics instrumenta requests HTTP. Usa el path del patrón registrado
// tal como llega; las rutas de este servicio no tienen IDs en el path así
// que la cardinalidad queda acotada.
func WithMetrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			httpRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(status)).Inc()
			httpDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		})
	}
}
