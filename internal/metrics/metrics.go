// Package metrics provides Prometheus metrics for the webftp gateway.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webftp_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webftp_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Session metrics
	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "webftp_sessions_active",
			Help: "Number of live remote sessions",
		},
	)

	sessionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webftp_sessions_created_total",
			Help: "Total sessions created",
		},
		[]string{"protocol"},
	)

	sessionsEvictedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webftp_sessions_evicted_total",
			Help: "Total sessions torn down",
		},
		[]string{"reason"},
	)

	connectAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webftp_connect_attempts_total",
			Help: "Total connect attempts by outcome",
		},
		[]string{"protocol", "result"},
	)

	// Transfer metrics
	transferBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webftp_transfer_bytes_total",
			Help: "Total bytes relayed between clients and remote servers",
		},
		[]string{"direction", "protocol"},
	)

	transfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webftp_transfers_total",
			Help: "Total transfers by outcome",
		},
		[]string{"direction", "status"},
	)
)

// Eviction reasons.
const (
	ReasonIdle       = "idle"
	ReasonDisconnect = "disconnect"
	ReasonShutdown   = "shutdown"
)

// Transfer directions.
const (
	Download = "download"
	Upload   = "upload"
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SessionCreated records a new session.
func SessionCreated(protocol string) {
	sessionsCreatedTotal.WithLabelValues(protocol).Inc()
	sessionsActive.Inc()
}

// SessionEvicted records a torn down session.
func SessionEvicted(reason string) {
	sessionsEvictedTotal.WithLabelValues(reason).Inc()
	sessionsActive.Dec()
}

// RecordConnect records a connect attempt.
func RecordConnect(protocol string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	connectAttemptsTotal.WithLabelValues(protocol, result).Inc()
}

// RecordTransfer records a finished download or upload.
func RecordTransfer(direction, protocol string, bytes int64, success bool) {
	transferBytesTotal.WithLabelValues(direction, protocol).Add(float64(bytes))
	status := "success"
	if !success {
		status = "error"
	}
	transfersTotal.WithLabelValues(direction, status).Inc()
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush keeps streamed downloads flowing through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware returns HTTP middleware that records request metrics.  Requests are labelled with their mux route
// template so ids in query strings or paths do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if cr := mux.CurrentRoute(r); cr != nil {
			if tpl, err := cr.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		RecordHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
	})
}
