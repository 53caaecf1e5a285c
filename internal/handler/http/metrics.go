package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/domain/entity"
	"fintrack/internal/handler/http/pathutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Buckets cover fast validation rejections (a few ms) through slow
	// database-bound requests, so p95/p99 stay measurable at both ends.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// Validation outcomes per error kind, labelled with the sentinel name
	// (bounded set) rather than field names or values.
	validationRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_rejections_total",
			Help: "Total number of requests rejected by input validation",
		},
		[]string{"kind"},
	)

)

// responseWriter wraps http.ResponseWriter to record status code and response size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// MetricsMiddleware records request metrics. Paths are normalized before
// becoming label values (/sources/123 -> /sources/:id) so client-chosen
// IDs never explode label cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(r.ContentLength))
		}

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(rw.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, normalizedPath, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(rw.size))
	})
}

// MetricsHandler returns the Prometheus scrape endpoint handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RecordValidationRejection counts a request rejected by input validation,
// labeled by the sentinel kind of the failure. Field names and values never
// become labels; the cardinality stays bounded by the taxonomy.
func RecordValidationRejection(err error) {
	validationRejectionsTotal.WithLabelValues(rejectionKind(err)).Inc()
}

func rejectionKind(err error) string {
	switch {
	case errors.Is(err, entity.ErrSQLInjectionDetected):
		return "sql_injection_detected"
	case errors.Is(err, entity.ErrXSSDetected):
		return "xss_detected"
	case errors.Is(err, entity.ErrInvalidCharacters):
		return "invalid_characters"
	case errors.Is(err, entity.ErrInputTooLong):
		return "input_too_long"
	case errors.Is(err, entity.ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, entity.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, entity.ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
