package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts authentication requests by endpoint and result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total authentication requests by endpoint and result",
		},
		[]string{"endpoint", "result"}, // result: success | failure
	)

	// authDuration tracks authentication duration by endpoint.
	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Authentication duration by endpoint",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"endpoint"},
	)
)

// recordAuth records one authentication attempt with its duration.
func recordAuth(endpoint, result string, seconds float64) {
	authRequestsTotal.WithLabelValues(endpoint, result).Inc()
	authDuration.WithLabelValues(endpoint).Observe(seconds)
}
