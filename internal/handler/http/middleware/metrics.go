package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rateLimitAllowedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_allowed_total",
			Help: "Total number of requests allowed by the rate limiter",
		},
	)

	rateLimitRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejected_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	rateLimitActiveClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limit_active_clients",
			Help: "Number of client records currently tracked by the rate limiter",
		},
	)

	// Labelled by the header that tripped the screen ("user_agent" or
	// "referer"); client values never become label values.
	inputSanityRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "input_sanity_rejected_total",
			Help: "Total number of requests rejected by header screening",
		},
		[]string{"header"},
	)
)
