// Package http provides HTTP handlers and middleware for the finance API.
// It wires request decoding, input validation, and safe response writing
// around the use-case layer.
package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"fintrack/internal/handler/http/middleware"
	"fintrack/internal/handler/http/respond"
)

// HealthResponse is the JSON body for the health endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks,omitempty"`
	Version   string                 `json:"version,omitempty"`
}

// CheckStatus reports the outcome of a single readiness check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler serves the liveness and readiness endpoints.
// Liveness (/healthz) never touches dependencies. Readiness (/readyz)
// pings the database and reports rate limiter occupancy.
type HealthHandler struct {
	DB      *sql.DB
	Limiter *middleware.RateLimiter
	Version string
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.Version,
	})
}

// Readiness handles GET /readyz.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	healthy := true

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			healthy = false
			checks["database"] = CheckStatus{
				Status:  "unhealthy",
				Message: "database ping failed",
			}
		} else {
			checks["database"] = CheckStatus{Status: "healthy"}
		}
	}

	if h.Limiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status: "healthy",
			Details: map[string]any{
				"active_clients": h.Limiter.ActiveClients(),
			},
		}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}
