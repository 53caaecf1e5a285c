package middleware

import (
	"log/slog"
	"net/http"

	"fintrack/internal/domain/entity"
	"fintrack/internal/handler/http/respond"
	"fintrack/internal/validation"
)

// screeningExempt lists paths whose requests skip header screening.
// Probes from orchestrators carry unusual or empty headers; they still
// pass through the rest of the middleware chain.
var screeningExempt = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
}

// InputSanity screens the User-Agent and Referer request headers for
// injection payloads before the request reaches any handler. Requests
// carrying a flagged header are rejected with 400; the offending value is
// logged but never echoed back to the client.
func InputSanity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if screeningExempt[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		for _, hdr := range []struct {
			name  string
			label string
		}{
			{"User-Agent", "user_agent"},
			{"Referer", "referer"},
		} {
			value := r.Header.Get(hdr.name)
			if value == "" {
				continue
			}
			if err := screenHeader(hdr.label, value); err != nil {
				inputSanityRejectedTotal.WithLabelValues(hdr.label).Inc()
				slog.Warn("request header failed screening",
					slog.String("header", hdr.name),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
				)
				respond.ValidationFailed(w, err)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func screenHeader(field, value string) error {
	if validation.ContainsSQLInjection(value) {
		return entity.NewValidationError(field, entity.RedactedValue,
			"header contains a potential SQL injection pattern", entity.ErrSQLInjectionDetected)
	}
	if validation.ContainsXSS(value) {
		return entity.NewValidationError(field, entity.RedactedValue,
			"header contains a potential XSS pattern", entity.ErrXSSDetected)
	}
	return nil
}
