package http

import (
	"net/http"

	"fintrack/internal/validation"
)

// maxAuthHeaderBytes caps the Authorization header. JWTs are well under
// 1KB; the headroom covers unusually large claim sets.
const maxAuthHeaderBytes = 8192

// maxPathBytes caps the URI path length.
const maxPathBytes = 2048

// InputLimits returns middleware that rejects oversized request surfaces
// before any parsing happens: Authorization header, URI path, and body.
func InputLimits() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"authorization header too large"}`))
				return
			}

			if len(r.URL.Path) > maxPathBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestURITooLong)
				_, _ = w.Write([]byte(`{"error":"URI too long"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, validation.MaxRequestBodyBytes)

			next.ServeHTTP(w, r)
		})
	}
}
