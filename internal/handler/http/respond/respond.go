// Package respond provides the secure JSON response writer for the API.
// Every response carries the browser-hardening header set, error messages
// are sanitized before they are embedded in a body, and attacker-supplied
// payloads are never echoed back to the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/domain/entity"
	"fintrack/internal/validation"
)

// internalErrorBody is the fixed fallback emitted when response encoding or
// message sanitization itself fails. It must stay a literal: the fallback
// path cannot depend on the encoder that just failed.
const internalErrorBody = `{"error":"internal server error"}`

// securityHeaders are attached to every response before status and body.
var securityHeaders = map[string]string{
	"Content-Type":           "application/json",
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"X-XSS-Protection":       "1; mode=block",
}

// JSON writes a JSON response with the given status code and data.
// Headers are set before the status line; the body is encoded up front so
// an encoding failure can still fall back to a clean 500 instead of a
// half-written response.
func JSON(w http.ResponseWriter, code int, v any) {
	for name, value := range securityHeaders {
		w.Header().Set(name, value)
	}

	if v == nil {
		w.WriteHeader(code)
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return
	}

	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// errorBody is the uniform error response shape.
type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Error writes a JSON error response carrying a sanitized message and, for
// validation failures, the offending field name. The raw input value held by
// a ValidationError is deliberately dropped: it belongs in operator logs,
// never in a response body.
func Error(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		JSON(w, code, errorBody{Error: safeMessage(verr.Message), Field: verr.Field})
		return
	}
	JSON(w, code, errorBody{Error: safeMessage(err.Error())})
}

// SafeError sanitizes error messages before returning them to users.
// Validation errors are considered safe (their messages are authored by the
// validators, not the client); anything else, and every 5xx, is logged with
// secrets masked and replaced by a generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var verr *entity.ValidationError
	isSafe := errors.As(err, &verr) && code < 500

	if !isSafe {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", MaskSecrets(err)))
		if code < 500 {
			JSON(w, code, errorBody{Error: "request rejected"})
			return
		}
		JSON(w, code, errorBody{Error: "internal server error"})
		return
	}

	Error(w, code, err)
}

// ValidationFailed maps a validation error kind to its HTTP status and
// writes the response. All taxonomy kinds are client faults (400); unknown
// errors degrade to 500.
func ValidationFailed(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		SafeError(w, http.StatusInternalServerError, err)
		return
	}
	Error(w, http.StatusBadRequest, verr)
}

// safeMessage passes an outgoing message through the generic sanitizer so an
// error response is never itself unsafe to render. If sanitization fails the
// fixed generic message is substituted.
func safeMessage(msg string) string {
	sanitized, err := validation.SanitizeString(msg)
	if err != nil {
		return "invalid request"
	}
	return sanitized
}
