package validation

import (
	"html"
	"strings"
	"unicode/utf8"

	"fintrack/internal/domain/entity"
)

// SanitizeString trims surrounding whitespace and HTML-entity-encodes the
// result so it is inert when later rendered in an HTML context. It returns
// ErrInvalidFormat if the result is not valid UTF-8.
//
// Sanitizing an already-sanitized value is a no-op: html.EscapeString only
// rewrites the five metacharacters &<>"' and leaves existing entities alone
// because the ampersand introducing them was already encoded on the first
// pass. Callers rely on this idempotence when values are re-validated.
func SanitizeString(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	// Trim again after encoding: decoding can surface whitespace that an
	// entity (e.g. &#32;) was hiding at the edges.
	escaped := strings.TrimSpace(escapeOnce(trimmed))

	if !utf8.ValidString(escaped) {
		return "", entity.NewValidationError("", "", "input is not valid UTF-8 text", entity.ErrInvalidFormat)
	}
	return escaped, nil
}

// escapeOnce HTML-escapes the input without double-encoding entities that a
// previous sanitization pass already produced.
func escapeOnce(s string) string {
	if !strings.ContainsAny(s, "&<>\"'") {
		return s
	}
	// Unescape then escape: a clean value round-trips to a single encoding,
	// and an already-encoded value collapses back to the same encoding.
	return html.EscapeString(html.UnescapeString(s))
}
