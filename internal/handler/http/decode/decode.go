// Package decode implements the strict JSON decode contract for request
// bodies: size capping, content-type enforcement, unknown-field rejection,
// and trailing-data detection. Handlers get a fully populated target or a
// single ValidationError to branch on.
package decode

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"fintrack/internal/domain/entity"
	"fintrack/internal/validation"
)

// jsonMediaType is the required media type prefix for body-bearing requests.
const jsonMediaType = "application/json"

// JSONBody decodes the request body into target under the strict contract:
//
//   - the body is capped at validation.MaxRequestBodyBytes before any read;
//     exceeding the cap terminates the request at the transport level
//   - Content-Type must start with application/json (ErrInvalidFormat)
//   - an empty body is ErrInvalidInput, distinct from a malformed body
//     (ErrInvalidFormat)
//   - fields not present in the target shape are rejected (ErrInvalidInput)
//   - any data after the first top-level JSON value is rejected
//     (ErrInvalidFormat), closing the concatenated-payload smuggling hole
func JSONBody(w http.ResponseWriter, r *http.Request, target any) error {
	if err := checkContentType(r); err != nil {
		return err
	}

	r.Body = http.MaxBytesReader(w, r.Body, validation.MaxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		return decodeError(err)
	}

	// 1つ目の値の後に続くデータを拒否（JSON連結によるスマグリング対策）
	if dec.More() {
		return entity.NewValidationError("body", "",
			"additional data after JSON object", entity.ErrInvalidFormat)
	}
	if _, err := dec.Token(); err != io.EOF {
		return entity.NewValidationError("body", "",
			"additional data after JSON object", entity.ErrInvalidFormat)
	}

	return nil
}

// checkContentType enforces the JSON media type prefix. Parameters such as
// charset are accepted.
func checkContentType(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return entity.NewValidationError("content-type", "",
			"content type must be application/json", entity.ErrInvalidFormat)
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !strings.HasPrefix(mediaType, jsonMediaType) {
		return entity.NewValidationError("content-type", ct,
			"content type must be application/json", entity.ErrInvalidFormat)
	}
	return nil
}

// decodeError translates encoding/json failures into taxonomy errors.
func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return entity.NewValidationError("body", "", "request body is empty", entity.ErrInvalidInput)

	case errors.As(err, &maxBytesErr):
		// MaxBytesReader has already engaged the transport-level response;
		// surface an error so the handler stops, without double-writing.
		return entity.NewValidationError("body", "", "request body too large", entity.ErrInvalidInput)

	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return entity.NewValidationError(field, "", "unknown fields not allowed", entity.ErrInvalidInput)

	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return entity.NewValidationError("body", "", "request body is malformed JSON", entity.ErrInvalidFormat)

	case errors.As(err, &typeErr):
		return entity.NewValidationError(typeErr.Field, "",
			"field has the wrong type", entity.ErrInvalidFormat)

	default:
		return entity.NewValidationError("body", "", "request body could not be decoded", entity.ErrInvalidFormat)
	}
}
