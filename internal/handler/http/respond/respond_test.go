package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain/entity"
)

func TestJSON_SetsSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestJSON_NilBody(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestJSON_EncodeFailureFallsBack(t *testing.T) {
	w := httptest.NewRecorder()
	// Channels are not JSON-encodable.
	JSON(w, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestError_ValidationErrorCarriesFieldNotValue(t *testing.T) {
	w := httptest.NewRecorder()
	verr := entity.NewValidationError("username", "admin'; DROP TABLE users; --",
		"contains disallowed SQL patterns", entity.ErrSQLInjectionDetected)
	Error(w, http.StatusBadRequest, verr)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"field":"username"`)
	assert.NotContains(t, body, "DROP TABLE", "raw payload must not be echoed")
}

func TestError_MessageIsSanitized(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusBadRequest, errors.New("bad value <script>"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bad value &lt;script&gt;", body["error"])
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		err          error
		wantContains string
		wantMissing  string
	}{
		{
			name:         "validation error passes through",
			code:         http.StatusBadRequest,
			err:          entity.NewValidationError("name", "", "is required", entity.ErrInvalidInput),
			wantContains: "is required",
		},
		{
			name:         "internal error is generic",
			code:         http.StatusInternalServerError,
			err:          fmt.Errorf("pq: connection to postgres://app:s3cret@db failed"),
			wantContains: "internal server error",
			wantMissing:  "s3cret",
		},
		{
			name:         "validation error with 500 is still generic",
			code:         http.StatusInternalServerError,
			err:          entity.NewValidationError("name", "", "is required", entity.ErrInvalidInput),
			wantContains: "internal server error",
		},
		{
			name:         "non-validation client error is generic",
			code:         http.StatusBadRequest,
			err:          errors.New("lookup db on 10.0.0.2: no such host"),
			wantContains: "request rejected",
			wantMissing:  "10.0.0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SafeError(w, tt.code, tt.err)

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantContains)
			if tt.wantMissing != "" {
				assert.NotContains(t, w.Body.String(), tt.wantMissing)
			}
		})
	}
}

func TestValidationFailed(t *testing.T) {
	w := httptest.NewRecorder()
	verr := entity.NewValidationError("month", "13", "must be between 1 and 12", entity.ErrInvalidRange)
	ValidationFailed(w, fmt.Errorf("validate request: %w", verr))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"month"`)

	w = httptest.NewRecorder()
	ValidationFailed(w, errors.New("disk full"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMaskSecrets(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		missing string
	}{
		{
			name:    "dsn password",
			err:     errors.New("connect postgres://app:hunter2@db:5432/fintrack"),
			want:    "://app:****@",
			missing: "hunter2",
		},
		{
			name:    "jwt token",
			err:     errors.New("parse eyJhbGciOi.eyJzdWIiOi.SflKxwRJSM failed"),
			want:    "eyJ****",
			missing: "SflKxwRJSM",
		},
		{
			name:    "bearer header",
			err:     errors.New(`unexpected header "Bearer abc123def"`),
			want:    "Bearer ****",
			missing: "abc123def",
		},
		{name: "nil error", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskSecrets(tt.err)
			if tt.want != "" {
				assert.Contains(t, got, tt.want)
			} else {
				assert.Empty(t, got)
			}
			if tt.missing != "" {
				require.NotContains(t, got, tt.missing)
			}
		})
	}
}
