package decode

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain/entity"
	"fintrack/internal/validation"
)

type loginShape struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func newJSONRequest(t *testing.T, body string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return httptest.NewRecorder(), r
}

func TestJSONBody_Success(t *testing.T) {
	w, r := newJSONRequest(t, `{"username":"alice","password":"StrongP@ssw0rd!"}`)

	var target loginShape
	require.NoError(t, JSONBody(w, r, &target))
	assert.Equal(t, "alice", target.Username)
	assert.Equal(t, "StrongP@ssw0rd!", target.Password)
}

func TestJSONBody_ContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{name: "exact json", contentType: "application/json", wantErr: false},
		{name: "json with charset", contentType: "application/json; charset=utf-8", wantErr: false},
		{name: "missing", contentType: "", wantErr: true},
		{name: "text plain", contentType: "text/plain", wantErr: true},
		{name: "form encoded", contentType: "application/x-www-form-urlencoded", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"a","password":"b"}`))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			var target loginShape
			err := JSONBody(w, r, &target)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, entity.ErrInvalidFormat), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestJSONBody_EmptyVsMalformed(t *testing.T) {
	// Empty body is a missing-input error.
	w, r := newJSONRequest(t, "")
	var target loginShape
	err := JSONBody(w, r, &target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInvalidInput))

	var verr *entity.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "request body is empty", verr.Message)

	// Malformed body is a format error — a different kind.
	w, r = newJSONRequest(t, `{"username": "alice"`)
	err = JSONBody(w, r, &target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInvalidFormat))
}

func TestJSONBody_UnknownFieldRejected(t *testing.T) {
	w, r := newJSONRequest(t, `{"username":"alice","password":"x","role":"admin"}`)

	var target loginShape
	err := JSONBody(w, r, &target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInvalidInput))

	var verr *entity.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "unknown fields not allowed", verr.Message)
	assert.Equal(t, "role", verr.Field)
}

func TestJSONBody_TrailingDataRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "second object", body: `{"username":"a","password":"b"}{"username":"c"}`},
		{name: "trailing scalar", body: `{"username":"a","password":"b"} 42`},
		{name: "trailing array", body: `{"username":"a","password":"b"}[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, r := newJSONRequest(t, tt.body)
			var target loginShape
			err := JSONBody(w, r, &target)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entity.ErrInvalidFormat))

			var verr *entity.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "additional data after JSON object", verr.Message)
		})
	}
}

func TestJSONBody_TrailingWhitespaceAccepted(t *testing.T) {
	w, r := newJSONRequest(t, `{"username":"a","password":"b"}`+"\n  \t")
	var target loginShape
	assert.NoError(t, JSONBody(w, r, &target))
}

func TestJSONBody_SizeCap(t *testing.T) {
	// One byte under the cap decodes fine.
	padding := strings.Repeat("x", validation.MaxRequestBodyBytes-64)
	under := `{"username":"a","password":"` + padding + `"}`
	require.Less(t, len(under), validation.MaxRequestBodyBytes)

	w, r := newJSONRequest(t, under)
	var target loginShape
	assert.NoError(t, JSONBody(w, r, &target))

	// One byte over the cap is rejected before any field reaches a validator.
	over := `{"username":"a","password":"` + strings.Repeat("x", validation.MaxRequestBodyBytes) + `"}`
	w, r = newJSONRequest(t, over)
	err := JSONBody(w, r, &target)
	require.Error(t, err)
}

func TestJSONBody_WrongFieldType(t *testing.T) {
	w, r := newJSONRequest(t, `{"username":123,"password":"x"}`)
	var target loginShape
	err := JSONBody(w, r, &target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInvalidFormat))
}
