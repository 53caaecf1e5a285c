package pathutil

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain/entity"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		prefix   string
		want     int64
		wantKind error
	}{
		{name: "valid id", path: "/expenses/123", prefix: "/expenses/", want: 123},
		{name: "boundary one", path: "/sources/1", prefix: "/sources/", want: 1},
		{name: "zero rejected", path: "/sources/0", prefix: "/sources/", wantKind: entity.ErrInvalidRange},
		{name: "negative rejected", path: "/sources/-5", prefix: "/sources/", wantKind: entity.ErrInvalidRange},
		{name: "non numeric", path: "/sources/abc", prefix: "/sources/", wantKind: entity.ErrInvalidFormat},
		{name: "empty segment", path: "/sources/", prefix: "/sources/", wantKind: entity.ErrInvalidInput},
		{name: "sql payload screened", path: "/sources/1;--", prefix: "/sources/", wantKind: entity.ErrSQLInjectionDetected},
		{name: "xss payload screened", path: "/sources/<script>", prefix: "/sources/", wantKind: entity.ErrXSSDetected},
		{name: "overflow rejected", path: "/sources/99999999999999999999", prefix: "/sources/", wantKind: entity.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.path, tt.prefix)
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantKind), "got %v", err)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearMonthQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantYear  int
		wantMonth int
		wantKind  error
	}{
		{name: "valid pair", query: "year=2026&month=8", wantYear: 2026, wantMonth: 8},
		{name: "boundaries", query: "year=1970&month=1", wantYear: 1970, wantMonth: 1},
		{name: "missing year", query: "month=8", wantKind: entity.ErrInvalidInput},
		{name: "missing month", query: "year=2026", wantKind: entity.ErrInvalidInput},
		{name: "both missing", query: "", wantKind: entity.ErrInvalidInput},
		{name: "year out of range", query: "year=1969&month=8", wantKind: entity.ErrInvalidRange},
		{name: "month out of range", query: "year=2026&month=13", wantKind: entity.ErrInvalidRange},
		{name: "non numeric month", query: "year=2026&month=aug", wantKind: entity.ErrInvalidFormat},
		{name: "sql payload in year", query: "year=2026'%3B--&month=8", wantKind: entity.ErrSQLInjectionDetected},
		{name: "xss payload in month", query: "year=2026&month=%3Cscript%3E", wantKind: entity.ErrXSSDetected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			year, month, err := YearMonthQuery(values)
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/expenses/123", want: "/expenses/:id"},
		{path: "/expenses/456", want: "/expenses/:id"},
		{path: "/sources/9", want: "/sources/:id"},
		{path: "/budgets/7/items", want: "/budgets/:id/items"},
		{path: "/users/3", want: "/users/:id"},
		{path: "/healthz", want: "/healthz"},
		{path: "/readyz", want: "/readyz"},
		{path: "/auth/login", want: "/auth/login"},
		{path: "/expenses/123?year=2026", want: "/expenses/:id"},
		{path: "/expenses/123/", want: "/expenses/:id"},
		{path: "/unknown/route/55", want: "/unknown/route/55"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path))
		})
	}
}
