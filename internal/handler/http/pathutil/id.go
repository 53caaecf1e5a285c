// Package pathutil extracts and validates dynamic URL path and query
// parameters. Raw parameter text is screened by both injection detectors
// before any parsing, then bounds-checked through the field validators.
package pathutil

import (
	"net/url"
	"strconv"

	"fintrack/internal/domain/entity"
	"fintrack/internal/validation"
)

// ExtractID extracts an entity identifier from a URL path.
// It strips the prefix, screens the remaining raw segment with both pattern
// detectors, then parses and bounds-checks it as a positive int64.
//
// Example:
//
//	id, err := ExtractID("/expenses/123", "/expenses/")
//	// Returns: 123, nil
func ExtractID(path, prefix string) (int64, error) {
	raw := path
	if len(prefix) <= len(path) && path[:len(prefix)] == prefix {
		raw = path[len(prefix):]
	}
	return parseID("id", raw)
}

// parseID runs the screen-then-parse-then-range sequence for one identifier.
func parseID(field, raw string) (int64, error) {
	if raw == "" {
		return 0, entity.NewValidationError(field, "", "is required", entity.ErrInvalidInput)
	}
	if validation.ContainsSQLInjection(raw) {
		return 0, entity.NewValidationError(field, raw,
			"contains disallowed SQL patterns", entity.ErrSQLInjectionDetected)
	}
	if validation.ContainsXSS(raw) {
		return 0, entity.NewValidationError(field, raw,
			"contains disallowed script patterns", entity.ErrXSSDetected)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, entity.NewValidationError(field, raw, "must be an integer", entity.ErrInvalidFormat)
	}
	return validation.ValidateID(id)
}

// YearMonthQuery extracts the year and month query parameters, which are
// required together. Each raw value is detector-screened before parsing,
// then the pair is range-checked.
func YearMonthQuery(query url.Values) (int, int, error) {
	rawYear := query.Get("year")
	rawMonth := query.Get("month")
	if rawYear == "" || rawMonth == "" {
		return 0, 0, entity.NewValidationError("year", "",
			"year and month query parameters are required", entity.ErrInvalidInput)
	}

	year, err := parseQueryInt("year", rawYear)
	if err != nil {
		return 0, 0, err
	}
	month, err := parseQueryInt("month", rawMonth)
	if err != nil {
		return 0, 0, err
	}
	return validation.ValidateYearMonth(year, month)
}

func parseQueryInt(field, raw string) (int, error) {
	if validation.ContainsSQLInjection(raw) {
		return 0, entity.NewValidationError(field, raw,
			"contains disallowed SQL patterns", entity.ErrSQLInjectionDetected)
	}
	if validation.ContainsXSS(raw) {
		return 0, entity.NewValidationError(field, raw,
			"contains disallowed script patterns", entity.ErrXSSDetected)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, entity.NewValidationError(field, raw, "must be an integer", entity.ErrInvalidFormat)
	}
	return n, nil
}
