// Package validation implements the request-boundary defense layer: static
// field limits, SQL/XSS pattern detection, per-field validation with
// sanitization, and whole-request validators for every API payload shape.
//
// The detectors are heuristic substring checks, not parsers. They are a
// defense-in-depth measure; parameterized queries in the persistence layer
// remain the primary injection defense.
package validation

import "math"

// Static bounds consumed by every validator. All numeric bounds are
// inclusive on both ends.
const (
	// MinUsernameLength is the minimum username length
	MinUsernameLength = 1
	// MaxUsernameLength is the maximum username length
	MaxUsernameLength = 50

	// MinPasswordLength is the minimum password length
	MinPasswordLength = 8
	// MaxPasswordLength is the maximum password length
	MaxPasswordLength = 200

	// MaxEmailLength is the maximum email length (empty allowed, optional field)
	MaxEmailLength = 254

	// MinNameLength is the minimum name length
	MinNameLength = 1
	// MaxNameLength is the maximum name length
	MaxNameLength = 100

	// MinDescriptionLength is the minimum description length
	MinDescriptionLength = 1
	// MaxDescriptionLength is the maximum description length
	MaxDescriptionLength = 500

	// MaxCategoryLength is the maximum category length (empty allowed, optional field)
	MaxCategoryLength = 50

	// MinYear is the earliest accepted budget year
	MinYear = 1970
	// MaxYear is the latest accepted budget year
	MaxYear = 3000

	// MinMonth is the first calendar month
	MinMonth = 1
	// MaxMonth is the last calendar month
	MaxMonth = 12

	// MinAmountCents is the smallest accepted amount in minor currency units
	MinAmountCents = int64(0)
	// MaxAmountCents is the largest accepted amount in minor currency units
	MaxAmountCents = int64(math.MaxInt64)

	// MinID is the smallest valid entity or user identifier
	MinID = int64(1)
	// MaxID is the largest valid entity or user identifier
	MaxID = int64(math.MaxInt64)
)

// MaxRequestBodyBytes caps every request body before any parsing (1 MiB).
// Exceeding it is a transport-level failure, not a validation error.
const MaxRequestBodyBytes = 1 << 20
