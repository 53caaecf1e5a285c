package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"fintrack/internal/domain/entity"
)

// Allow-list patterns for string field formats. Anchored so the whole value
// must match.
var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	namePattern     = regexp.MustCompile(`^[A-Za-z0-9 ._()-]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateUsername validates and sanitizes a username.
//
// Cascade: required → length (1-50) → injection detectors → allow-list
// [A-Za-z0-9_.-] → sanitize. On success the returned value is the trimmed,
// entity-encoded input; since the allow-list admits no HTML metacharacters
// the value comes back unchanged, and re-validating the output is a no-op.
func ValidateUsername(input string) (string, error) {
	return validateStringField("username", input, stringFieldRules{
		required:  true,
		minLength: MinUsernameLength,
		maxLength: MaxUsernameLength,
		pattern:   usernamePattern,
		formatMsg: "must contain only letters, digits, underscore, dot, or hyphen",
	})
}

// ValidatePassword validates a password without ever sanitizing or echoing it.
//
// Passwords skip the injection detectors and sanitization deliberately: they
// are never rendered or interpolated, and entity-encoding would silently
// alter the credential. Instead a complexity check requires at least one
// lowercase letter, one uppercase letter, one digit, and one punctuation or
// symbol character, classified by Unicode category rather than a fixed
// character list. All failures carry the redaction placeholder, never the
// raw value.
func ValidatePassword(input string) (string, error) {
	if input == "" {
		return "", entity.NewValidationError("password", entity.RedactedValue, "is required", entity.ErrInvalidInput)
	}
	length := utf8.RuneCountInString(input)
	if length < MinPasswordLength {
		return "", entity.NewValidationError("password", entity.RedactedValue,
			fmt.Sprintf("must be at least %d characters", MinPasswordLength), entity.ErrInvalidFormat)
	}
	if length > MaxPasswordLength {
		return "", entity.NewValidationError("password", entity.RedactedValue,
			fmt.Sprintf("must not exceed %d characters", MaxPasswordLength), entity.ErrInputTooLong)
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range input {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return "", entity.NewValidationError("password", entity.RedactedValue,
			"must contain at least one lowercase letter, one uppercase letter, one digit, and one symbol",
			entity.ErrInvalidFormat)
	}
	return input, nil
}

// ValidateEmail validates and sanitizes an email address.
// Email is optional: empty input passes immediately with an empty result.
func ValidateEmail(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	return validateStringField("email", input, stringFieldRules{
		required:  false,
		maxLength: MaxEmailLength,
		pattern:   emailPattern,
		formatMsg: "must be a valid email address",
	})
}

// ValidateName validates and sanitizes a display name (source name, budget
// item name). Allows letters, digits, spaces, and ._()- punctuation.
func ValidateName(input string) (string, error) {
	return validateStringField("name", input, stringFieldRules{
		required:  true,
		minLength: MinNameLength,
		maxLength: MaxNameLength,
		pattern:   namePattern,
		formatMsg: "must contain only letters, digits, spaces, or ._()- characters",
	})
}

// ValidateDescription validates and sanitizes a free-text expense description.
// No allow-list pattern: ordinary prose is accepted, the injection detectors
// and entity-encoding carry the defense.
func ValidateDescription(input string) (string, error) {
	return validateStringField("description", input, stringFieldRules{
		required:  true,
		minLength: MinDescriptionLength,
		maxLength: MaxDescriptionLength,
	})
}

// ValidateCategory validates and sanitizes an optional expense category.
// Empty input passes immediately with an empty result.
func ValidateCategory(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	return validateStringField("category", input, stringFieldRules{
		required:  false,
		maxLength: MaxCategoryLength,
	})
}

// ValidateStatus validates a source status against the fixed allow-list.
func ValidateStatus(input string) (string, error) {
	if input == "" {
		return "", entity.NewValidationError("status", "", "is required", entity.ErrInvalidInput)
	}
	if !slices.Contains(entity.ValidStatuses(), input) {
		return "", entity.NewValidationError("status", input,
			fmt.Sprintf("must be one of: %s", strings.Join(entity.ValidStatuses(), ", ")),
			entity.ErrInvalidFormat)
	}
	return input, nil
}

// ValidateYearMonth checks the year/month pair against the inclusive bounds
// [1970, 3000] and [1, 12]. Numeric fields skip the string cascade entirely.
func ValidateYearMonth(year, month int) (int, int, error) {
	if year < MinYear || year > MaxYear {
		return 0, 0, entity.NewValidationError("year", fmt.Sprintf("%d", year),
			fmt.Sprintf("must be between %d and %d", MinYear, MaxYear), entity.ErrInvalidRange)
	}
	if month < MinMonth || month > MaxMonth {
		return 0, 0, entity.NewValidationError("month", fmt.Sprintf("%d", month),
			fmt.Sprintf("must be between %d and %d", MinMonth, MaxMonth), entity.ErrInvalidRange)
	}
	return year, month, nil
}

// ValidateAmountCents checks an amount in minor currency units. Amounts are
// non-negative signed 64-bit integers.
func ValidateAmountCents(amount int64) (int64, error) {
	if amount < MinAmountCents {
		return 0, entity.NewValidationError("amount_cents", fmt.Sprintf("%d", amount),
			"must not be negative", entity.ErrInvalidRange)
	}
	return amount, nil
}

// ValidateUserID checks a user identifier for the inclusive range [1, MaxInt64].
func ValidateUserID(id int64) (int64, error) {
	return validateIdentifier("user_id", id)
}

// ValidateID checks a generic entity identifier for the inclusive range [1, MaxInt64].
func ValidateID(id int64) (int64, error) {
	return validateIdentifier("id", id)
}

func validateIdentifier(field string, id int64) (int64, error) {
	if id < MinID {
		return 0, entity.NewValidationError(field, fmt.Sprintf("%d", id),
			"must be a positive integer", entity.ErrInvalidRange)
	}
	return id, nil
}

// stringFieldRules parameterizes the shared string cascade.
type stringFieldRules struct {
	required  bool
	minLength int
	maxLength int
	pattern   *regexp.Regexp
	formatMsg string
}

// validateStringField runs the cascade shared by every sanitizable string
// field: required → length → format allow-list → injection detectors on the
// pre-sanitized value → sanitize. On failure it returns the zero value and
// the first error; it never returns a partially validated value.
func validateStringField(field, input string, rules stringFieldRules) (string, error) {
	trimmed := strings.TrimSpace(input)

	if trimmed == "" {
		if rules.required {
			return "", entity.NewValidationError(field, input, "is required", entity.ErrInvalidInput)
		}
		return "", nil
	}

	length := utf8.RuneCountInString(trimmed)
	if rules.minLength > 0 && length < rules.minLength {
		return "", entity.NewValidationError(field, input,
			fmt.Sprintf("must be at least %d characters", rules.minLength), entity.ErrInvalidInput)
	}
	if rules.maxLength > 0 && length > rules.maxLength {
		return "", entity.NewValidationError(field, input,
			fmt.Sprintf("must not exceed %d characters", rules.maxLength), entity.ErrInputTooLong)
	}

	// Detectors run on the pre-sanitized value so entity encoding cannot
	// mask a payload, and before the format allow-list so an injection
	// attempt is reported as such rather than as a generic character error.
	if ContainsSQLInjection(trimmed) {
		return "", entity.NewValidationError(field, input,
			"contains disallowed SQL patterns", entity.ErrSQLInjectionDetected)
	}
	if ContainsXSS(trimmed) {
		return "", entity.NewValidationError(field, input,
			"contains disallowed script patterns", entity.ErrXSSDetected)
	}

	if rules.pattern != nil && !rules.pattern.MatchString(trimmed) {
		return "", entity.NewValidationError(field, input, rules.formatMsg, entity.ErrInvalidCharacters)
	}

	sanitized, err := SanitizeString(trimmed)
	if err != nil {
		return "", entity.NewValidationError(field, input,
			"is not valid text", entity.ErrInvalidFormat)
	}
	return sanitized, nil
}
