// Package expense provides use cases for recording and listing spending
// entries. Inputs reaching this package have already been through the
// request validation cascade.
package expense

import "errors"

// Sentinel errors for expense use case operations.
var (
	// ErrExpenseNotFound indicates that the requested expense does not
	// exist, or belongs to a different user.
	ErrExpenseNotFound = errors.New("expense not found")
)
