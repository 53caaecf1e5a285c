// Package budget provides use cases for user-maintained monthly budget
// plans and their line items. Inputs reaching this package have already
// been through the request validation cascade.
package budget

import "errors"

// Sentinel errors for budget use case operations.
var (
	// ErrBudgetNotFound indicates that the requested budget does not
	// exist, or belongs to a different user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetExists indicates that the user already has a budget for
	// the requested month. Budgets are unique per (user, year, month).
	ErrBudgetExists = errors.New("budget for this month already exists")
)
