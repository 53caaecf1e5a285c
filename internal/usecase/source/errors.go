// Package source provides use cases for managing monthly income and
// budget sources. It implements the business rules for creating,
// updating, deleting, and listing sources, delegating persistence to
// the repository layer. Inputs reaching this package have already been
// through the request validation cascade.
package source

import "errors"

// Sentinel errors for source use case operations.
var (
	// ErrSourceNotFound indicates that the requested source does not
	// exist, or belongs to a different user. The two cases are
	// deliberately indistinguishable so that probing for other users'
	// record IDs reveals nothing.
	ErrSourceNotFound = errors.New("source not found")
)
