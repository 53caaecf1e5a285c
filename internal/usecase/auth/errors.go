// Package auth provides use cases for account registration and login.
// It owns password hashing and JWT issuance; token verification happens
// at the HTTP boundary.
package auth

import "errors"

// Sentinel errors for authentication use case operations.
var (
	// ErrInvalidCredentials indicates that the username/password pair
	// did not match. Unknown username and wrong password return the
	// same error so the response does not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken indicates that the requested username is
	// already registered.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrWeakPassword indicates that the password appears on the
	// configured deny-list of known weak passwords.
	ErrWeakPassword = errors.New("password is too weak")
)
