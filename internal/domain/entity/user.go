package entity

import "time"

// User represents an account holder in the system.
// PasswordHash holds the bcrypt hash; the raw password never leaves the
// login validator.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
