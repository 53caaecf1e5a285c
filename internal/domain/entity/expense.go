package entity

import "time"

// Expense represents a single spending entry booked against a month.
// Category is optional; Description is required. AmountCents is in minor
// currency units and never negative once validated.
type Expense struct {
	ID          int64
	UserID      int64
	Description string
	Category    string
	AmountCents int64
	Year        int
	Month       int
	CreatedAt   time.Time
}
