package entity

import "time"

// Source statuses accepted by the status validator and persisted as-is.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusArchived = "archived"
)

// Source represents a recurring income or budget source for a given month,
// e.g. "Salary" for 2026-03. Amounts are stored in minor currency units
// (cents) as signed 64-bit integers; no floating point anywhere.
type Source struct {
	ID          int64
	UserID      int64
	Name        string
	Year        int
	Month       int
	AmountCents int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidStatuses returns the status allow-list.
func ValidStatuses() []string {
	return []string{StatusActive, StatusInactive, StatusArchived}
}
