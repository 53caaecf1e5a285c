package entity

import "time"

// ManualBudget represents a user-maintained budget plan for one month,
// holding zero or more named line items.
type ManualBudget struct {
	ID        int64
	UserID    int64
	Year      int
	Month     int
	Items     []ManualBudgetItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ManualBudgetItem is a single named line in a manual budget.
type ManualBudgetItem struct {
	ID          int64
	BudgetID    int64
	Name        string
	AmountCents int64
}
