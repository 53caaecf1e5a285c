package repository

import (
	"context"

	"fintrack/internal/domain/entity"
)

// BudgetRepository persists manual budgets and their line items.
type BudgetRepository interface {
	// Get returns the budget with its items, or nil when absent.
	Get(ctx context.Context, id int64) (*entity.ManualBudget, error)
	// GetByMonth returns a user's budget for one month, or nil when absent.
	GetByMonth(ctx context.Context, userID int64, year, month int) (*entity.ManualBudget, error)
	Create(ctx context.Context, budget *entity.ManualBudget) (int64, error)
	// ReplaceItems atomically swaps all line items of a budget.
	ReplaceItems(ctx context.Context, budgetID int64, items []entity.ManualBudgetItem) error
	Delete(ctx context.Context, id int64) error
}
