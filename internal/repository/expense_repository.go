package repository

import (
	"context"

	"fintrack/internal/domain/entity"
)

// ExpenseRepository persists spending entries.
type ExpenseRepository interface {
	Get(ctx context.Context, id int64) (*entity.Expense, error)
	// ListByMonth returns a user's expenses for one month, newest first.
	ListByMonth(ctx context.Context, userID int64, year, month int) ([]*entity.Expense, error)
	Create(ctx context.Context, expense *entity.Expense) (int64, error)
	Delete(ctx context.Context, id int64) error
}
