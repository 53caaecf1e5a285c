package expense

import (
	"context"
	"fmt"

	"fintrack/internal/domain/entity"
	"fintrack/internal/repository"
)

// RecordInput represents the input parameters for recording an expense.
type RecordInput struct {
	UserID      int64
	Description string
	Category    string
	AmountCents int64
	Year        int
	Month       int
}

// Service provides expense management use cases.
type Service struct {
	Repo repository.ExpenseRepository
}

// Record books a new expense for the given user and returns its ID.
func (s *Service) Record(ctx context.Context, in RecordInput) (int64, error) {
	exp := &entity.Expense{
		UserID:      in.UserID,
		Description: in.Description,
		Category:    in.Category,
		AmountCents: in.AmountCents,
		Year:        in.Year,
		Month:       in.Month,
	}

	id, err := s.Repo.Create(ctx, exp)
	if err != nil {
		return 0, fmt.Errorf("record expense: %w", err)
	}
	return id, nil
}

// ListByMonth retrieves a user's expenses for one month, newest first.
func (s *Service) ListByMonth(ctx context.Context, userID int64, year, month int) ([]*entity.Expense, error) {
	expenses, err := s.Repo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Delete removes an expense by its ID.
// Returns ErrExpenseNotFound if the expense does not exist or is owned
// by another user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	exp, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get expense: %w", err)
	}
	if exp == nil || exp.UserID != userID {
		return ErrExpenseNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
