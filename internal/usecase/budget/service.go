package budget

import (
	"context"
	"fmt"

	"fintrack/internal/domain/entity"
	"fintrack/internal/repository"
)

// CreateInput represents the input parameters for opening a budget month.
type CreateInput struct {
	UserID int64
	Year   int
	Month  int
}

// Service provides manual budget use cases.
type Service struct {
	Repo repository.BudgetRepository
}

// CreateMonth opens a new budget month for the given user and returns
// its ID. Returns ErrBudgetExists if the month is already open.
func (s *Service) CreateMonth(ctx context.Context, in CreateInput) (int64, error) {
	existing, err := s.Repo.GetByMonth(ctx, in.UserID, in.Year, in.Month)
	if err != nil {
		return 0, fmt.Errorf("check existing budget: %w", err)
	}
	if existing != nil {
		return 0, ErrBudgetExists
	}

	id, err := s.Repo.Create(ctx, &entity.ManualBudget{
		UserID: in.UserID,
		Year:   in.Year,
		Month:  in.Month,
	})
	if err != nil {
		return 0, fmt.Errorf("create budget: %w", err)
	}
	return id, nil
}

// GetMonth retrieves a user's budget for one month with its line items.
// Returns ErrBudgetNotFound if no budget exists for that month.
func (s *Service) GetMonth(ctx context.Context, userID int64, year, month int) (*entity.ManualBudget, error) {
	b, err := s.Repo.GetByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("get budget: %w", err)
	}
	if b == nil {
		return nil, ErrBudgetNotFound
	}
	return b, nil
}

// ReplaceItems atomically replaces all line items of a budget.
// Returns ErrBudgetNotFound if the budget does not exist or is owned by
// another user.
func (s *Service) ReplaceItems(ctx context.Context, userID, budgetID int64, items []entity.ManualBudgetItem) error {
	b, err := s.Repo.Get(ctx, budgetID)
	if err != nil {
		return fmt.Errorf("get budget: %w", err)
	}
	// 所有権チェック: 他ユーザーのレコードは存在しない扱い
	if b == nil || b.UserID != userID {
		return ErrBudgetNotFound
	}

	if err := s.Repo.ReplaceItems(ctx, budgetID, items); err != nil {
		return fmt.Errorf("replace budget items: %w", err)
	}
	return nil
}

// Delete removes a budget and its line items.
// Returns ErrBudgetNotFound if the budget does not exist or is owned by
// another user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	b, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get budget: %w", err)
	}
	if b == nil || b.UserID != userID {
		return ErrBudgetNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
