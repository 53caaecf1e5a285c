package source

import (
	"context"
	"fmt"

	"fintrack/internal/domain/entity"
	"fintrack/internal/repository"
)

// CreateInput represents the input parameters for creating a new source.
// All fields have been validated at the request boundary.
type CreateInput struct {
	UserID      int64
	Name        string
	Year        int
	Month       int
	AmountCents int64
}

// UpdateInput represents the input parameters for updating an existing source.
type UpdateInput struct {
	ID          int64
	UserID      int64
	Name        string
	Year        int
	Month       int
	AmountCents int64
	Status      string
}

// Service provides source management use cases.
// It handles business logic for source operations and delegates persistence to the repository.
type Service struct {
	Repo repository.SourceRepository
}

// ListByMonth retrieves a user's sources for one month.
// Returns an error if the repository operation fails.
func (s *Service) ListByMonth(ctx context.Context, userID int64, year, month int) ([]*entity.Source, error) {
	sources, err := s.Repo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Create creates a new source owned by the given user and returns its ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	src := &entity.Source{
		UserID:      in.UserID,
		Name:        in.Name,
		Year:        in.Year,
		Month:       in.Month,
		AmountCents: in.AmountCents,
		Status:      entity.StatusActive,
	}

	id, err := s.Repo.Create(ctx, src)
	if err != nil {
		return 0, fmt.Errorf("create source: %w", err)
	}
	return id, nil
}

// Update modifies an existing source with the provided input.
// Returns ErrSourceNotFound if the source does not exist or is owned by
// another user.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	src, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get source: %w", err)
	}
	// 所有権チェック: 他ユーザーのレコードは存在しない扱い
	if src == nil || src.UserID != in.UserID {
		return ErrSourceNotFound
	}

	src.Name = in.Name
	src.Year = in.Year
	src.Month = in.Month
	src.AmountCents = in.AmountCents
	src.Status = in.Status

	if err := s.Repo.Update(ctx, src); err != nil {
		return fmt.Errorf("update source: %w", err)
	}
	return nil
}

// Delete removes a source by its ID.
// Returns ErrSourceNotFound if the source does not exist or is owned by
// another user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	src, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get source: %w", err)
	}
	if src == nil || src.UserID != userID {
		return ErrSourceNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	return nil
}
