package repository

import (
	"context"

	"fintrack/internal/domain/entity"
)

// SourceRepository persists recurring income sources.
type SourceRepository interface {
	// Get returns the source with the given id, or nil when absent.
	Get(ctx context.Context, id int64) (*entity.Source, error)
	// ListByMonth returns a user's sources for one month, ordered by id.
	ListByMonth(ctx context.Context, userID int64, year, month int) ([]*entity.Source, error)
	Create(ctx context.Context, source *entity.Source) (int64, error)
	Update(ctx context.Context, source *entity.Source) error
	Delete(ctx context.Context, id int64) error
}
