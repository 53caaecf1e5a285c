package repository

import (
	"context"

	"fintrack/internal/domain/entity"
)

// UserRepository persists account holders.
type UserRepository interface {
	// GetByUsername returns the user with the given username, or nil
	// when absent. Lookup input has already been through the validation
	// cascade; the query itself is parameterized regardless.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) (int64, error)
}
