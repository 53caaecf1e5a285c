package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/entity"
	"fintrack/internal/repository"
)

type UserRepo struct{ db DB }

func NewUserRepo(db DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT id, username, email, password_hash, created_at, updated_at
FROM users
WHERE username = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, username, email, password_hash, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	const query = `
INSERT INTO users (username, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	return id, nil
}
