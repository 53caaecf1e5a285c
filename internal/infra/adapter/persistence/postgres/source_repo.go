package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/entity"
	"fintrack/internal/repository"
)

type SourceRepo struct{ db DB }

func NewSourceRepo(db DB) repository.SourceRepository {
	return &SourceRepo{db: db}
}

func scanSource(rows *sql.Rows) (*entity.Source, error) {
	var source entity.Source
	if err := rows.Scan(
		&source.ID, &source.UserID, &source.Name,
		&source.Year, &source.Month, &source.AmountCents,
		&source.Status, &source.CreatedAt, &source.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &source, nil
}

func (repo *SourceRepo) Get(ctx context.Context, id int64) (*entity.Source, error) {
	const query = `
SELECT id, user_id, name, year, month, amount_cents, status, created_at, updated_at
FROM sources
WHERE id = $1
LIMIT 1`
	var source entity.Source
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&source.ID, &source.UserID, &source.Name,
		&source.Year, &source.Month, &source.AmountCents,
		&source.Status, &source.CreatedAt, &source.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &source, nil
}

func (repo *SourceRepo) ListByMonth(ctx context.Context, userID int64, year, month int) ([]*entity.Source, error) {
	const query = `
SELECT id, user_id, name, year, month, amount_cents, status, created_at, updated_at
FROM sources
WHERE user_id = $1 AND year = $2 AND month = $3
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("ListByMonth: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	sources := make([]*entity.Source, 0, 16)
	for rows.Next() {
		source, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByMonth: %w", err)
		}
		sources = append(sources, source)
	}
	return sources, rows.Err()
}

func (repo *SourceRepo) Create(ctx context.Context, source *entity.Source) (int64, error) {
	const query = `
INSERT INTO sources (user_id, name, year, month, amount_cents, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query,
		source.UserID, source.Name,
		source.Year, source.Month,
		source.AmountCents, source.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	return id, nil
}

func (repo *SourceRepo) Update(ctx context.Context, source *entity.Source) error {
	const query = `
UPDATE sources SET
       name         = $1,
       year         = $2,
       month        = $3,
       amount_cents = $4,
       status       = $5,
       updated_at   = NOW()
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		source.Name, source.Year, source.Month,
		source.AmountCents, source.Status, source.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *SourceRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM sources WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
