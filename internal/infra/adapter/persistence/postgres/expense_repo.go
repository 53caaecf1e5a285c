package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/entity"
	"fintrack/internal/repository"
)

type ExpenseRepo struct{ db DB }

func NewExpenseRepo(db DB) repository.ExpenseRepository {
	return &ExpenseRepo{db: db}
}

func (repo *ExpenseRepo) Get(ctx context.Context, id int64) (*entity.Expense, error) {
	const query = `
SELECT id, user_id, description, category, amount_cents, year, month, created_at
FROM expenses
WHERE id = $1
LIMIT 1`
	var expense entity.Expense
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID, &expense.UserID, &expense.Description,
		&expense.Category, &expense.AmountCents,
		&expense.Year, &expense.Month, &expense.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &expense, nil
}

func (repo *ExpenseRepo) ListByMonth(ctx context.Context, userID int64, year, month int) ([]*entity.Expense, error) {
	const query = `
SELECT id, user_id, description, category, amount_cents, year, month, created_at
FROM expenses
WHERE user_id = $1 AND year = $2 AND month = $3
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("ListByMonth: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	expenses := make([]*entity.Expense, 0, 32)
	for rows.Next() {
		var expense entity.Expense
		if err := rows.Scan(
			&expense.ID, &expense.UserID, &expense.Description,
			&expense.Category, &expense.AmountCents,
			&expense.Year, &expense.Month, &expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListByMonth: %w", err)
		}
		expenses = append(expenses, &expense)
	}
	return expenses, rows.Err()
}

func (repo *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) (int64, error) {
	const query = `
INSERT INTO expenses (user_id, description, category, amount_cents, year, month)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query,
		expense.UserID, expense.Description, expense.Category,
		expense.AmountCents, expense.Year, expense.Month,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	return id, nil
}

func (repo *ExpenseRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM expenses WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
