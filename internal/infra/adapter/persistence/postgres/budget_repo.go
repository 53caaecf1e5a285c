package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/domain/entity"
	"fintrack/internal/repository"
)

type BudgetRepo struct{ db DB }

func NewBudgetRepo(db DB) repository.BudgetRepository {
	return &BudgetRepo{db: db}
}

func (repo *BudgetRepo) Get(ctx context.Context, id int64) (*entity.ManualBudget, error) {
	const query = `
SELECT id, user_id, year, month, created_at, updated_at
FROM manual_budgets
WHERE id = $1
LIMIT 1`
	var budget entity.ManualBudget
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&budget.ID, &budget.UserID,
		&budget.Year, &budget.Month,
		&budget.CreatedAt, &budget.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	items, err := repo.listItems(ctx, budget.ID)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	budget.Items = items
	return &budget, nil
}

func (repo *BudgetRepo) GetByMonth(ctx context.Context, userID int64, year, month int) (*entity.ManualBudget, error) {
	const query = `
SELECT id, user_id, year, month, created_at, updated_at
FROM manual_budgets
WHERE user_id = $1 AND year = $2 AND month = $3
LIMIT 1`
	var budget entity.ManualBudget
	err := repo.db.QueryRowContext(ctx, query, userID, year, month).Scan(
		&budget.ID, &budget.UserID,
		&budget.Year, &budget.Month,
		&budget.CreatedAt, &budget.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByMonth: %w", err)
	}

	items, err := repo.listItems(ctx, budget.ID)
	if err != nil {
		return nil, fmt.Errorf("GetByMonth: %w", err)
	}
	budget.Items = items
	return &budget, nil
}

func (repo *BudgetRepo) listItems(ctx context.Context, budgetID int64) ([]entity.ManualBudgetItem, error) {
	const query = `
SELECT id, budget_id, name, amount_cents
FROM manual_budget_items
WHERE budget_id = $1
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("listItems: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]entity.ManualBudgetItem, 0, 8)
	for rows.Next() {
		var item entity.ManualBudgetItem
		if err := rows.Scan(&item.ID, &item.BudgetID, &item.Name, &item.AmountCents); err != nil {
			return nil, fmt.Errorf("listItems: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (repo *BudgetRepo) Create(ctx context.Context, budget *entity.ManualBudget) (int64, error) {
	const query = `
INSERT INTO manual_budgets (user_id, year, month)
VALUES ($1, $2, $3)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query,
		budget.UserID, budget.Year, budget.Month,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	return id, nil
}

// ReplaceItems swaps all line items inside one transaction so a failed
// insert never leaves a budget half-updated.
func (repo *BudgetRepo) ReplaceItems(ctx context.Context, budgetID int64, items []entity.ManualBudgetItem) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ReplaceItems: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM manual_budget_items WHERE budget_id = $1`, budgetID,
	); err != nil {
		return fmt.Errorf("ReplaceItems: delete: %w", err)
	}

	const insert = `
INSERT INTO manual_budget_items (budget_id, name, amount_cents)
VALUES ($1, $2, $3)`
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, insert, budgetID, item.Name, item.AmountCents); err != nil {
			return fmt.Errorf("ReplaceItems: insert: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE manual_budgets SET updated_at = NOW() WHERE id = $1`, budgetID,
	); err != nil {
		return fmt.Errorf("ReplaceItems: touch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceItems: commit: %w", err)
	}
	return nil
}

func (repo *BudgetRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM manual_budgets WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
