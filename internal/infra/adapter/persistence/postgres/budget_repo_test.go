package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"fintrack/internal/domain/entity"
	"fintrack/internal/infra/adapter/persistence/postgres"
)

func budgetRow(b *entity.ManualBudget) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "year", "month", "created_at", "updated_at",
	}).AddRow(b.ID, b.UserID, b.Year, b.Month, b.CreatedAt, b.UpdatedAt)
}

func itemRows(items ...entity.ManualBudgetItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "budget_id", "name", "amount_cents"})
	for _, it := range items {
		rows.AddRow(it.ID, it.BudgetID, it.Name, it.AmountCents)
	}
	return rows
}

func TestBudgetRepo_Get_WithItems(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM manual_budgets`).
		WithArgs(int64(3)).
		WillReturnRows(budgetRow(&entity.ManualBudget{
			ID: 3, UserID: 7, Year: 2026, Month: 3,
			CreatedAt: testTime, UpdatedAt: testTime,
		}))
	mock.ExpectQuery(`FROM manual_budget_items`).
		WithArgs(int64(3)).
		WillReturnRows(itemRows(
			entity.ManualBudgetItem{ID: 1, BudgetID: 3, Name: "Rent", AmountCents: 120000},
			entity.ManualBudgetItem{ID: 2, BudgetID: 3, Name: "Food", AmountCents: 40000},
		))

	repo := postgres.NewBudgetRepo(db)
	got, err := repo.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if len(got.Items) != 2 || got.Items[0].Name != "Rent" {
		t.Fatalf("items mismatch: %+v", got.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestBudgetRepo_GetByMonth_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM manual_budgets`).
		WithArgs(int64(7), 2026, 4).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "year", "month", "created_at", "updated_at",
		}))

	repo := postgres.NewBudgetRepo(db)
	got, err := repo.GetByMonth(context.Background(), 7, 2026, 4)
	if err != nil {
		t.Fatalf("GetByMonth err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing budget, got %+v", got)
	}
}

func TestBudgetRepo_ReplaceItems(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM manual_budget_items`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO manual_budget_items`)).
		WithArgs(int64(3), "Rent", int64(120000)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO manual_budget_items`)).
		WithArgs(int64(3), "Food", int64(40000)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE manual_budgets`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := postgres.NewBudgetRepo(db)
	err := repo.ReplaceItems(context.Background(), 3, []entity.ManualBudgetItem{
		{Name: "Rent", AmountCents: 120000},
		{Name: "Food", AmountCents: 40000},
	})
	if err != nil {
		t.Fatalf("ReplaceItems err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestBudgetRepo_ReplaceItems_RollbackOnInsertError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM manual_budget_items`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO manual_budget_items`)).
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	repo := postgres.NewBudgetRepo(db)
	err := repo.ReplaceItems(context.Background(), 3, []entity.ManualBudgetItem{
		{Name: "Rent", AmountCents: 120000},
	})
	if err == nil {
		t.Fatal("want error from failed insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
