package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain/entity"
)

func TestValidateCreateSourceRequest(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateSourceInput
		want      *ValidatedCreateSource
		wantKind  error
		wantField string
	}{
		{
			name:  "valid request",
			input: CreateSourceInput{Name: "Salary", Year: 2026, Month: 3, AmountCents: 350000},
			want:  &ValidatedCreateSource{Name: "Salary", Year: 2026, Month: 3, AmountCents: 350000},
		},
		{
			name:      "missing name fails first",
			input:     CreateSourceInput{Name: "", Year: 1969, Month: 0, AmountCents: -1},
			wantKind:  entity.ErrInvalidInput,
			wantField: "name",
		},
		{
			name:      "bad year after valid name",
			input:     CreateSourceInput{Name: "Salary", Year: 1969, Month: 3, AmountCents: 100},
			wantKind:  entity.ErrInvalidRange,
			wantField: "year",
		},
		{
			name:      "bad month",
			input:     CreateSourceInput{Name: "Salary", Year: 2026, Month: 13, AmountCents: 100},
			wantKind:  entity.ErrInvalidRange,
			wantField: "month",
		},
		{
			name:      "negative amount",
			input:     CreateSourceInput{Name: "Salary", Year: 2026, Month: 3, AmountCents: -100},
			wantKind:  entity.ErrInvalidRange,
			wantField: "amount_cents",
		},
		{
			name:      "sql injection in name",
			input:     CreateSourceInput{Name: "Salary'; DROP TABLE sources; --", Year: 2026, Month: 3, AmountCents: 100},
			wantKind:  entity.ErrSQLInjectionDetected,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCreateSourceRequest(tt.input)
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantKind), "got %v", err)

				var verr *entity.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("validated request mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateUpdateSourceRequest(t *testing.T) {
	valid := UpdateSourceInput{
		ID: 7, Name: "Salary", Year: 2026, Month: 3, AmountCents: 350000, Status: entity.StatusActive,
	}

	got, err := ValidateUpdateSourceRequest(valid)
	require.NoError(t, err)
	assert.Equal(t, &ValidatedUpdateSource{
		ID: 7, Name: "Salary", Year: 2026, Month: 3, AmountCents: 350000, Status: entity.StatusActive,
	}, got)

	bad := valid
	bad.ID = 0
	_, err = ValidateUpdateSourceRequest(bad)
	assert.True(t, errors.Is(err, entity.ErrInvalidRange))

	bad = valid
	bad.Status = "zombie"
	_, err = ValidateUpdateSourceRequest(bad)
	assert.True(t, errors.Is(err, entity.ErrInvalidFormat))
}

func TestValidateExpenseRequest(t *testing.T) {
	valid := ExpenseInput{
		UserID: 1, Description: "Grocery shopping", Category: "groceries",
		AmountCents: 4599, Year: 2026, Month: 8,
	}

	got, err := ValidateExpenseRequest(valid)
	require.NoError(t, err)
	assert.Equal(t, &ValidatedExpense{
		UserID: 1, Description: "Grocery shopping", Category: "groceries",
		AmountCents: 4599, Year: 2026, Month: 8,
	}, got)

	t.Run("category optional", func(t *testing.T) {
		in := valid
		in.Category = ""
		got, err := ValidateExpenseRequest(in)
		require.NoError(t, err)
		assert.Empty(t, got.Category)
	})

	t.Run("xss in description", func(t *testing.T) {
		in := valid
		in.Description = "coffee <img onerror=alert(1) src=x>"
		_, err := ValidateExpenseRequest(in)
		assert.True(t, errors.Is(err, entity.ErrXSSDetected))
	})

	t.Run("zero user id fails before description", func(t *testing.T) {
		in := valid
		in.UserID = 0
		in.Description = ""
		_, err := ValidateExpenseRequest(in)
		var verr *entity.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "user_id", verr.Field)
	})
}

func TestValidateManualBudgetRequest(t *testing.T) {
	got, err := ValidateManualBudgetRequest(ManualBudgetInput{UserID: 3, Year: 2026, Month: 1})
	require.NoError(t, err)
	assert.Equal(t, &ValidatedManualBudget{UserID: 3, Year: 2026, Month: 1}, got)

	_, err = ValidateManualBudgetRequest(ManualBudgetInput{UserID: 3, Year: 3001, Month: 1})
	assert.True(t, errors.Is(err, entity.ErrInvalidRange))
}

func TestValidateManualBudgetItemsRequest(t *testing.T) {
	t.Run("valid items", func(t *testing.T) {
		got, err := ValidateManualBudgetItemsRequest(ManualBudgetItemsInput{
			BudgetID: 5,
			Items: []ManualBudgetItemInput{
				{Name: "Rent", AmountCents: 120000},
				{Name: "Food", AmountCents: 45000},
			},
		})
		require.NoError(t, err)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "Rent", got.Items[0].Name)
		assert.Equal(t, int64(45000), got.Items[1].AmountCents)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		_, err := ValidateManualBudgetItemsRequest(ManualBudgetItemsInput{BudgetID: 5})
		assert.True(t, errors.Is(err, entity.ErrInvalidInput))
	})

	t.Run("error field indexed by position", func(t *testing.T) {
		_, err := ValidateManualBudgetItemsRequest(ManualBudgetItemsInput{
			BudgetID: 5,
			Items: []ManualBudgetItemInput{
				{Name: "Rent", AmountCents: 120000},
				{Name: "Food", AmountCents: -1},
			},
		})
		var verr *entity.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "items[1].amount_cents", verr.Field)
		assert.True(t, errors.Is(err, entity.ErrInvalidRange))
	})

	t.Run("bad name indexed by position", func(t *testing.T) {
		_, err := ValidateManualBudgetItemsRequest(ManualBudgetItemsInput{
			BudgetID: 5,
			Items:    []ManualBudgetItemInput{{Name: "", AmountCents: 100}},
		})
		var verr *entity.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "items[0].name", verr.Field)
	})
}

func TestValidateLoginRequest(t *testing.T) {
	t.Run("valid login", func(t *testing.T) {
		got, err := ValidateLoginRequest(LoginInput{Username: "alice", Password: "StrongP@ssw0rd!"})
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "StrongP@ssw0rd!", got.Password)
	})

	t.Run("injection in username reported before password is checked", func(t *testing.T) {
		_, err := ValidateLoginRequest(LoginInput{
			Username: "admin'; DROP TABLE users; --",
			Password: "x",
		})
		require.Error(t, err)

		var verr *entity.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "username", verr.Field)
		assert.True(t, errors.Is(err, entity.ErrSQLInjectionDetected))
	})

	t.Run("weak password rejected", func(t *testing.T) {
		_, err := ValidateLoginRequest(LoginInput{Username: "alice", Password: "password"})
		assert.True(t, errors.Is(err, entity.ErrInvalidFormat))
	})
}
