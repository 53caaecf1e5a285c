package validation

import (
	"errors"
	"fmt"

	"fintrack/internal/domain/entity"
)

// Raw request inputs, decoded straight from the wire. Nothing downstream of
// this package ever sees them: each validator below re-checks every field
// top-to-bottom and stops at the first failure, returning a validated value
// object built only from the validated outputs.

// CreateSourceInput is the raw payload for creating an income/budget source.
type CreateSourceInput struct {
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	AmountCents int64  `json:"amount_cents"`
}

// UpdateSourceInput is the raw payload for updating an existing source.
type UpdateSourceInput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
}

// ExpenseInput is the raw payload for recording an expense.
type ExpenseInput struct {
	UserID      int64  `json:"user_id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
}

// ManualBudgetInput is the raw payload for creating a manual budget month.
type ManualBudgetInput struct {
	UserID int64 `json:"user_id"`
	Year   int   `json:"year"`
	Month  int   `json:"month"`
}

// ManualBudgetItemInput is one raw line item of a manual budget.
type ManualBudgetItemInput struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

// ManualBudgetItemsInput is the raw payload for replacing a budget's line items.
type ManualBudgetItemsInput struct {
	BudgetID int64                   `json:"budget_id"`
	Items    []ManualBudgetItemInput `json:"items"`
}

// LoginInput is the raw payload for authentication.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput is the raw payload for account creation.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validated request objects. There is no constructor besides the validators
// in this file; holding one is proof the full cascade ran.

// ValidatedCreateSource is a fully validated source-creation request.
type ValidatedCreateSource struct {
	Name        string
	Year        int
	Month       int
	AmountCents int64
}

// ValidatedUpdateSource is a fully validated source-update request.
type ValidatedUpdateSource struct {
	ID          int64
	Name        string
	Year        int
	Month       int
	AmountCents int64
	Status      string
}

// ValidatedExpense is a fully validated expense request.
type ValidatedExpense struct {
	UserID      int64
	Description string
	Category    string
	AmountCents int64
	Year        int
	Month       int
}

// ValidatedManualBudget is a fully validated manual-budget request.
type ValidatedManualBudget struct {
	UserID int64
	Year   int
	Month  int
}

// ValidatedManualBudgetItems is a fully validated budget line-item list.
type ValidatedManualBudgetItems struct {
	BudgetID int64
	Items    []entity.ManualBudgetItem
}

// ValidatedLogin is a fully validated login request. Password is the raw
// credential, required downstream for hash comparison; it is never sanitized.
type ValidatedLogin struct {
	Username string
	Password string
}

// ValidatedRegister is a fully validated registration request.
type ValidatedRegister struct {
	Username string
	Email    string
	Password string
}

// ValidateCreateSourceRequest validates a source-creation payload:
// name → year/month pair → amount. Fail-fast, first error wins.
func ValidateCreateSourceRequest(in CreateSourceInput) (*ValidatedCreateSource, error) {
	name, err := ValidateName(in.Name)
	if err != nil {
		return nil, err
	}
	year, month, err := ValidateYearMonth(in.Year, in.Month)
	if err != nil {
		return nil, err
	}
	amount, err := ValidateAmountCents(in.AmountCents)
	if err != nil {
		return nil, err
	}
	return &ValidatedCreateSource{
		Name:        name,
		Year:        year,
		Month:       month,
		AmountCents: amount,
	}, nil
}

// ValidateUpdateSourceRequest validates a source-update payload:
// id → name → year/month → amount → status.
func ValidateUpdateSourceRequest(in UpdateSourceInput) (*ValidatedUpdateSource, error) {
	id, err := ValidateID(in.ID)
	if err != nil {
		return nil, err
	}
	name, err := ValidateName(in.Name)
	if err != nil {
		return nil, err
	}
	year, month, err := ValidateYearMonth(in.Year, in.Month)
	if err != nil {
		return nil, err
	}
	amount, err := ValidateAmountCents(in.AmountCents)
	if err != nil {
		return nil, err
	}
	status, err := ValidateStatus(in.Status)
	if err != nil {
		return nil, err
	}
	return &ValidatedUpdateSource{
		ID:          id,
		Name:        name,
		Year:        year,
		Month:       month,
		AmountCents: amount,
		Status:      status,
	}, nil
}

// ValidateExpenseRequest validates an expense payload:
// user id → description → category → amount → year/month.
func ValidateExpenseRequest(in ExpenseInput) (*ValidatedExpense, error) {
	userID, err := ValidateUserID(in.UserID)
	if err != nil {
		return nil, err
	}
	description, err := ValidateDescription(in.Description)
	if err != nil {
		return nil, err
	}
	category, err := ValidateCategory(in.Category)
	if err != nil {
		return nil, err
	}
	amount, err := ValidateAmountCents(in.AmountCents)
	if err != nil {
		return nil, err
	}
	year, month, err := ValidateYearMonth(in.Year, in.Month)
	if err != nil {
		return nil, err
	}
	return &ValidatedExpense{
		UserID:      userID,
		Description: description,
		Category:    category,
		AmountCents: amount,
		Year:        year,
		Month:       month,
	}, nil
}

// ValidateManualBudgetRequest validates a manual-budget payload:
// user id → year/month.
func ValidateManualBudgetRequest(in ManualBudgetInput) (*ValidatedManualBudget, error) {
	userID, err := ValidateUserID(in.UserID)
	if err != nil {
		return nil, err
	}
	year, month, err := ValidateYearMonth(in.Year, in.Month)
	if err != nil {
		return nil, err
	}
	return &ValidatedManualBudget{UserID: userID, Year: year, Month: month}, nil
}

// ValidateManualBudgetItemsRequest validates a line-item list. Error field
// names are indexed by list position (items[i].name, items[i].amount_cents)
// so the caller can pinpoint the bad row.
func ValidateManualBudgetItemsRequest(in ManualBudgetItemsInput) (*ValidatedManualBudgetItems, error) {
	budgetID, err := ValidateID(in.BudgetID)
	if err != nil {
		return nil, indexedField(err, "budget_id")
	}
	if len(in.Items) == 0 {
		return nil, entity.NewValidationError("items", "", "at least one item is required", entity.ErrInvalidInput)
	}

	items := make([]entity.ManualBudgetItem, 0, len(in.Items))
	for i, item := range in.Items {
		name, err := ValidateName(item.Name)
		if err != nil {
			return nil, indexedField(err, fmt.Sprintf("items[%d].name", i))
		}
		amount, err := ValidateAmountCents(item.AmountCents)
		if err != nil {
			return nil, indexedField(err, fmt.Sprintf("items[%d].amount_cents", i))
		}
		items = append(items, entity.ManualBudgetItem{Name: name, AmountCents: amount})
	}
	return &ValidatedManualBudgetItems{BudgetID: budgetID, Items: items}, nil
}

// ValidateLoginRequest validates a login payload: username → password.
// Username runs the full cascade first, so an injection attempt in the
// username is reported before the password is even examined.
func ValidateLoginRequest(in LoginInput) (*ValidatedLogin, error) {
	username, err := ValidateUsername(in.Username)
	if err != nil {
		return nil, err
	}
	password, err := ValidatePassword(in.Password)
	if err != nil {
		return nil, err
	}
	return &ValidatedLogin{Username: username, Password: password}, nil
}

// ValidateRegisterRequest validates a registration payload:
// username → email → password.
func ValidateRegisterRequest(in RegisterInput) (*ValidatedRegister, error) {
	username, err := ValidateUsername(in.Username)
	if err != nil {
		return nil, err
	}
	email, err := ValidateEmail(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := ValidatePassword(in.Password)
	if err != nil {
		return nil, err
	}
	return &ValidatedRegister{Username: username, Email: email, Password: password}, nil
}

// indexedField rebuilds a ValidationError under a position-qualified field
// name, preserving value, message, and sentinel kind.
func indexedField(err error, field string) error {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return entity.NewValidationError(field, verr.Value, verr.Message, verr.Err)
	}
	return err
}
