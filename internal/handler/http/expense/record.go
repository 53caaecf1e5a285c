package expense

import (
	"net/http"

	httpapi "fintrack/internal/handler/http"
	"fintrack/internal/handler/http/auth"
	"fintrack/internal/handler/http/decode"
	"fintrack/internal/handler/http/respond"
	expUC "fintrack/internal/usecase/expense"
	"fintrack/internal/validation"
)

type createdResponse struct {
	ID int64 `json:"id"`
}

type RecordHandler struct{ Svc expUC.Service }

func (h RecordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
		Category    string `json:"category"`
		AmountCents int64  `json:"amount_cents"`
		Year        int    `json:"year"`
		Month       int    `json:"month"`
	}
	if err := decode.JSONBody(w, r, &req); err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	// 所有者はトークン由来。ボディでは受け付けない
	validated, err := validation.ValidateExpenseRequest(validation.ExpenseInput{
		UserID:      auth.UserIDFromContext(r.Context()),
		Description: req.Description,
		Category:    req.Category,
		AmountCents: req.AmountCents,
		Year:        req.Year,
		Month:       req.Month,
	})
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	id, err := h.Svc.Record(r.Context(), expUC.RecordInput{
		UserID:      validated.UserID,
		Description: validated.Description,
		Category:    validated.Category,
		AmountCents: validated.AmountCents,
		Year:        validated.Year,
		Month:       validated.Month,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusCreated, createdResponse{ID: id})
}
