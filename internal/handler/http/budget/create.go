package budget

import (
	"errors"
	"net/http"

	httpapi "fintrack/internal/handler/http"
	"fintrack/internal/handler/http/auth"
	"fintrack/internal/handler/http/decode"
	"fintrack/internal/handler/http/respond"
	budUC "fintrack/internal/usecase/budget"
	"fintrack/internal/validation"
)

type createdResponse struct {
	ID int64 `json:"id"`
}

type CreateHandler struct{ Svc budUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	if err := decode.JSONBody(w, r, &req); err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	validated, err := validation.ValidateManualBudgetRequest(validation.ManualBudgetInput{
		UserID: auth.UserIDFromContext(r.Context()),
		Year:   req.Year,
		Month:  req.Month,
	})
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	id, err := h.Svc.CreateMonth(r.Context(), budUC.CreateInput{
		UserID: validated.UserID,
		Year:   validated.Year,
		Month:  validated.Month,
	})
	if err != nil {
		if errors.Is(err, budUC.ErrBudgetExists) {
			respond.SafeError(w, http.StatusConflict, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusCreated, createdResponse{ID: id})
}
