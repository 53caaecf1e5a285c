package source

import (
	"net/http"

	httpapi "fintrack/internal/handler/http"
	"fintrack/internal/handler/http/auth"
	"fintrack/internal/handler/http/decode"
	"fintrack/internal/handler/http/respond"
	srcUC "fintrack/internal/usecase/source"
	"fintrack/internal/validation"
)

type createdResponse struct {
	ID int64 `json:"id"`
}

type CreateHandler struct{ Svc srcUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateSourceInput
	if err := decode.JSONBody(w, r, &req); err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	validated, err := validation.ValidateCreateSourceRequest(req)
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	id, err := h.Svc.Create(r.Context(), srcUC.CreateInput{
		UserID:      auth.UserIDFromContext(r.Context()),
		Name:        validated.Name,
		Year:        validated.Year,
		Month:       validated.Month,
		AmountCents: validated.AmountCents,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusCreated, createdResponse{ID: id})
}
