package source

import (
	"errors"
	"net/http"

	httpapi "fintrack/internal/handler/http"
	"fintrack/internal/handler/http/auth"
	"fintrack/internal/handler/http/decode"
	"fintrack/internal/handler/http/pathutil"
	"fintrack/internal/handler/http/respond"
	srcUC "fintrack/internal/usecase/source"
	"fintrack/internal/validation"
)

type UpdateHandler struct{ Svc srcUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/sources/")
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Year        int    `json:"year"`
		Month       int    `json:"month"`
		AmountCents int64  `json:"amount_cents"`
		Status      string `json:"status"`
	}
	if err := decode.JSONBody(w, r, &req); err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	// ボディの id はパスの id で上書きする
	validated, err := validation.ValidateUpdateSourceRequest(validation.UpdateSourceInput{
		ID:          id,
		Name:        req.Name,
		Year:        req.Year,
		Month:       req.Month,
		AmountCents: req.AmountCents,
		Status:      req.Status,
	})
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	err = h.Svc.Update(r.Context(), srcUC.UpdateInput{
		ID:          validated.ID,
		UserID:      auth.UserIDFromContext(r.Context()),
		Name:        validated.Name,
		Year:        validated.Year,
		Month:       validated.Month,
		AmountCents: validated.AmountCents,
		Status:      validated.Status,
	})
	if err != nil {
		if errors.Is(err, srcUC.ErrSourceNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
