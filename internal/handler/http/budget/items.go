package budget

import (
	"errors"
	"net/http"

	httpapi "fintrack/internal/handler/http"
	"fintrack/internal/handler/http/auth"
	"fintrack/internal/handler/http/decode"
	"fintrack/internal/handler/http/pathutil"
	"fintrack/internal/handler/http/respond"
	budUC "fintrack/internal/usecase/budget"
	"fintrack/internal/validation"
)

// ReplaceItemsHandler swaps all line items of a budget in one request.
// Partial item updates are not offered; the client always sends the full
// list, which keeps the persistence path a single atomic replace.
type ReplaceItemsHandler struct{ Svc budUC.Service }

func (h ReplaceItemsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	budgetID, err := pathutil.ExtractID(r.PathValue("id"), "")
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	var req struct {
		Items []validation.ManualBudgetItemInput `json:"items"`
	}
	if err := decode.JSONBody(w, r, &req); err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	validated, err := validation.ValidateManualBudgetItemsRequest(validation.ManualBudgetItemsInput{
		BudgetID: budgetID,
		Items:    req.Items,
	})
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	err = h.Svc.ReplaceItems(r.Context(), auth.UserIDFromContext(r.Context()), validated.BudgetID, validated.Items)
	if err != nil {
		if errors.Is(err, budUC.ErrBudgetNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
