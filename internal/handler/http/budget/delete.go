package budget

import (
	"errors"
	"net/http"

	httpapi "fintrack/internal/handler/http"
	"fintrack/internal/handler/http/auth"
	"fintrack/internal/handler/http/pathutil"
	"fintrack/internal/handler/http/respond"
	budUC "fintrack/internal/usecase/budget"
)

type DeleteHandler struct{ Svc budUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/budgets/")
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), auth.UserIDFromContext(r.Context()), id); err != nil {
		if errors.Is(err, budUC.ErrBudgetNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
