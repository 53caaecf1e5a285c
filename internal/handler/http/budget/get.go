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

type GetHandler struct{ Svc budUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	year, month, err := pathutil.YearMonthQuery(r.URL.Query())
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	b, err := h.Svc.GetMonth(r.Context(), auth.UserIDFromContext(r.Context()), year, month)
	if err != nil {
		if errors.Is(err, budUC.ErrBudgetNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(b))
}
