package expense

import (
	"net/http"

	httpapi "fintrack/internal/handler/http"
	"fintrack/internal/handler/http/auth"
	"fintrack/internal/handler/http/pathutil"
	"fintrack/internal/handler/http/respond"
	expUC "fintrack/internal/usecase/expense"
)

type ListHandler struct{ Svc expUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	year, month, err := pathutil.YearMonthQuery(r.URL.Query())
	if err != nil {
		httpapi.RecordValidationRejection(err)
		respond.ValidationFailed(w, err)
		return
	}

	list, err := h.Svc.ListByMonth(r.Context(), auth.UserIDFromContext(r.Context()), year, month)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, e := range list {
		out = append(out, toDTO(e))
	}
	respond.JSON(w, http.StatusOK, out)
}
