package expense

import (
	"net/http"

	expUC "fintrack/internal/usecase/expense"
)

// Register registers all expense-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc expUC.Service) {
	mux.Handle("GET /expenses", ListHandler{svc})
	mux.Handle("POST /expenses", RecordHandler{svc})
	mux.Handle("DELETE /expenses/", DeleteHandler{svc})
}
