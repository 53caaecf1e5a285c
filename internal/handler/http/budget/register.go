package budget

import (
	"net/http"

	budUC "fintrack/internal/usecase/budget"
)

// Register registers all manual-budget HTTP handlers with the given mux.
// Line items are replaced wholesale via PUT /budgets/{id}/items.
func Register(mux *http.ServeMux, svc budUC.Service) {
	mux.Handle("GET /budgets", GetHandler{svc})
	mux.Handle("POST /budgets", CreateHandler{svc})
	mux.Handle("PUT /budgets/{id}/items", ReplaceItemsHandler{svc})
	mux.Handle("DELETE /budgets/", DeleteHandler{svc})
}
