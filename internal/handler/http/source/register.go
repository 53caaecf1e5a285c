package source

import (
	"net/http"

	srcUC "fintrack/internal/usecase/source"
)

// Register registers all source-related HTTP handlers with the given mux.
// Authentication is applied globally by the verifier middleware; every
// handler reads the owner from the request context.
func Register(mux *http.ServeMux, svc srcUC.Service) {
	mux.Handle("GET /sources", ListHandler{svc})
	mux.Handle("POST /sources", CreateHandler{svc})
	mux.Handle("PUT /sources/", UpdateHandler{svc})
	mux.Handle("DELETE /sources/", DeleteHandler{svc})
}
