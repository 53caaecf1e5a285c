package auth

import (
	"net/http"

	authUC "fintrack/internal/usecase/auth"
)

// Register registers the authentication endpoints with the given mux.
// Both are public by definition; the verifier middleware exempts /auth/.
func Register(mux *http.ServeMux, svc *authUC.Service) {
	mux.Handle("POST /auth/login", LoginHandler{svc})
	mux.Handle("POST /auth/register", RegisterAccountHandler{svc})
}
