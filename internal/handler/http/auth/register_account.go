package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	httpapi "fintrack/internal/handler/http"
	"fintrack/internal/handler/http/decode"
	"fintrack/internal/handler/http/requestid"
	"fintrack/internal/handler/http/respond"
	authUC "fintrack/internal/usecase/auth"
	"fintrack/internal/validation"
)

type registerResponse struct {
	ID int64 `json:"id"`
}

// RegisterAccountHandler creates a new account.
type RegisterAccountHandler struct{ Svc *authUC.Service }

func (h RegisterAccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

	var req validation.RegisterInput
	if err := decode.JSONBody(w, r, &req); err != nil {
		httpapi.RecordValidationRejection(err)
		recordAuth("register", "failure", time.Since(start).Seconds())
		respond.ValidationFailed(w, err)
		return
	}

	validated, err := validation.ValidateRegisterRequest(req)
	if err != nil {
		logger.Warn("registration rejected",
			slog.String("reason", "validation_failed"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		httpapi.RecordValidationRejection(err)
		recordAuth("register", "failure", time.Since(start).Seconds())
		respond.ValidationFailed(w, err)
		return
	}

	id, err := h.Svc.Register(r.Context(), authUC.RegisterInput{
		Username: validated.Username,
		Email:    validated.Email,
		Password: validated.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authUC.ErrUsernameTaken):
			recordAuth("register", "failure", time.Since(start).Seconds())
			respond.SafeError(w, http.StatusConflict, err)
		case errors.Is(err, authUC.ErrWeakPassword):
			recordAuth("register", "failure", time.Since(start).Seconds())
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			logger.Error("registration failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			recordAuth("register", "failure", time.Since(start).Seconds())
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	logger.Info("registration successful",
		slog.Int64("user_id", id),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	recordAuth("register", "success", time.Since(start).Seconds())
	respond.JSON(w, http.StatusCreated, registerResponse{ID: id})
}
