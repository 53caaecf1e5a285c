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

type tokenResponse struct {
	Token string `json:"token"`
}

// LoginHandler authenticates a username/password pair and issues a JWT.
type LoginHandler struct{ Svc *authUC.Service }

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

	var req validation.LoginInput
	if err := decode.JSONBody(w, r, &req); err != nil {
		logger.Warn("login rejected",
			slog.String("reason", "invalid_body"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		httpapi.RecordValidationRejection(err)
		recordAuth("login", "failure", time.Since(start).Seconds())
		respond.ValidationFailed(w, err)
		return
	}

	validated, err := validation.ValidateLoginRequest(validation.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		// 入力値はログにも残さない
		logger.Warn("login rejected",
			slog.String("reason", "validation_failed"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		httpapi.RecordValidationRejection(err)
		recordAuth("login", "failure", time.Since(start).Seconds())
		respond.ValidationFailed(w, err)
		return
	}

	token, err := h.Svc.Login(r.Context(), validated.Username, validated.Password)
	if err != nil {
		if errors.Is(err, authUC.ErrInvalidCredentials) {
			logger.Warn("login failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			recordAuth("login", "failure", time.Since(start).Seconds())
			respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
			return
		}
		logger.Error("login failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		recordAuth("login", "failure", time.Since(start).Seconds())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("login successful",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	recordAuth("login", "success", time.Since(start).Seconds())
	respond.JSON(w, http.StatusOK, tokenResponse{Token: token})
}
