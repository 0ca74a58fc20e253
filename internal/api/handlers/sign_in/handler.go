package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/auth"
	"github.com/m04kA/SMC-BarberBooking/internal/service/auth/models"
)

// msgSignInFailed единое сообщение для любой ошибки входа
const msgSignInFailed = "Email ou senha incorretos. Se você esqueceu sua senha, entre em contato com o administrador do sistema."

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondUnauthorized(w, msgSignInFailed)
		return
	}

	result, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/sign-in - Invalid credentials")
		} else {
			h.logger.Error("POST /auth/sign-in - Sign in failed: %v", err)
		}
		handlers.RespondUnauthorized(w, msgSignInFailed)
		return
	}

	h.logger.Info("POST /auth/sign-in - Signed in: user_id=%s, session=%s", result.Session.User.ID, result.Session.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
