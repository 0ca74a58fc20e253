package sign_out

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
)

const msgNoSession = "Sessão não encontrada."

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

// Handle POST /api/v1/auth/sign-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/sign-out - No session in context")
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	if err := h.service.SignOut(r.Context(), sess); err != nil {
		h.logger.Error("POST /auth/sign-out - Failed to sign out: session=%s, error=%v", sess.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-out - Signed out: session=%s", sess.ID)
	w.WriteHeader(http.StatusNoContent)
}
