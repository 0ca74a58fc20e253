package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/auth/models"
)

const msgNoSession = "Sessão não encontrada."

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/auth/session
// Сессию уже проверил middleware.Auth
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/session - No session in context")
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSession(sess))
}
