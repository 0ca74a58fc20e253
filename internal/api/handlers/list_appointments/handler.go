package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

const msgInvalidFilter = "Filtro inválido. Use all, today ou upcoming."

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: filter (all|today|upcoming, по умолчанию all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidFilter) {
			h.logger.Warn("GET /admin/appointments - Invalid filter: %q", filter)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/appointments - Failed to list appointments: filter=%s, error=%v", filter, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Returned %d appointments: filter=%s", result.Total, result.Filter)
	handlers.RespondJSON(w, http.StatusOK, result)
}
