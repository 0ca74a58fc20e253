package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

const (
	msgConfirmationRequired = "Confirme a exclusão do agendamento."
	msgAppointmentNotFound  = "Agendamento não encontrado."
	msgInvalidID            = "Identificador de agendamento inválido."
)

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

// Handle DELETE /api/v1/admin/appointments/{appointmentId}?confirm=true
// Без confirm=true запись не удаляется (428)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	confirmed, err := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if err != nil {
		confirmed = false
	}

	if err := h.service.Delete(r.Context(), appointmentID, confirmed); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidAppointmentID):
			h.logger.Warn("DELETE /admin/appointments/{id} - Invalid appointment id: %q", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, appointments.ErrConfirmationRequired):
			h.logger.Warn("DELETE /admin/appointments/{id} - Confirmation required: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusPreconditionRequired, msgConfirmationRequired)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /admin/appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /admin/appointments/{id} - Failed to delete: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/appointments/{id} - Appointment deleted: appointment_id=%s", appointmentID)
	w.WriteHeader(http.StatusNoContent)
}
