package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID = "Selecione um serviço."
	msgMissingDate      = "Selecione uma data."
	msgMissingPeriod    = "Selecione um período."
	msgInvalidInput     = "Parâmetros inválidos. Verifique o serviço, a data (AAAA-MM-DD) e o período."
	msgServiceNotFound  = "Serviço não encontrado."
	msgDateTooFar       = "A data escolhida está muito distante. Escolha uma data mais próxima."
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: serviceId, date (YYYY-MM-DD), period (morning|afternoon), все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID := strings.TrimSpace(query.Get("serviceId"))
	if serviceID == "" {
		h.logger.Warn("GET /available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	date := strings.TrimSpace(query.Get("date"))
	if date == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	period := strings.TrimSpace(query.Get("period"))
	if period == "" {
		h.logger.Warn("GET /available-slots - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
		Period:    domain.Period(period),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /available-slots - Date too far in future: date=%s", date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: service_id=%s, date=%s, error=%v",
				serviceID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Returned %d slots: service_id=%s, date=%s, period=%s",
		len(result.Slots), serviceID, date, period)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
