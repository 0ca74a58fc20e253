package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string         `json:"date"`
	ServiceID string         `json:"serviceId"`
	Period    string         `json:"period"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model для слота
type SlotResponse struct {
	Start string `json:"start"` // RFC3339 с часовым поясом заведения
	Time  string `json:"time"`  // "09:30"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start: s.Start.Format(time.RFC3339),
			Time:  s.Time,
		})
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date,
		ServiceID: resp.ServiceID,
		Period:    string(resp.Period),
		Slots:     slots,
	}
}
