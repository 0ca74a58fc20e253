package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName      string `json:"clientName"`
	PhoneNumber     string `json:"phoneNumber"`
	ServiceID       string `json:"serviceId"`
	AppointmentDate string `json:"appointmentDate"`  // RFC3339, "2026-03-09T09:00:00-03:00"
	Period          string `json:"period,omitempty"` // morning | afternoon
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string               `json:"id"`
	ClientName      string               `json:"clientName"`
	PhoneNumber     string               `json:"phoneNumber"`
	ServiceID       string               `json:"serviceId"`
	ServiceName     string               `json:"serviceName"`
	ServicePrice    float64              `json:"servicePrice"`
	DurationMinutes int                  `json:"durationMinutes"`
	AppointmentDate string               `json:"appointmentDate"`
	Status          string               `json:"status"`
	CreatedAt       string               `json:"createdAt"`
	Notification    NotificationResponse `json:"notification"`
}

// NotificationResponse предзаполненное сообщение для заведения
type NotificationResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	start, err := time.Parse(time.RFC3339, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:  r.ClientName,
		PhoneNumber: r.PhoneNumber,
		ServiceID:   r.ServiceID,
		Start:       start,
		Period:      domain.Period(r.Period),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientName:      resp.ClientName,
		PhoneNumber:     resp.PhoneNumber,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		DurationMinutes: resp.DurationMinutes,
		AppointmentDate: resp.Date.Format(time.RFC3339),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		Notification: NotificationResponse{
			Message: resp.NotificationMessage,
			URL:     resp.NotificationURL,
		},
	}
}
