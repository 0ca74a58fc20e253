package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ServiceResponse услуга, присоединенная к записи
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// AppointmentResponse запись для панели администратора
type AppointmentResponse struct {
	ID              string           `json:"id"`
	ClientName      string           `json:"clientName"`
	PhoneNumber     string           `json:"phoneNumber"`
	ServiceID       string           `json:"serviceId"`
	AppointmentDate time.Time        `json:"appointmentDate"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	Service         *ServiceResponse `json:"service,omitempty"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Filter       string                 `json:"filter"`
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// Конвертеры

// FromDomainAppointment конвертирует domain.Appointment в AppointmentResponse
func FromDomainAppointment(apt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              apt.ID,
		ClientName:      apt.ClientName,
		PhoneNumber:     apt.PhoneNumber,
		ServiceID:       apt.ServiceID,
		AppointmentDate: apt.Date,
		Status:          string(apt.Status),
		CreatedAt:       apt.CreatedAt,
	}

	if apt.Service != nil {
		resp.Service = &ServiceResponse{
			ID:              apt.Service.ID,
			Name:            apt.Service.Name,
			DurationMinutes: apt.Service.DurationMinutes,
			Price:           apt.Service.Price,
		}
	}

	return resp
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(filter domain.AppointmentFilter, list []*domain.Appointment) *AppointmentListResponse {
	items := make([]*AppointmentResponse, 0, len(list))
	for _, apt := range list {
		items = append(items, FromDomainAppointment(apt))
	}

	return &AppointmentListResponse{
		Filter:       string(filter),
		Appointments: items,
		Total:        len(items),
	}
}
