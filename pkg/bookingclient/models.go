package bookingclient

import "time"

// Service услуга каталога
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

type serviceList struct {
	Services []Service `json:"services"`
}

// Slot свободный слот
type Slot struct {
	Start time.Time `json:"start"`
	Time  string    `json:"time"`
}

// Slots свободные слоты на дату и период
type Slots struct {
	Date      string `json:"date"`
	ServiceID string `json:"serviceId"`
	Period    string `json:"period"`
	Slots     []Slot `json:"slots"`
}

// CreateAppointmentRequest запрос на запись
type CreateAppointmentRequest struct {
	ClientName      string    `json:"clientName"`
	PhoneNumber     string    `json:"phoneNumber"`
	ServiceID       string    `json:"serviceId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Period          string    `json:"period,omitempty"`
}

// Notification предзаполненное сообщение для заведения
type Notification struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// CreatedAppointment созданная запись
type CreatedAppointment struct {
	ID              string       `json:"id"`
	ClientName      string       `json:"clientName"`
	PhoneNumber     string       `json:"phoneNumber"`
	ServiceID       string       `json:"serviceId"`
	ServiceName     string       `json:"serviceName"`
	ServicePrice    float64      `json:"servicePrice"`
	DurationMinutes int          `json:"durationMinutes"`
	AppointmentDate time.Time    `json:"appointmentDate"`
	Status          string       `json:"status"`
	CreatedAt       time.Time    `json:"createdAt"`
	Notification    Notification `json:"notification"`
}

// Appointment запись в панели администратора
type Appointment struct {
	ID              string    `json:"id"`
	ClientName      string    `json:"clientName"`
	PhoneNumber     string    `json:"phoneNumber"`
	ServiceID       string    `json:"serviceId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	Service         *Service  `json:"service,omitempty"`
}

// AppointmentList список записей по фильтру
type AppointmentList struct {
	Filter       string        `json:"filter"`
	Appointments []Appointment `json:"appointments"`
	Total        int           `json:"total"`
}

// User администратор сессии
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Session активная сессия администратора
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// errorResponse модель ошибки от сервиса
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
