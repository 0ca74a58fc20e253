package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/format"
)

// validateRequest валидирует входные данные и возвращает нормализованный запрос
func validateRequest(req *Request) (*Request, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxClientNameLength {
		return nil, fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	// Телефон приводим к маске (DD) NNNNN-NNNN
	phone := format.Phone(req.PhoneNumber)
	if !format.IsValidPhone(phone) {
		return nil, fmt.Errorf("%w: invalid phoneNumber", ErrInvalidInput)
	}

	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(serviceID); err != nil {
		return nil, fmt.Errorf("%w: invalid serviceId %q", ErrInvalidInput, serviceID)
	}

	if req.Start.IsZero() {
		return nil, fmt.Errorf("%w: appointmentDate is required", ErrInvalidInput)
	}

	if req.Period != "" && !req.Period.IsValid() {
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, req.Period)
	}

	return &Request{
		ClientName:  name,
		PhoneNumber: phone,
		ServiceID:   serviceID,
		Start:       req.Start,
		Period:      req.Period,
	}, nil
}

// validateAdvance проверяет ограничение advanceBookingDays (0 означает без ограничений)
func validateAdvance(start, now time.Time, loc *time.Location, advanceBookingDays int) error {
	if advanceBookingDays <= 0 {
		return nil
	}

	localNow := now.In(loc)
	maxDate := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, advanceBookingDays+1)

	if !start.Before(maxDate) {
		return ErrDateTooFarInFuture
	}
	return nil
}

// dayBounds возвращает начало дня записи и начало следующего дня
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}
