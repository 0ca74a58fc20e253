package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/format"
)

// validateRequest валидирует входные данные и возвращает дату в часовом поясе заведения
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" {
		return time.Time{}, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.ServiceID); err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid serviceId %q", ErrInvalidInput, serviceID)
	}

	if !req.Period.IsValid() {
		return time.Time{}, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, req.Period)
	}

	date, err := format.ParseISODate(req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q: %v", ErrInvalidInput, req.Date, err)
	}

	return date, nil
}

// isDateInPast проверяет, что день целиком прошел
func isDateInPast(date, now time.Time, loc *time.Location) bool {
	localNow := now.In(loc)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)
	return date.Before(today)
}

// validateDate проверяет ограничение advanceBookingDays (0 означает без ограничений)
func validateDate(date, now time.Time, loc *time.Location, advanceBookingDays int) error {
	if advanceBookingDays <= 0 {
		return nil
	}

	localNow := now.In(loc)
	maxDate := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, advanceBookingDays)

	if date.After(maxDate) {
		return fmt.Errorf("%w: max %s", ErrDateTooFarInFuture, maxDate.Format(domain.DateFormat))
	}
	return nil
}
