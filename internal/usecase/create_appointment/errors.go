package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidSlot возвращается, когда время не может быть слотом (вне периода, выходной, выход за период)
	ErrInvalidSlot = errors.New("create_appointment: invalid time slot")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrSlotNotAvailable возвращается, когда слот уже занят или прошел к моменту записи
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// Исходы бронирования для метрик
const (
	outcomeCreated = "created"
	outcomeStale   = "stale"
	outcomeInvalid = "invalid"
	outcomeFailed  = "failed"
)
