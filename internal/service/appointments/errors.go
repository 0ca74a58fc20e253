package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidAppointmentID возвращается, когда ID записи не является UUID
	ErrInvalidAppointmentID = errors.New("invalid appointment id")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidFilter возвращается при неизвестном фильтре списка
	ErrInvalidFilter = errors.New("invalid appointment filter")

	// ErrConfirmationRequired возвращается при удалении без подтверждения
	ErrConfirmationRequired = errors.New("deletion must be confirmed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
