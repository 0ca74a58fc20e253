package bookingclient

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotNotAvailable возвращается на 409: слот занят или прошел
	ErrSlotNotAvailable = errors.New("bookingclient: slot is not available")

	// ErrNotFound возвращается на 404
	ErrNotFound = errors.New("bookingclient: not found")

	// ErrUnauthorized возвращается на 401: нет или истекла сессия
	ErrUnauthorized = errors.New("bookingclient: unauthorized")

	// ErrInvalidRequest возвращается на 400
	ErrInvalidRequest = errors.New("bookingclient: invalid request")

	// ErrConfirmationRequired возвращается на 428
	ErrConfirmationRequired = errors.New("bookingclient: confirmation required")

	// ErrRateLimited возвращается на 429
	ErrRateLimited = errors.New("bookingclient: rate limited")

	// ErrInternal возвращается при внутренних ошибках клиента или сервера
	ErrInternal = errors.New("bookingclient: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingclient: invalid response")
)

// APIError ошибка, которую вернул сервер, с сообщением для пользователя
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", e.kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// UserMessage возвращает сообщение сервера для пользователя, если оно есть
func UserMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
