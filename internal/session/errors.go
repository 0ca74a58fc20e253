package session

import "errors"

var (
	// ErrNoSession возвращается, когда токен не соответствует живой сессии
	ErrNoSession = errors.New("session.gate: no active session")

	// ErrInvalidToken возвращается при невалидной подписи или сроке токена
	ErrInvalidToken = errors.New("session.gate: invalid token")

	ErrGateClosed = errors.New("session.gate: gate is closed")
)
