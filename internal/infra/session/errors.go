package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrExpired возвращается при попытке сохранить уже истекшую сессию
	ErrExpired = errors.New("session.store: session already expired")

	ErrMarshal   = errors.New("session.store: failed to marshal session")
	ErrUnmarshal = errors.New("session.store: failed to unmarshal session")
	ErrRedis     = errors.New("session.store: redis error")
)
