package middleware

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// SessionResolver проверяет токен и возвращает живую сессию
type SessionResolver interface {
	Current(ctx context.Context, token string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
