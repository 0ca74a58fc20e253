package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	sessionStore "github.com/m04kA/SMC-BarberBooking/internal/infra/session"
)

// Store хранилище сессий
type Store interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Subscribe(ctx context.Context, log sessionStore.Logger) (*sessionStore.Subscription, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
