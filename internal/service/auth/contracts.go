package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	Create(ctx context.Context, user *domain.AdminUser) (*domain.AdminUser, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session) error
	Delete(ctx context.Context, sess *domain.Session) error
}

// TokenIssuer выпускает токены для сессий
type TokenIssuer interface {
	Issue(sess *domain.Session) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
