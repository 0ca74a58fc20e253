package sign_out

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

type AuthService interface {
	SignOut(ctx context.Context, sess *domain.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
