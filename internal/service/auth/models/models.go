package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// SignInRequest запрос на вход администратора
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse пользователь сессии
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// SessionResponse активная сессия
type SessionResponse struct {
	ID        string       `json:"id"`
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// SignInResponse ответ на успешный вход
type SignInResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// FromDomainSession конвертирует domain.Session в SessionResponse
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		ID: s.ID,
		User: UserResponse{
			ID:    s.UserID,
			Email: s.Email,
			Role:  s.Role,
		},
		ExpiresAt: s.ExpiresAt,
	}
}
