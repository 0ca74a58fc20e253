package domain

import "time"

// AdminUser is an administrator account
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	Role         *string
	CreatedAt    time.Time
}
