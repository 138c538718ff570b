package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a reviewer allowed to sign in to the dashboard.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns the name shown in audit fields, falling back to email.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
