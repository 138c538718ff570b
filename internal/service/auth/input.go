package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

const (
	maxEmailLength    = 254
	maxPasswordLength = 72 // bcrypt ignores everything past 72 bytes
	minPasswordLength = 8
	maxNameLength     = 100
)

// LoginInput holds credentials for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateUserInput holds parameters for provisioning a reviewer account.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil || strings.ContainsAny(i.Email, " <>") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}

	if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.Role != "" && !domain.UserRole(i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be reviewer or admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
