package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

// CreateUser provisions a reviewer account with a bcrypt-hashed password.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Role == "" {
		input.Role = domain.UserRoleReviewer.String()
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("auth.CreateUser hash password: %w", err)
	}

	now := s.now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         domain.UserRole(input.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return user, nil
}
