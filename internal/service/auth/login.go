package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
	"github.com/heartmarshall/seo-review-backend/internal/metrics"
)

// Login authenticates a reviewer with email + password and issues a session token.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("rejected").Inc()
			s.log.InfoContext(ctx, "login rejected", slog.String("reason", "unknown email"))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		s.log.InfoContext(ctx, "login rejected",
			slog.String("reason", "wrong password"),
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.jwt.GenerateSessionToken(user.ID, user.Role.String(), user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
