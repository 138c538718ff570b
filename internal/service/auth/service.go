// Package auth implements reviewer sign-in and session validation.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/seo-review-backend/internal/auth"
	"github.com/heartmarshall/seo-review-backend/internal/config"
	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateSessionToken(userID uuid.UUID, role, email, name string) (string, time.Time, error)
	ValidateSessionToken(token string) (*auth.SessionClaims, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
	now   func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		now:   time.Now,
	}
}
