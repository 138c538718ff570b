package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
	"github.com/heartmarshall/seo-review-backend/pkg/ctxutil"
)

// ValidateToken validates a session token and returns the identity it carries.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (ctxutil.Identity, error) {
	claims, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "session token rejected", slog.String("error", err.Error()))
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return ctxutil.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   claims.Role,
	}, nil
}

// CurrentUser returns the stored user behind the request identity.
// A token whose user has since been removed yields ErrUnauthorized.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.CurrentUser: %w", err)
	}
	return user, nil
}

// Logout records the sign-out. Sessions are stateless, so the caller is
// responsible for discarding the token.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}
