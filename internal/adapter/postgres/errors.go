package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

// SQLSTATE codes mapped onto domain errors.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
}

// MapError wraps err with the entity and its identifier (a UUID, an email, or
// an operation name) and translates storage failures into domain errors.
// Context cancellation is kept as is so callers can tell it apart.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	mapped := err
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	case errors.Is(err, pgx.ErrNoRows):
		mapped = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if de, ok := pgCodeErrors[pgErr.Code]; ok {
				mapped = de
			}
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, mapped)
}
