package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
	"github.com/heartmarshall/seo-review-backend/internal/metrics"
	"github.com/heartmarshall/seo-review-backend/pkg/ctxutil"
)

// Decide applies a review decision to a pending record and returns the
// stored result. A record that was already reviewed yields ErrConflict.
func (s *Service) Decide(ctx context.Context, id uuid.UUID, input DecideInput) (*domain.MetadataRecord, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	reviewer := domain.Reviewer{Email: identity.Email, Name: identity.Name}
	decision := input.decision()

	var saved *domain.MetadataRecord
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rec, err := s.records.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get metadata: %w", err)
		}

		if err := rec.Apply(decision, reviewer, s.now()); err != nil {
			return err
		}

		saved, err = s.records.SaveDecision(ctx, rec)
		if err != nil {
			return fmt.Errorf("save decision: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.ReviewConflicts.Inc()
			s.log.InfoContext(ctx, "decision on reviewed metadata",
				slog.String("metadata_id", id.String()),
				slog.String("reviewer", identity.Email),
			)
		}
		return nil, err
	}

	metrics.ReviewDecisions.WithLabelValues(string(decision.Action)).Inc()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.WarnContext(ctx, "stats cache invalidate failed", slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "metadata reviewed",
		slog.String("metadata_id", saved.ID.String()),
		slog.String("action", string(decision.Action)),
		slog.String("status", string(saved.Status)),
		slog.String("reviewer", identity.Email),
	)

	return saved, nil
}
