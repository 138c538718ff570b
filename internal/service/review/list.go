package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
	"github.com/heartmarshall/seo-review-backend/internal/metrics"
	"github.com/heartmarshall/seo-review-backend/pkg/ctxutil"
)

// List returns one page of records matching input together with stats over
// the whole collection.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter, page, limit := input.filter(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	records, total, err := s.records.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find metadata: %w", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Records:    records,
		Stats:      stats,
		Pagination: newPagination(page, limit, total),
	}, nil
}

// Stats returns per-status counts over the whole collection. Cached values
// are served while fresh; cache failures fall back to counting. Counts are
// stored under the generation read before counting, so an invalidation that
// lands meanwhile wins.
func (s *Service) Stats(ctx context.Context) (domain.ReviewStats, error) {
	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		stats, g, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.StatsCacheLookups.WithLabelValues("error").Inc()
			s.log.WarnContext(ctx, "stats cache read failed", slog.String("error", err.Error()))
		case ok:
			metrics.StatsCacheLookups.WithLabelValues("hit").Inc()
			return stats, nil
		default:
			metrics.StatsCacheLookups.WithLabelValues("miss").Inc()
			gen, cacheable = g, true
		}
	}

	stats, err := s.records.Stats(ctx)
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("count metadata: %w", err)
	}

	if cacheable {
		if err := s.cache.Set(ctx, gen, stats); err != nil {
			s.log.WarnContext(ctx, "stats cache write failed", slog.String("error", err.Error()))
		}
	}

	return stats, nil
}

// Get returns a single record by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get metadata: %w", err)
	}
	return rec, nil
}
