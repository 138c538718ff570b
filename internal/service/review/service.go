// Package review implements the metadata review lifecycle: listing,
// reading, deciding on and exporting SEO metadata records.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/seo-review-backend/internal/config"
	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

type metadataRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error)
	Find(ctx context.Context, filter domain.MetadataFilter) ([]domain.MetadataRecord, int, error)
	Stats(ctx context.Context) (domain.ReviewStats, error)
	SaveDecision(ctx context.Context, rec *domain.MetadataRecord) (*domain.MetadataRecord, error)
	ListReviewed(ctx context.Context) ([]domain.MetadataRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type statsCache interface {
	Get(ctx context.Context) (stats domain.ReviewStats, gen int64, ok bool, err error)
	Set(ctx context.Context, gen int64, stats domain.ReviewStats) error
	Invalidate(ctx context.Context) error
}

// Service provides metadata review operations.
type Service struct {
	records metadataRepo
	tx      txManager
	cache   statsCache
	cfg     config.ReviewConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new review service. cache may be nil, in which case
// stats are counted on every request.
func NewService(
	log *slog.Logger,
	records metadataRepo,
	tx txManager,
	cache statsCache,
	cfg config.ReviewConfig,
) *Service {
	return &Service{
		records: records,
		tx:      tx,
		cache:   cache,
		cfg:     cfg,
		log:     log.With("service", "review"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}
