package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

// Store is the persistence needed by an import.
type Store interface {
	BulkInsert(ctx context.Context, recs []domain.MetadataRecord) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// TxManager runs fn in a single transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatsInvalidator drops cached dashboard counters. Optional.
type StatsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Result holds import statistics.
type Result struct {
	Parsed   int
	Skipped  int
	Deleted  int64
	Inserted int64
}

// Importer loads parsed records into the store.
type Importer struct {
	store Store
	tx    TxManager
	cache StatsInvalidator
	log   *slog.Logger
	now   func() time.Time
}

// New creates an Importer. cache may be nil.
func New(log *slog.Logger, store Store, tx TxManager, cache StatsInvalidator) *Importer {
	return &Importer{
		store: store,
		tx:    tx,
		cache: cache,
		log:   log.With("component", "importer"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Run parses r and inserts every row as a pending record. With cfg.Replace the
// existing collection is deleted first, in the same transaction.
func (im *Importer) Run(ctx context.Context, cfg Config, r io.Reader) (Result, error) {
	parsed, err := Parse(r, im.now())
	if err != nil {
		return Result{}, err
	}

	result := Result{Parsed: len(parsed.Records), Skipped: parsed.Skipped}
	im.log.InfoContext(ctx, "csv parsed",
		slog.Int("records", result.Parsed),
		slog.Int("skipped", result.Skipped))

	if cfg.DryRun {
		im.log.InfoContext(ctx, "dry-run mode: no DB writes")
		return result, nil
	}

	batch := cfg.BatchSize
	if batch <= 0 {
		batch = len(parsed.Records)
	}

	err = im.tx.RunInTx(ctx, func(ctx context.Context) error {
		if cfg.Replace {
			n, err := im.store.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("clear metadata: %w", err)
			}
			result.Deleted = n
		}

		for start := 0; start < len(parsed.Records); start += batch {
			end := min(start+batch, len(parsed.Records))
			n, err := im.store.BulkInsert(ctx, parsed.Records[start:end])
			if err != nil {
				return fmt.Errorf("insert metadata rows %d-%d: %w", start, end, err)
			}
			result.Inserted += n
		}
		return nil
	})
	if err != nil {
		return Result{Parsed: result.Parsed, Skipped: result.Skipped}, err
	}

	if im.cache != nil {
		if err := im.cache.Invalidate(ctx); err != nil {
			im.log.WarnContext(ctx, "stats cache invalidate failed", slog.String("error", err.Error()))
		}
	}

	im.log.InfoContext(ctx, "import complete",
		slog.Int("parsed", result.Parsed),
		slog.Int("skipped", result.Skipped),
		slog.Int64("deleted", result.Deleted),
		slog.Int64("inserted", result.Inserted),
	)
	return result, nil
}
