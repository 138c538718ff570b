package review

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
	"github.com/heartmarshall/seo-review-backend/internal/export/csvexport"
	"github.com/heartmarshall/seo-review-backend/pkg/ctxutil"
)

// Export writes every reviewed record to w as CSV, most recent first.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	records, err := s.records.ListReviewed(ctx)
	if err != nil {
		return fmt.Errorf("list reviewed metadata: %w", err)
	}

	if err := csvexport.Write(w, records); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	s.log.InfoContext(ctx, "metadata exported",
		slog.Int("records", len(records)),
		slog.String("user", identity.Email),
	)
	return nil
}

// ExportFilename returns the attachment name for an export made now.
func (s *Service) ExportFilename() string {
	return csvexport.Filename(s.cfg.ExportPrefix, s.now())
}
