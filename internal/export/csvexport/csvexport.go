// Package csvexport renders reviewed metadata records as CSV.
//
// Every data field is quoted, unlike encoding/csv which only quotes when needed.
package csvexport

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

// TimeFormat is the reviewed_at layout: ISO-8601 in UTC with milliseconds.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Header lists the exported columns in order.
var Header = []string{
	"url",
	"status",
	"final_title",
	"final_meta",
	"original_title",
	"original_meta",
	"suggested_title",
	"suggested_meta",
	"reviewed_by",
	"reviewed_by_name",
	"reviewed_at",
	"used_target_keywords",
	"changes_explanation",
}

var quoteEscaper = strings.NewReplacer(`"`, `""`)

// Write renders records to w. The header row is unquoted; rows are joined by
// "\n" with no trailing newline.
func Write(w io.Writer, records []domain.MetadataRecord) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Header, ",")); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range records {
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
		for j, field := range Row(&records[i]) {
			if j > 0 {
				if err := bw.WriteByte(','); err != nil {
					return fmt.Errorf("write csv row: %w", err)
				}
			}
			if _, err := bw.WriteString(quote(field)); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Row returns the unquoted field values of r in Header order.
// Missing values are empty strings.
func Row(r *domain.MetadataRecord) []string {
	reviewedAt := ""
	if r.ReviewedAt != nil {
		reviewedAt = r.ReviewedAt.UTC().Format(TimeFormat)
	}
	return []string{
		r.URL,
		string(r.Status),
		deref(r.FinalTitle),
		deref(r.FinalMeta),
		r.OriginalTitle,
		r.OriginalMeta,
		r.SuggestedTitle,
		r.SuggestedMeta,
		deref(r.ReviewedBy),
		deref(r.ReviewedByName),
		reviewedAt,
		r.UsedTargetKeywords,
		r.ChangesExplanation,
	}
}

// Filename returns the attachment name for an export made at now.
func Filename(prefix string, now time.Time) string {
	return prefix + "-" + now.UTC().Format(time.DateOnly) + ".csv"
}

func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
