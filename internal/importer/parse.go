// Package importer loads SEO metadata suggestions from CSV into the review store.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

// Columns is the number of leading columns a source row must carry:
// url, original_title, suggested_title, original_meta, suggested_meta,
// used_target_keywords, changes_explanation. Extra columns are ignored.
const Columns = 7

// Parsed is the outcome of reading a source file.
type Parsed struct {
	Records []domain.MetadataRecord
	Skipped int
}

// Parse reads a CSV with a header row and returns one pending record per data
// row. Rows with fewer than Columns fields are skipped and counted.
func Parse(r io.Reader, now time.Time) (Parsed, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var out Parsed
	header := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, fmt.Errorf("read csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(row) < Columns {
			out.Skipped++
			continue
		}

		out.Records = append(out.Records, domain.NewPendingRecord(
			strings.TrimSpace(row[0]),
			strings.TrimSpace(row[1]),
			strings.TrimSpace(row[2]),
			strings.TrimSpace(row[3]),
			strings.TrimSpace(row[4]),
			strings.TrimSpace(row[5]),
			strings.TrimSpace(row[6]),
			now,
		))
	}
	return out, nil
}
