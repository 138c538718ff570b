package review

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// ListInput holds the query parameters of the review list.
type ListInput struct {
	Status    string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Status == "" || i.Status == StatusAll {
		return nil
	}
	if !domain.ReviewStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "Invalid status. Must be: pending, accepted, rejected, edited, or all")
	}
	return nil
}

// filter normalizes paging against cfg limits and builds the repository filter.
func (i ListInput) filter(defaultLimit, maxLimit int) (domain.MetadataFilter, int, int) {
	page := i.Page
	if page < 1 {
		page = 1
	}
	limit := i.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	f := domain.MetadataFilter{
		SortBy:    i.SortBy,
		SortOrder: i.SortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	if i.Status != "" && i.Status != StatusAll {
		s := domain.ReviewStatus(i.Status)
		f.Status = &s
	}
	if s := strings.TrimSpace(i.Search); s != "" {
		f.Search = &s
	}
	return f, page, limit
}

// DecideInput is a reviewer's verdict on one record.
type DecideInput struct {
	Action string
	Title  string
	Meta   string
}

// Validate checks the action and, for edits, the submitted values.
// Lengths are counted in characters, not bytes.
func (i DecideInput) Validate() error {
	action := domain.ReviewAction(i.Action)
	if !action.IsValid() {
		return domain.NewValidationError("action", "Invalid action. Must be: accept, reject, or edit")
	}
	if action != domain.ReviewActionEdit {
		return nil
	}

	if strings.TrimSpace(i.Title) == "" || strings.TrimSpace(i.Meta) == "" {
		return domain.NewValidationError("title", "Title and meta are required for edit action")
	}

	var errs []domain.FieldError
	if utf8.RuneCountInString(i.Title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title must be 60 characters or less"})
	}
	if utf8.RuneCountInString(i.Meta) > domain.MaxMetaLength {
		errs = append(errs, domain.FieldError{Field: "meta", Message: "Meta description must be 160 characters or less"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i DecideInput) decision() domain.Decision {
	return domain.Decision{
		Action: domain.ReviewAction(i.Action),
		Title:  i.Title,
		Meta:   i.Meta,
	}
}
