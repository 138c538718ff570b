package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxTitleLength is the longest final title a reviewer may submit.
	MaxTitleLength = 60
	// MaxMetaLength is the longest final meta description a reviewer may submit.
	MaxMetaLength = 160
)

// MetadataRecord is one URL's original and suggested SEO title/meta pair
// together with its review outcome.
type MetadataRecord struct {
	ID                 uuid.UUID
	URL                string
	OriginalTitle      string
	OriginalMeta       string
	SuggestedTitle     string
	SuggestedMeta      string
	UsedTargetKeywords string
	ChangesExplanation string

	Status         ReviewStatus
	CustomerAction *ReviewAction
	FinalTitle     *string
	FinalMeta      *string
	ReviewedBy     *string
	ReviewedByName *string
	ReviewedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPendingRecord builds a freshly imported record awaiting review.
func NewPendingRecord(url, originalTitle, suggestedTitle, originalMeta, suggestedMeta, keywords, explanation string, now time.Time) MetadataRecord {
	return MetadataRecord{
		ID:                 uuid.New(),
		URL:                url,
		OriginalTitle:      originalTitle,
		OriginalMeta:       originalMeta,
		SuggestedTitle:     suggestedTitle,
		SuggestedMeta:      suggestedMeta,
		UsedTargetKeywords: keywords,
		ChangesExplanation: explanation,
		Status:             ReviewStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsPending reports whether the record still awaits a decision.
func (r *MetadataRecord) IsPending() bool {
	return r.Status == ReviewStatusPending
}

// Decision is a reviewer's verdict on one record. Title and Meta are only
// consulted for ReviewActionEdit.
type Decision struct {
	Action ReviewAction
	Title  string
	Meta   string
}

// Reviewer identifies who made a decision, for the audit fields.
type Reviewer struct {
	Email string
	Name  string
}

// Apply transitions a pending record according to d. Final values for accept
// and reject come from the record itself, never from the decision.
// Returns ErrConflict if the record was already reviewed.
func (r *MetadataRecord) Apply(d Decision, by Reviewer, now time.Time) error {
	if !r.IsPending() {
		return fmt.Errorf("metadata %s is %s: %w", r.ID, r.Status, ErrConflict)
	}
	if !d.Action.IsValid() {
		return NewValidationError("action", "Invalid action. Must be: accept, reject, or edit")
	}

	var title, meta string
	switch d.Action {
	case ReviewActionAccept:
		title, meta = r.SuggestedTitle, r.SuggestedMeta
	case ReviewActionReject:
		title, meta = r.OriginalTitle, r.OriginalMeta
	case ReviewActionEdit:
		title, meta = d.Title, d.Meta
	}

	action := d.Action
	reviewedBy := by.Email
	reviewedByName := by.Name
	if reviewedByName == "" {
		reviewedByName = by.Email
	}
	reviewedAt := now

	r.Status = d.Action.ResultStatus()
	r.CustomerAction = &action
	r.FinalTitle = &title
	r.FinalMeta = &meta
	r.ReviewedBy = &reviewedBy
	r.ReviewedByName = &reviewedByName
	r.ReviewedAt = &reviewedAt
	r.UpdatedAt = now

	return nil
}

// ReviewStats holds per-status counts over the whole collection.
type ReviewStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Edited   int `json:"edited"`
}
