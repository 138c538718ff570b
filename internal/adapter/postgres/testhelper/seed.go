package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

// DefaultPassword is the plaintext password of users created by SeedUser.
const DefaultPassword = "correct-horse-battery"

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a reviewer whose password is DefaultPassword.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleReviewer)
}

// SeedUserWithRole creates a user with the given role and DefaultPassword.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("testhelper: SeedUser hash password: %v", err)
	}

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "reviewer-" + suffix + "@example.com",
		Name:         "Reviewer " + suffix,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// RecordOption customizes a seeded record before insert.
type RecordOption func(*domain.MetadataRecord)

// WithURL overrides the record URL.
func WithURL(url string) RecordOption {
	return func(r *domain.MetadataRecord) { r.URL = url }
}

// WithCreatedAt overrides the record creation time.
func WithCreatedAt(at time.Time) RecordOption {
	return func(r *domain.MetadataRecord) {
		r.CreatedAt = at
		r.UpdatedAt = at
	}
}

// Reviewed applies decision d before insert so the record is stored as reviewed.
func Reviewed(d domain.Decision, by domain.Reviewer, at time.Time) RecordOption {
	return func(r *domain.MetadataRecord) {
		_ = r.Apply(d, by, at)
	}
}

// SeedRecord inserts a pending metadata record with unique URL and titles.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, opts ...RecordOption) domain.MetadataRecord {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.NewPendingRecord(
		"https://shop.example.com/p/"+suffix,
		"Original title "+suffix,
		"Suggested title "+suffix,
		"Original meta "+suffix,
		"Suggested meta "+suffix,
		"keyword-"+suffix,
		"explanation "+suffix,
		now,
	)
	for _, opt := range opts {
		opt(&rec)
	}

	var action *string
	if rec.CustomerAction != nil {
		a := string(*rec.CustomerAction)
		action = &a
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO seo_metadata (
			id, url, original_title, original_meta, suggested_title, suggested_meta,
			used_target_keywords, changes_explanation, status, customer_action,
			final_title, final_meta, reviewed_by, reviewed_by_name, reviewed_at,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		rec.ID, rec.URL, rec.OriginalTitle, rec.OriginalMeta, rec.SuggestedTitle, rec.SuggestedMeta,
		rec.UsedTargetKeywords, rec.ChangesExplanation, string(rec.Status), action,
		rec.FinalTitle, rec.FinalMeta, rec.ReviewedBy, rec.ReviewedByName, rec.ReviewedAt,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}
