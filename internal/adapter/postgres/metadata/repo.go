// Package metadata implements the SEO metadata record repository using PostgreSQL.
package metadata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/seo-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

const tableMetadata = "seo_metadata"

var recordColumns = []string{
	"id", "url",
	"original_title", "original_meta",
	"suggested_title", "suggested_meta",
	"used_target_keywords", "changes_explanation",
	"status", "customer_action",
	"final_title", "final_meta",
	"reviewed_by", "reviewed_by_name", "reviewed_at",
	"created_at", "updated_at",
}

// Repo provides metadata record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new metadata repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate returns a record and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.MetadataRecord, error) {
	b := postgres.Builder().
		Select(recordColumns...).
		From(tableMetadata).
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build metadata query: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "metadata", id)
	}

	rec := row.toDomain()
	return &rec, nil
}

// Find returns one page of records matching filter, plus the total number of
// matching records across all pages.
func (r *Repo) Find(ctx context.Context, filter domain.MetadataFilter) ([]domain.MetadataRecord, int, error) {
	where := filterConditions(filter)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(tableMetadata).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build metadata count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "metadata", "count")
	}

	if total == 0 {
		return []domain.MetadataRecord{}, 0, nil
	}

	b := postgres.Builder().
		Select(recordColumns...).
		From(tableMetadata).
		Where(where).
		OrderBy(orderBy(filter.SortBy, filter.SortOrder)...)
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build metadata list: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, "metadata", "list")
	}

	return toDomainRecords(rows), total, nil
}

// Stats counts records per status over the whole collection.
func (r *Repo) Stats(ctx context.Context) (domain.ReviewStats, error) {
	query, args, err := postgres.Builder().
		Select(
			"count(*) AS total",
			"count(*) FILTER (WHERE status = 'pending') AS pending",
			"count(*) FILTER (WHERE status = 'accepted') AS accepted",
			"count(*) FILTER (WHERE status = 'rejected') AS rejected",
			"count(*) FILTER (WHERE status = 'edited') AS edited",
		).
		From(tableMetadata).
		ToSql()
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("build metadata stats: %w", err)
	}

	var s domain.ReviewStats
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&s.Total, &s.Pending, &s.Accepted, &s.Rejected, &s.Edited)
	if err != nil {
		return domain.ReviewStats{}, postgres.MapError(err, "metadata", "stats")
	}
	return s, nil
}

// ListReviewed returns every non-pending record, most recently reviewed first.
func (r *Repo) ListReviewed(ctx context.Context) ([]domain.MetadataRecord, error) {
	query, args, err := postgres.Builder().
		Select(recordColumns...).
		From(tableMetadata).
		Where(squirrel.NotEq{"status": string(domain.ReviewStatusPending)}).
		OrderBy("reviewed_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build metadata export: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "metadata", "export")
	}
	return toDomainRecords(rows), nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// SaveDecision persists the review fields of rec, but only while the stored
// row is still pending. Returns ErrConflict if the row was already reviewed
// and ErrNotFound if it does not exist.
func (r *Repo) SaveDecision(ctx context.Context, rec *domain.MetadataRecord) (*domain.MetadataRecord, error) {
	if rec.CustomerAction == nil {
		return nil, fmt.Errorf("metadata %s: save decision without action: %w", rec.ID, domain.ErrValidation)
	}

	query, args, err := postgres.Builder().
		Update(tableMetadata).
		Set("status", string(rec.Status)).
		Set("customer_action", string(*rec.CustomerAction)).
		Set("final_title", rec.FinalTitle).
		Set("final_meta", rec.FinalMeta).
		Set("reviewed_by", rec.ReviewedBy).
		Set("reviewed_by_name", rec.ReviewedByName).
		Set("reviewed_at", rec.ReviewedAt).
		Set("updated_at", rec.UpdatedAt).
		Where(squirrel.Eq{"id": rec.ID, "status": string(domain.ReviewStatusPending)}).
		Suffix("RETURNING " + strings.Join(recordColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build metadata update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recordRow
	err = pgxscan.Get(ctx, q, &row, query, args...)
	if err == nil {
		saved := row.toDomain()
		return &saved, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, "metadata", rec.ID)
	}

	// No row updated: tell a missing id apart from one already reviewed.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM seo_metadata WHERE id = $1)`, rec.ID).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "metadata", rec.ID)
	}
	if !exists {
		return nil, fmt.Errorf("metadata %s: %w", rec.ID, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("metadata %s already reviewed: %w", rec.ID, domain.ErrConflict)
}

// BulkInsert copies recs into the table and returns the number of rows written.
func (r *Repo) BulkInsert(ctx context.Context, recs []domain.MetadataRecord) (int64, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	n, err := postgres.QuerierFromCtx(ctx, r.db).CopyFrom(
		ctx,
		pgx.Identifier{tableMetadata},
		recordColumns,
		pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
			return copyValues(recs[i]), nil
		}),
	)
	if err != nil {
		return 0, postgres.MapError(err, "metadata", "bulk insert")
	}
	return n, nil
}

// DeleteAll removes every record and returns how many were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM seo_metadata`)
	if err != nil {
		return 0, postgres.MapError(err, "metadata", "delete all")
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

// sortColumns whitelists the columns a caller may sort by.
var sortColumns = map[string]string{
	"created_at":      "created_at",
	"updated_at":      "updated_at",
	"reviewed_at":     "reviewed_at",
	"url":             "url",
	"status":          "status",
	"original_title":  "original_title",
	"suggested_title": "suggested_title",
}

// orderBy returns ORDER BY terms; unknown columns fall back to created_at and
// anything other than "asc" sorts descending. id breaks ties.
func orderBy(sortBy, sortOrder string) []string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	first := col + " " + dir
	if col == "reviewed_at" {
		first += " NULLS LAST"
	}
	return []string{first, "id " + dir}
}

func filterConditions(filter domain.MetadataFilter) squirrel.And {
	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Search != nil {
		if s := strings.TrimSpace(*filter.Search); s != "" {
			pattern := "%" + escapeLike(s) + "%"
			where = append(where, squirrel.Or{
				squirrel.ILike{"url": pattern},
				squirrel.ILike{"used_target_keywords": pattern},
				squirrel.ILike{"original_title": pattern},
				squirrel.ILike{"suggested_title": pattern},
			})
		}
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type recordRow struct {
	ID                 uuid.UUID  `db:"id"`
	URL                string     `db:"url"`
	OriginalTitle      string     `db:"original_title"`
	OriginalMeta       string     `db:"original_meta"`
	SuggestedTitle     string     `db:"suggested_title"`
	SuggestedMeta      string     `db:"suggested_meta"`
	UsedTargetKeywords string     `db:"used_target_keywords"`
	ChangesExplanation string     `db:"changes_explanation"`
	Status             string     `db:"status"`
	CustomerAction     *string    `db:"customer_action"`
	FinalTitle         *string    `db:"final_title"`
	FinalMeta          *string    `db:"final_meta"`
	ReviewedBy         *string    `db:"reviewed_by"`
	ReviewedByName     *string    `db:"reviewed_by_name"`
	ReviewedAt         *time.Time `db:"reviewed_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r recordRow) toDomain() domain.MetadataRecord {
	rec := domain.MetadataRecord{
		ID:                 r.ID,
		URL:                r.URL,
		OriginalTitle:      r.OriginalTitle,
		OriginalMeta:       r.OriginalMeta,
		SuggestedTitle:     r.SuggestedTitle,
		SuggestedMeta:      r.SuggestedMeta,
		UsedTargetKeywords: r.UsedTargetKeywords,
		ChangesExplanation: r.ChangesExplanation,
		Status:             domain.ReviewStatus(r.Status),
		FinalTitle:         r.FinalTitle,
		FinalMeta:          r.FinalMeta,
		ReviewedBy:         r.ReviewedBy,
		ReviewedByName:     r.ReviewedByName,
		ReviewedAt:         r.ReviewedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.CustomerAction != nil {
		a := domain.ReviewAction(*r.CustomerAction)
		rec.CustomerAction = &a
	}
	return rec
}

func toDomainRecords(rows []recordRow) []domain.MetadataRecord {
	out := make([]domain.MetadataRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

// copyValues orders rec's fields to match recordColumns.
func copyValues(rec domain.MetadataRecord) []any {
	var action *string
	if rec.CustomerAction != nil {
		a := string(*rec.CustomerAction)
		action = &a
	}
	return []any{
		rec.ID, rec.URL,
		rec.OriginalTitle, rec.OriginalMeta,
		rec.SuggestedTitle, rec.SuggestedMeta,
		rec.UsedTargetKeywords, rec.ChangesExplanation,
		string(rec.Status), action,
		rec.FinalTitle, rec.FinalMeta,
		rec.ReviewedBy, rec.ReviewedByName, rec.ReviewedAt,
		rec.CreatedAt, rec.UpdatedAt,
	}
}
