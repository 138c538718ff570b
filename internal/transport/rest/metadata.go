package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
	"github.com/heartmarshall/seo-review-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by MetadataHandler.
type reviewService interface {
	List(ctx context.Context, input review.ListInput) (*review.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error)
	Decide(ctx context.Context, id uuid.UUID, input review.DecideInput) (*domain.MetadataRecord, error)
	Export(ctx context.Context, w io.Writer) error
	ExportFilename() string
}

const msgRecordNotFound = "Metadata record not found"

// MetadataHandler serves the review dashboard endpoints.
type MetadataHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewMetadataHandler creates a MetadataHandler.
func NewMetadataHandler(svc reviewService, logger *slog.Logger) *MetadataHandler {
	return &MetadataHandler{svc: svc, log: logger.With("handler", "metadata")}
}

// List handles GET /api/metadata.
func (h *MetadataHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.svc.List(r.Context(), review.ListInput{
		Status:    q.Get("status"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      atoiOrZero(q.Get("page")),
		Limit:     atoiOrZero(q.Get("limit")),
	})
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch metadata")
		return
	}

	data := make([]metadataDTO, len(result.Records))
	for i := range result.Records {
		data[i] = toMetadataDTO(&result.Records[i])
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:    true,
		Data:       data,
		Stats:      result.Stats,
		Count:      len(data),
		Pagination: result.Pagination,
	})
}

// Get handles GET /api/metadata/{id}.
func (h *MetadataHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgRecordNotFound)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch metadata")
		return
	}

	writeJSON(w, http.StatusOK, recordResponse{Success: true, Data: toMetadataDTO(rec)})
}

// Decide handles POST /api/metadata/{id}.
func (h *MetadataHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgRecordNotFound)
		return
	}

	var req decideRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.svc.Decide(r.Context(), id, review.DecideInput{
		Action: req.Action,
		Title:  req.Title,
		Meta:   req.Meta,
	})
	if err != nil {
		h.handleError(w, r, err, "Failed to update metadata")
		return
	}

	writeJSON(w, http.StatusOK, recordResponse{
		Success: true,
		Message: fmt.Sprintf("Metadata %sed successfully", req.Action),
		Data:    toMetadataDTO(rec),
	})
}

// Export handles GET /api/metadata/export.
// The CSV is rendered in full before any header is sent so a storage failure
// still yields a JSON error.
func (h *MetadataHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.svc.Export(r.Context(), &buf); err != nil {
		h.handleError(w, r, err, "Failed to export metadata")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.svc.ExportFilename()))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

func (h *MetadataHandler) handleError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve) && len(ve.Errors) > 0:
		writeError(w, http.StatusBadRequest, ve.Errors[0].Message)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, msgRecordNotFound)
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "Metadata record has already been reviewed")
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// parseRecordID reads the {id} path value. Malformed ids cannot name a
// record, so callers answer them like unknown ones.
func parseRecordID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
