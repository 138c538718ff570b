package review

import "github.com/heartmarshall/seo-review-backend/internal/domain"

// Pagination describes the page returned by List.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func newPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// ListResult is one page of records plus collection-wide counters.
type ListResult struct {
	Records    []domain.MetadataRecord
	Stats      domain.ReviewStats
	Pagination Pagination
}
