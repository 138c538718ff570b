package rest

import (
	"time"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
	"github.com/heartmarshall/seo-review-backend/internal/service/review"
)

type metadataDTO struct {
	ID                 string     `json:"_id"`
	URL                string     `json:"url"`
	OriginalTitle      string     `json:"original_title"`
	SuggestedTitle     string     `json:"suggested_title"`
	OriginalMeta       string     `json:"original_meta"`
	SuggestedMeta      string     `json:"suggested_meta"`
	UsedTargetKeywords string     `json:"used_target_keywords"`
	ChangesExplanation string     `json:"changes_explanation"`
	Status             string     `json:"status"`
	CustomerAction     *string    `json:"customer_action"`
	FinalTitle         *string    `json:"final_title"`
	FinalMeta          *string    `json:"final_meta"`
	ReviewedBy         *string    `json:"reviewed_by"`
	ReviewedByName     *string    `json:"reviewed_by_name"`
	ReviewedAt         *time.Time `json:"reviewed_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func toMetadataDTO(r *domain.MetadataRecord) metadataDTO {
	dto := metadataDTO{
		ID:                 r.ID.String(),
		URL:                r.URL,
		OriginalTitle:      r.OriginalTitle,
		SuggestedTitle:     r.SuggestedTitle,
		OriginalMeta:       r.OriginalMeta,
		SuggestedMeta:      r.SuggestedMeta,
		UsedTargetKeywords: r.UsedTargetKeywords,
		ChangesExplanation: r.ChangesExplanation,
		Status:             r.Status.String(),
		FinalTitle:         r.FinalTitle,
		FinalMeta:          r.FinalMeta,
		ReviewedBy:         r.ReviewedBy,
		ReviewedByName:     r.ReviewedByName,
		ReviewedAt:         r.ReviewedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.CustomerAction != nil {
		action := r.CustomerAction.String()
		dto.CustomerAction = &action
	}
	return dto
}

type listResponse struct {
	Success    bool               `json:"success"`
	Data       []metadataDTO      `json:"data"`
	Stats      domain.ReviewStats `json:"stats"`
	Count      int                `json:"count"`
	Pagination review.Pagination  `json:"pagination"`
}

type recordResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    metadataDTO `json:"data"`
}

type decideRequest struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Meta   string `json:"meta"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role.String(),
	}
}
