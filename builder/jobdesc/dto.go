package jobdesc

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// CreateJobDescriptionRequest - DTO for saving a new job description
type CreateJobDescriptionRequest struct {
	UserID  kernel.UserID             `json:"user_id" validate:"required"`
	Title   string                    `json:"title" validate:"required"`
	Company string                    `json:"company,omitempty"`
	Text    kernel.JobDescriptionText `json:"text" validate:"required"`
}

// JobDescriptionResponse - DTO for returning job description data
type JobDescriptionResponse struct {
	ID                kernel.JobDescriptionID   `json:"id"`
	UserID            kernel.UserID             `json:"user_id"`
	Title             string                    `json:"title"`
	Company           string                    `json:"company,omitempty"`
	Text              kernel.JobDescriptionText `json:"text"`
	ExtractedKeywords []string                  `json:"extracted_keywords,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
}

// PaginatedJobDescriptionsResponse - alias for a page of job description DTOs
type PaginatedJobDescriptionsResponse = kernel.Paginated[JobDescriptionResponse]
