package template

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// CreateTemplateRequest - DTO for registering a new template
type CreateTemplateRequest struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description,omitempty"`
	PreviewURL       string   `json:"preview_url,omitempty"`
	TexContent       string   `json:"tex_content" validate:"required"`
	Categories       []string `json:"categories,omitempty"`
	ATSScoreEstimate *int     `json:"ats_score_estimate,omitempty"`
}

// TemplateResponse - DTO for returning template data
type TemplateResponse struct {
	ID               kernel.TemplateID `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	PreviewURL       string            `json:"preview_url,omitempty"`
	Categories       []string          `json:"categories,omitempty"`
	ATSScoreEstimate *int              `json:"ats_score_estimate,omitempty"`
	Active           bool              `json:"active"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// TemplateContentResponse - DTO carrying the raw LaTeX source of a template
type TemplateContentResponse struct {
	ID         kernel.TemplateID `json:"id"`
	TexContent string            `json:"tex_content"`
}

// CategoriesResponse - DTO listing the distinct template categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// PaginatedTemplatesResponse - alias for a page of template DTOs
type PaginatedTemplatesResponse = kernel.Paginated[TemplateResponse]
