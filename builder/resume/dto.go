package resume

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// CreateResumeRequest - DTO for creating a new resume
type CreateResumeRequest struct {
	UserID     kernel.UserID      `json:"user_id" validate:"required"`
	TemplateID kernel.TemplateID  `json:"template_id" validate:"required"`
	Title      kernel.ResumeTitle `json:"title" validate:"required"`
	TexContent kernel.TexContent  `json:"tex_content" validate:"required"`
	Metadata   map[string]any     `json:"metadata,omitempty"`
}

// UpdateResumeRequest - DTO for updating a resume's title and LaTeX source
type UpdateResumeRequest struct {
	Title      *kernel.ResumeTitle `json:"title,omitempty"`
	TexContent *kernel.TexContent  `json:"tex_content,omitempty"`
	Metadata   *map[string]any     `json:"metadata,omitempty"`
}

// ResumeResponse - DTO for returning resume data
type ResumeResponse struct {
	ID         kernel.ResumeID    `json:"id"`
	UserID     kernel.UserID      `json:"user_id"`
	TemplateID kernel.TemplateID  `json:"template_id"`
	Title      kernel.ResumeTitle `json:"title"`
	TexContent kernel.TexContent  `json:"tex_content"`
	PDFPath    kernel.BlobPath    `json:"pdf_path,omitempty"`
	Metadata   map[string]any     `json:"metadata,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// PaginatedResumesResponse - alias for a page of resume DTOs
type PaginatedResumesResponse = kernel.Paginated[ResumeResponse]
