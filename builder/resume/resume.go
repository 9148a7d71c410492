package resume

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Resume is a LaTeX resume authored from a template
type Resume struct {
	ID         kernel.ResumeID    `db:"id" json:"id"`
	UserID     kernel.UserID      `db:"user_id" json:"user_id"`
	TemplateID kernel.TemplateID  `db:"template_id" json:"template_id"`
	Title      kernel.ResumeTitle `db:"title" json:"title"`
	TexContent kernel.TexContent  `db:"tex_content" json:"tex_content"`
	PDFPath    kernel.BlobPath    `db:"pdf_path" json:"pdf_path,omitempty"`
	Metadata   map[string]any     `db:"metadata" json:"metadata,omitempty"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `db:"updated_at" json:"updated_at"`
}

// HasExport reports whether a rendered PDF exists for this resume
func (r *Resume) HasExport() bool {
	return r.PDFPath != ""
}

// UpdateContent replaces title and LaTeX source, leaving empty fields untouched
func (r *Resume) UpdateContent(title kernel.ResumeTitle, texContent kernel.TexContent) {
	if title != "" {
		r.Title = title
	}
	if texContent != "" {
		r.TexContent = texContent
	}
	r.UpdatedAt = time.Now()
}

// AttachExport records the storage path of a rendered PDF
func (r *Resume) AttachExport(path kernel.BlobPath) {
	r.PDFPath = path
	r.UpdatedAt = time.Now()
}
