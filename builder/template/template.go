package template

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Template is a LaTeX resume template whose source lives in blob storage
type Template struct {
	ID               kernel.TemplateID `db:"id" json:"id"`
	Name             string            `db:"name" json:"name"`
	Description      string            `db:"description" json:"description,omitempty"`
	PreviewURL       string            `db:"preview_url" json:"preview_url,omitempty"`
	TexBlobPath      kernel.BlobPath   `db:"tex_blob_path" json:"tex_blob_path"`
	Categories       []string          `db:"categories" json:"categories,omitempty"`
	ATSScoreEstimate *int              `db:"ats_score_estimate" json:"ats_score_estimate,omitempty"`
	Active           bool              `db:"active" json:"active"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the template is available to users
func (t *Template) IsActive() bool {
	return t.Active
}

// Deactivate hides the template from users without deleting it
func (t *Template) Deactivate() {
	t.Active = false
	t.UpdatedAt = time.Now()
}
