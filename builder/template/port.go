package template

import (
	"context"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

type Repository interface {
	// Create registers a new template
	Create(ctx context.Context, template *Template) error

	// GetByID retrieves a template by ID
	GetByID(ctx context.Context, id kernel.TemplateID) (*Template, error)

	// ListActive retrieves active templates, newest first
	ListActive(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Template], error)

	// ListCategories retrieves the distinct categories across all templates
	ListCategories(ctx context.Context) ([]string, error)

	// SetActive toggles a template's availability
	SetActive(ctx context.Context, id kernel.TemplateID, active bool) error
}
