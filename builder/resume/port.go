package resume

import (
	"context"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

type Repository interface {
	// Create creates a new resume
	Create(ctx context.Context, resume *Resume) error

	// Update updates an existing resume
	Update(ctx context.Context, id kernel.ResumeID, resume *Resume) error

	// GetByID retrieves a resume by ID
	GetByID(ctx context.Context, id kernel.ResumeID) (*Resume, error)

	// ListByUserID retrieves a user's resumes, newest first
	ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Resume], error)

	// Delete deletes a resume
	Delete(ctx context.Context, id kernel.ResumeID) error

	// CountByUserID counts resumes owned by a user
	CountByUserID(ctx context.Context, userID kernel.UserID) (int64, error)
}
