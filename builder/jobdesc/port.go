package jobdesc

import (
	"context"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

type Repository interface {
	// Create persists a new job description
	Create(ctx context.Context, jd *JobDescription) error

	// GetByID retrieves a job description by ID
	GetByID(ctx context.Context, id kernel.JobDescriptionID) (*JobDescription, error)

	// ListByUserID retrieves a user's job descriptions, newest first
	ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[JobDescription], error)

	// Delete deletes a job description
	Delete(ctx context.Context, id kernel.JobDescriptionID) error
}
