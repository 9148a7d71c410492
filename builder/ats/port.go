package ats

import (
	"context"
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

type ReportRepository interface {
	// Create persists a new report
	Create(ctx context.Context, report *ATSReport) error

	// GetByID retrieves a report by ID
	GetByID(ctx context.Context, id kernel.ReportID) (*ATSReport, error)

	// ListByResumeID retrieves reports for a resume, newest first
	ListByResumeID(ctx context.Context, resumeID kernel.ResumeID, pagination kernel.PaginationOptions) (*kernel.Paginated[ATSReport], error)
}

// ReportCache is a read-through cache in front of the report store
type ReportCache interface {
	// Get returns the cached report or nil on miss
	Get(ctx context.Context, id kernel.ReportID) (*ATSReport, error)

	// Set stores a report with the given TTL
	Set(ctx context.Context, report *ATSReport, ttl time.Duration) error
}
