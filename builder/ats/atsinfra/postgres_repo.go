package atsinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/resumeforge/resumeforge/builder/ats"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// PostgresReportRepository implements ats.ReportRepository using PostgreSQL
type PostgresReportRepository struct {
	db *sqlx.DB
}

// NewPostgresReportRepository creates a new PostgreSQL report repository
func NewPostgresReportRepository(db *sqlx.DB) *PostgresReportRepository {
	return &PostgresReportRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type reportModel struct {
	ID               string          `db:"id"`
	ResumeID         string          `db:"resume_id"`
	JobDescriptionID string          `db:"job_description_id"`
	Score            int             `db:"score"`
	MissingKeywords  json.RawMessage `db:"missing_keywords"`
	Suggestions      json.RawMessage `db:"suggestions"`
	CreatedAt        time.Time       `db:"created_at"`
}

func (m *reportModel) toEntity() (*ats.ATSReport, error) {
	var missing []string
	if len(m.MissingKeywords) > 0 {
		if err := json.Unmarshal(m.MissingKeywords, &missing); err != nil {
			return nil, fmt.Errorf("failed to unmarshal missing_keywords: %w", err)
		}
	}

	var suggestions []string
	if len(m.Suggestions) > 0 {
		if err := json.Unmarshal(m.Suggestions, &suggestions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
		}
	}

	return &ats.ATSReport{
		ID:               kernel.ReportID(m.ID),
		ResumeID:         kernel.ResumeID(m.ResumeID),
		JobDescriptionID: kernel.JobDescriptionID(m.JobDescriptionID),
		Score:            m.Score,
		MissingKeywords:  missing,
		Suggestions:      suggestions,
		CreatedAt:        m.CreatedAt,
	}, nil
}

func fromEntity(r *ats.ATSReport) (*reportModel, error) {
	missing, err := json.Marshal(r.MissingKeywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal missing_keywords: %w", err)
	}

	suggestions, err := json.Marshal(r.Suggestions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	return &reportModel{
		ID:               string(r.ID),
		ResumeID:         string(r.ResumeID),
		JobDescriptionID: string(r.JobDescriptionID),
		Score:            r.Score,
		MissingKeywords:  missing,
		Suggestions:      suggestions,
		CreatedAt:        r.CreatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create persists a new report
func (r *PostgresReportRepository) Create(ctx context.Context, report *ats.ATSReport) error {
	model, err := fromEntity(report)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ats_reports (
			id, resume_id, job_description_id, score,
			missing_keywords, suggestions, created_at
		) VALUES (
			:id, :resume_id, :job_description_id, :score,
			:missing_keywords, :suggestions, :created_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return ats.ErrRegistry.NewWithCause(ats.CodeInvalidReference, err).
					WithDetail("resume_id", report.ResumeID.String()).
					WithDetail("job_description_id", report.JobDescriptionID.String())
			}
		}
		return fmt.Errorf("failed to create ats report: %w", err)
	}

	return nil
}

// GetByID retrieves a report by ID
func (r *PostgresReportRepository) GetByID(ctx context.Context, id kernel.ReportID) (*ats.ATSReport, error) {
	query := `
		SELECT
			id, resume_id, job_description_id, score,
			missing_keywords, suggestions, created_at
		FROM ats_reports
		WHERE id = $1
	`

	var model reportModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ats.ErrReportNotFound().WithDetail("report_id", id.String())
		}
		return nil, fmt.Errorf("failed to get ats report by id: %w", err)
	}

	return model.toEntity()
}

// ListByResumeID retrieves reports for a resume, newest first
func (r *PostgresReportRepository) ListByResumeID(ctx context.Context, resumeID kernel.ResumeID, pagination kernel.PaginationOptions) (*kernel.Paginated[ats.ATSReport], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM ats_reports WHERE resume_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(resumeID)); err != nil {
		return nil, fmt.Errorf("failed to count ats reports: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT
			id, resume_id, job_description_id, score,
			missing_keywords, suggestions, created_at
		FROM ats_reports
		WHERE resume_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []reportModel
	err := r.db.SelectContext(ctx, &models, query, string(resumeID), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ats reports: %w", err)
	}

	entities := make([]ats.ATSReport, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &kernel.Paginated[ats.ATSReport]{
		Items: entities,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(entities) == 0,
	}, nil
}
