package jobdescinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/resumeforge/resumeforge/builder/jobdesc"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// PostgresJobDescriptionRepository implements jobdesc.Repository using PostgreSQL
type PostgresJobDescriptionRepository struct {
	db *sqlx.DB
}

// NewPostgresJobDescriptionRepository creates a new PostgreSQL job description repository
func NewPostgresJobDescriptionRepository(db *sqlx.DB) *PostgresJobDescriptionRepository {
	return &PostgresJobDescriptionRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobDescriptionModel struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	Title             string         `db:"title"`
	Company           sql.NullString `db:"company"`
	Text              string         `db:"text"`
	ExtractedKeywords pq.StringArray `db:"extracted_keywords"`
	CreatedAt         time.Time      `db:"created_at"`
}

func (m *jobDescriptionModel) toEntity() *jobdesc.JobDescription {
	entity := &jobdesc.JobDescription{
		ID:                kernel.JobDescriptionID(m.ID),
		UserID:            kernel.UserID(m.UserID),
		Title:             m.Title,
		Text:              kernel.JobDescriptionText(m.Text),
		ExtractedKeywords: []string(m.ExtractedKeywords),
		CreatedAt:         m.CreatedAt,
	}

	if m.Company.Valid {
		entity.Company = m.Company.String
	}

	return entity
}

func fromEntity(jd *jobdesc.JobDescription) *jobDescriptionModel {
	model := &jobDescriptionModel{
		ID:                string(jd.ID),
		UserID:            string(jd.UserID),
		Title:             jd.Title,
		Text:              string(jd.Text),
		ExtractedKeywords: pq.StringArray(jd.ExtractedKeywords),
		CreatedAt:         jd.CreatedAt,
	}

	if jd.Company != "" {
		model.Company = sql.NullString{String: jd.Company, Valid: true}
	}

	return model
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create persists a new job description
func (r *PostgresJobDescriptionRepository) Create(ctx context.Context, jd *jobdesc.JobDescription) error {
	model := fromEntity(jd)

	query := `
		INSERT INTO job_descriptions (
			id, user_id, title, company, text,
			extracted_keywords, created_at
		) VALUES (
			:id, :user_id, :title, :company, :text,
			:extracted_keywords, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return jobdesc.ErrInvalidJobDescription().
					WithCause(err).
					WithDetail("job_description_id", jd.ID.String())
			}
		}
		return fmt.Errorf("failed to create job description: %w", err)
	}

	return nil
}

// GetByID retrieves a job description by ID
func (r *PostgresJobDescriptionRepository) GetByID(ctx context.Context, id kernel.JobDescriptionID) (*jobdesc.JobDescription, error) {
	query := `
		SELECT
			id, user_id, title, company, text,
			extracted_keywords, created_at
		FROM job_descriptions
		WHERE id = $1
	`

	var model jobDescriptionModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, jobdesc.ErrJobDescriptionNotFound().WithDetail("job_description_id", id.String())
		}
		return nil, fmt.Errorf("failed to get job description by id: %w", err)
	}

	return model.toEntity(), nil
}

// ListByUserID retrieves a user's job descriptions, newest first
func (r *PostgresJobDescriptionRepository) ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[jobdesc.JobDescription], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM job_descriptions WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(userID)); err != nil {
		return nil, fmt.Errorf("failed to count job descriptions: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT
			id, user_id, title, company, text,
			extracted_keywords, created_at
		FROM job_descriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []jobDescriptionModel
	err := r.db.SelectContext(ctx, &models, query, string(userID), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	entities := make([]jobdesc.JobDescription, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[jobdesc.JobDescription]{
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

// Delete deletes a job description
func (r *PostgresJobDescriptionRepository) Delete(ctx context.Context, id kernel.JobDescriptionID) error {
	query := `DELETE FROM job_descriptions WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job description: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return jobdesc.ErrJobDescriptionNotFound().WithDetail("job_description_id", id.String())
	}

	return nil
}
