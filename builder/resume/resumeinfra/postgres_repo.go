package resumeinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/resumeforge/resumeforge/builder/resume"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// PostgresResumeRepository implements resume.Repository using PostgreSQL
type PostgresResumeRepository struct {
	db *sqlx.DB
}

// NewPostgresResumeRepository creates a new PostgreSQL resume repository
func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type resumeModel struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	TemplateID string          `db:"template_id"`
	Title      string          `db:"title"`
	TexContent string          `db:"tex_content"`
	PDFPath    sql.NullString  `db:"pdf_path"`
	Metadata   json.RawMessage `db:"metadata"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func (m *resumeModel) toEntity() (*resume.Resume, error) {
	var metadata map[string]any
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume metadata: %w", err)
		}
	}

	entity := &resume.Resume{
		ID:         kernel.ResumeID(m.ID),
		UserID:     kernel.UserID(m.UserID),
		TemplateID: kernel.TemplateID(m.TemplateID),
		Title:      kernel.ResumeTitle(m.Title),
		TexContent: kernel.TexContent(m.TexContent),
		Metadata:   metadata,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	if m.PDFPath.Valid {
		entity.PDFPath = kernel.BlobPath(m.PDFPath.String)
	}

	return entity, nil
}

func fromEntity(r *resume.Resume) (*resumeModel, error) {
	metadata, err := json.Marshal(r.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume metadata: %w", err)
	}

	model := &resumeModel{
		ID:         string(r.ID),
		UserID:     string(r.UserID),
		TemplateID: string(r.TemplateID),
		Title:      string(r.Title),
		TexContent: string(r.TexContent),
		Metadata:   metadata,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	if r.PDFPath != "" {
		model.PDFPath = sql.NullString{String: string(r.PDFPath), Valid: true}
	}

	return model, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create persists a new resume
func (r *PostgresResumeRepository) Create(ctx context.Context, entity *resume.Resume) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO resumes (
			id, user_id, template_id, title, tex_content,
			pdf_path, metadata, created_at, updated_at
		) VALUES (
			:id, :user_id, :template_id, :title, :tex_content,
			:pdf_path, :metadata, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				return resume.ErrInvalidResumeData().
					WithCause(err).
					WithDetail("resume_id", entity.ID.String())
			case "23503": // foreign_key_violation
				return resume.ErrUnknownTemplate().
					WithCause(err).
					WithDetail("template_id", entity.TemplateID.String())
			}
		}
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// Update updates an existing resume
func (r *PostgresResumeRepository) Update(ctx context.Context, id kernel.ResumeID, entity *resume.Resume) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE resumes SET
			title = :title,
			tex_content = :tex_content,
			pdf_path = :pdf_path,
			metadata = :metadata,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id.String())
	}

	return nil
}

// GetByID retrieves a resume by ID
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	query := `
		SELECT
			id, user_id, template_id, title, tex_content,
			pdf_path, metadata, created_at, updated_at
		FROM resumes
		WHERE id = $1
	`

	var model resumeModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, resume.ErrResumeNotFound().WithDetail("resume_id", id.String())
		}
		return nil, fmt.Errorf("failed to get resume by id: %w", err)
	}

	return model.toEntity()
}

// ListByUserID retrieves a user's resumes, newest first
func (r *PostgresResumeRepository) ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM resumes WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(userID)); err != nil {
		return nil, fmt.Errorf("failed to count resumes: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT
			id, user_id, template_id, title, tex_content,
			pdf_path, metadata, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []resumeModel
	err := r.db.SelectContext(ctx, &models, query, string(userID), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	entities := make([]resume.Resume, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &kernel.Paginated[resume.Resume]{
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

// Delete deletes a resume
func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	query := `DELETE FROM resumes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id.String())
	}

	return nil
}

// CountByUserID counts resumes owned by a user
func (r *PostgresResumeRepository) CountByUserID(ctx context.Context, userID kernel.UserID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM resumes WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &count, query, string(userID)); err != nil {
		return 0, fmt.Errorf("failed to count resumes by user: %w", err)
	}

	return count, nil
}
