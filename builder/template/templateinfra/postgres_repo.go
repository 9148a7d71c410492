package templateinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/resumeforge/resumeforge/builder/template"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// PostgresTemplateRepository implements template.Repository using PostgreSQL
type PostgresTemplateRepository struct {
	db *sqlx.DB
}

// NewPostgresTemplateRepository creates a new PostgreSQL template repository
func NewPostgresTemplateRepository(db *sqlx.DB) *PostgresTemplateRepository {
	return &PostgresTemplateRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type templateModel struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	Description      sql.NullString `db:"description"`
	PreviewURL       sql.NullString `db:"preview_url"`
	TexBlobPath      string         `db:"tex_blob_path"`
	Categories       pq.StringArray `db:"categories"`
	ATSScoreEstimate sql.NullInt64  `db:"ats_score_estimate"`
	Active           bool           `db:"active"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (m *templateModel) toEntity() *template.Template {
	entity := &template.Template{
		ID:          kernel.TemplateID(m.ID),
		Name:        m.Name,
		TexBlobPath: kernel.BlobPath(m.TexBlobPath),
		Categories:  []string(m.Categories),
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if m.Description.Valid {
		entity.Description = m.Description.String
	}
	if m.PreviewURL.Valid {
		entity.PreviewURL = m.PreviewURL.String
	}
	if m.ATSScoreEstimate.Valid {
		estimate := int(m.ATSScoreEstimate.Int64)
		entity.ATSScoreEstimate = &estimate
	}

	return entity
}

func fromEntity(t *template.Template) *templateModel {
	model := &templateModel{
		ID:          string(t.ID),
		Name:        t.Name,
		TexBlobPath: string(t.TexBlobPath),
		Categories:  pq.StringArray(t.Categories),
		Active:      t.Active,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.Description != "" {
		model.Description = sql.NullString{String: t.Description, Valid: true}
	}
	if t.PreviewURL != "" {
		model.PreviewURL = sql.NullString{String: t.PreviewURL, Valid: true}
	}
	if t.ATSScoreEstimate != nil {
		model.ATSScoreEstimate = sql.NullInt64{Int64: int64(*t.ATSScoreEstimate), Valid: true}
	}

	return model
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create registers a new template
func (r *PostgresTemplateRepository) Create(ctx context.Context, entity *template.Template) error {
	model := fromEntity(entity)

	query := `
		INSERT INTO templates (
			id, name, description, preview_url, tex_blob_path,
			categories, ats_score_estimate, active, created_at, updated_at
		) VALUES (
			:id, :name, :description, :preview_url, :tex_blob_path,
			:categories, :ats_score_estimate, :active, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return template.ErrInvalidTemplateData().
					WithCause(err).
					WithDetail("template_id", entity.ID.String())
			}
		}
		return fmt.Errorf("failed to create template: %w", err)
	}

	return nil
}

// GetByID retrieves a template by ID
func (r *PostgresTemplateRepository) GetByID(ctx context.Context, id kernel.TemplateID) (*template.Template, error) {
	query := `
		SELECT
			id, name, description, preview_url, tex_blob_path,
			categories, ats_score_estimate, active, created_at, updated_at
		FROM templates
		WHERE id = $1
	`

	var model templateModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, template.ErrTemplateNotFound().WithDetail("template_id", id.String())
		}
		return nil, fmt.Errorf("failed to get template by id: %w", err)
	}

	return model.toEntity(), nil
}

// ListActive retrieves active templates, newest first
func (r *PostgresTemplateRepository) ListActive(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[template.Template], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM templates WHERE active = TRUE`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count templates: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT
			id, name, description, preview_url, tex_blob_path,
			categories, ats_score_estimate, active, created_at, updated_at
		FROM templates
		WHERE active = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []templateModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	entities := make([]template.Template, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[template.Template]{
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

// ListCategories retrieves the distinct categories across all templates
func (r *PostgresTemplateRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT unnest(categories) AS category
		FROM templates
		WHERE categories IS NOT NULL
		ORDER BY category
	`

	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list template categories: %w", err)
	}

	return categories, nil
}

// SetActive toggles a template's availability
func (r *PostgresTemplateRepository) SetActive(ctx context.Context, id kernel.TemplateID, active bool) error {
	query := `UPDATE templates SET active = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, active, time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to set template active flag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return template.ErrTemplateNotFound().WithDetail("template_id", id.String())
	}

	return nil
}
