package cataloginfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/resumeforge/resumeforge/builder/catalog"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// ============================================================================
// Provider Repository
// ============================================================================

// PostgresProviderRepository implements catalog.ProviderRepository using PostgreSQL
type PostgresProviderRepository struct {
	db *sqlx.DB
}

// NewPostgresProviderRepository creates a new PostgreSQL provider repository
func NewPostgresProviderRepository(db *sqlx.DB) *PostgresProviderRepository {
	return &PostgresProviderRepository{db: db}
}

type providerModel struct {
	ID         string          `db:"id"`
	Name       string          `db:"name"`
	Type       string          `db:"type"`
	BaseURL    sql.NullString  `db:"base_url"`
	AuthConfig json.RawMessage `db:"auth_config"`
	Enabled    bool            `db:"enabled"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (m *providerModel) toEntity() (*catalog.Provider, error) {
	var authConfig map[string]any
	if len(m.AuthConfig) > 0 {
		if err := json.Unmarshal(m.AuthConfig, &authConfig); err != nil {
			return nil, fmt.Errorf("failed to unmarshal provider auth_config: %w", err)
		}
	}

	entity := &catalog.Provider{
		ID:         kernel.ProviderID(m.ID),
		Name:       m.Name,
		Type:       m.Type,
		AuthConfig: authConfig,
		Enabled:    m.Enabled,
		CreatedAt:  m.CreatedAt,
	}

	if m.BaseURL.Valid {
		entity.BaseURL = m.BaseURL.String
	}

	return entity, nil
}

func providerFromEntity(p *catalog.Provider) (*providerModel, error) {
	authConfig, err := json.Marshal(p.AuthConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider auth_config: %w", err)
	}

	model := &providerModel{
		ID:         string(p.ID),
		Name:       p.Name,
		Type:       p.Type,
		AuthConfig: authConfig,
		Enabled:    p.Enabled,
		CreatedAt:  p.CreatedAt,
	}

	if p.BaseURL != "" {
		model.BaseURL = sql.NullString{String: p.BaseURL, Valid: true}
	}

	return model, nil
}

// Create registers a new provider
func (r *PostgresProviderRepository) Create(ctx context.Context, provider *catalog.Provider) error {
	model, err := providerFromEntity(provider)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO providers (
			id, name, type, base_url, auth_config, enabled, created_at
		) VALUES (
			:id, :name, :type, :base_url, :auth_config, :enabled, :created_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return catalog.ErrDuplicateEntry().
					WithCause(err).
					WithDetail("provider_name", provider.Name)
			}
		}
		return fmt.Errorf("failed to create provider: %w", err)
	}

	return nil
}

// GetByID retrieves a provider by ID
func (r *PostgresProviderRepository) GetByID(ctx context.Context, id kernel.ProviderID) (*catalog.Provider, error) {
	query := `
		SELECT id, name, type, base_url, auth_config, enabled, created_at
		FROM providers
		WHERE id = $1
	`

	var model providerModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrProviderNotFound().WithDetail("provider_id", id.String())
		}
		return nil, fmt.Errorf("failed to get provider by id: %w", err)
	}

	return model.toEntity()
}

// List retrieves all providers, newest first
func (r *PostgresProviderRepository) List(ctx context.Context) ([]catalog.Provider, error) {
	query := `
		SELECT id, name, type, base_url, auth_config, enabled, created_at
		FROM providers
		ORDER BY created_at DESC
	`

	var models []providerModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	providers := make([]catalog.Provider, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		providers = append(providers, *entity)
	}

	return providers, nil
}

// ============================================================================
// Model Repository
// ============================================================================

// PostgresModelRepository implements catalog.ModelRepository using PostgreSQL
type PostgresModelRepository struct {
	db *sqlx.DB
}

// NewPostgresModelRepository creates a new PostgreSQL model repository
func NewPostgresModelRepository(db *sqlx.DB) *PostgresModelRepository {
	return &PostgresModelRepository{db: db}
}

type modelModel struct {
	ID           string    `db:"id"`
	ProviderID   string    `db:"provider_id"`
	ModelName    string    `db:"model_name"`
	DisplayName  string    `db:"display_name"`
	CostPerToken float64   `db:"cost_per_token"`
	TierAllowed  string    `db:"tier_allowed"`
	Enabled      bool      `db:"enabled"`
	CreatedAt    time.Time `db:"created_at"`
	ProviderName string    `db:"provider_name"`
	ProviderType string    `db:"provider_type"`
}

func (m *modelModel) toEntity() catalog.ModelWithProvider {
	return catalog.ModelWithProvider{
		Model: catalog.Model{
			ID:           kernel.ModelID(m.ID),
			ProviderID:   kernel.ProviderID(m.ProviderID),
			ModelName:    m.ModelName,
			DisplayName:  m.DisplayName,
			CostPerToken: m.CostPerToken,
			TierAllowed:  m.TierAllowed,
			Enabled:      m.Enabled,
			CreatedAt:    m.CreatedAt,
		},
		ProviderName: m.ProviderName,
		ProviderType: m.ProviderType,
	}
}

// Create registers a new model
func (r *PostgresModelRepository) Create(ctx context.Context, model *catalog.Model) error {
	query := `
		INSERT INTO models (
			id, provider_id, model_name, display_name,
			cost_per_token, tier_allowed, enabled, created_at
		) VALUES (
			:id, :provider_id, :model_name, :display_name,
			:cost_per_token, :tier_allowed, :enabled, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, map[string]any{
		"id":             string(model.ID),
		"provider_id":    string(model.ProviderID),
		"model_name":     model.ModelName,
		"display_name":   model.DisplayName,
		"cost_per_token": model.CostPerToken,
		"tier_allowed":   model.TierAllowed,
		"enabled":        model.Enabled,
		"created_at":     model.CreatedAt,
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				return catalog.ErrDuplicateEntry().
					WithCause(err).
					WithDetail("model_name", model.ModelName)
			case "23503": // foreign_key_violation
				return catalog.ErrProviderNotFound().
					WithCause(err).
					WithDetail("provider_id", model.ProviderID.String())
			}
		}
		return fmt.Errorf("failed to create model: %w", err)
	}

	return nil
}

const modelSelectColumns = `
	m.id, m.provider_id, m.model_name, m.display_name,
	m.cost_per_token, m.tier_allowed, m.enabled, m.created_at,
	p.name AS provider_name, p.type AS provider_type
`

// List retrieves all models with provider info, newest first
func (r *PostgresModelRepository) List(ctx context.Context) ([]catalog.ModelWithProvider, error) {
	query := `
		SELECT ` + modelSelectColumns + `
		FROM models m
		JOIN providers p ON p.id = m.provider_id
		ORDER BY m.created_at DESC
	`

	var models []modelModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	entities := make([]catalog.ModelWithProvider, 0, len(models))
	for _, model := range models {
		entities = append(entities, model.toEntity())
	}

	return entities, nil
}

// ListEnabled retrieves enabled models of enabled providers
func (r *PostgresModelRepository) ListEnabled(ctx context.Context) ([]catalog.ModelWithProvider, error) {
	query := `
		SELECT ` + modelSelectColumns + `
		FROM models m
		JOIN providers p ON p.id = m.provider_id
		WHERE m.enabled = TRUE AND p.enabled = TRUE
		ORDER BY m.created_at DESC
	`

	var models []modelModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list enabled models: %w", err)
	}

	entities := make([]catalog.ModelWithProvider, 0, len(models))
	for _, model := range models {
		entities = append(entities, model.toEntity())
	}

	return entities, nil
}

// ============================================================================
// Plan Repository
// ============================================================================

// PostgresPlanRepository implements catalog.PlanRepository using PostgreSQL
type PostgresPlanRepository struct {
	db *sqlx.DB
}

// NewPostgresPlanRepository creates a new PostgreSQL plan repository
func NewPostgresPlanRepository(db *sqlx.DB) *PostgresPlanRepository {
	return &PostgresPlanRepository{db: db}
}

type planModel struct {
	ID                 string          `db:"id"`
	Name               string          `db:"name"`
	Price              float64         `db:"price"`
	Features           pq.StringArray  `db:"features"`
	AllowedProviderIDs pq.StringArray  `db:"allowed_provider_ids"`
	UsageLimits        json.RawMessage `db:"usage_limits"`
	CreatedAt          time.Time       `db:"created_at"`
}

func (m *planModel) toEntity() (*catalog.Plan, error) {
	var usageLimits map[string]int
	if len(m.UsageLimits) > 0 {
		if err := json.Unmarshal(m.UsageLimits, &usageLimits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan usage_limits: %w", err)
		}
	}

	return &catalog.Plan{
		ID:                 kernel.PlanID(m.ID),
		Name:               m.Name,
		Price:              m.Price,
		Features:           []string(m.Features),
		AllowedProviderIDs: []string(m.AllowedProviderIDs),
		UsageLimits:        usageLimits,
		CreatedAt:          m.CreatedAt,
	}, nil
}

// List retrieves all plans, cheapest first
func (r *PostgresPlanRepository) List(ctx context.Context) ([]catalog.Plan, error) {
	query := `
		SELECT id, name, price, features, allowed_provider_ids, usage_limits, created_at
		FROM plans
		ORDER BY price ASC
	`

	var models []planModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]catalog.Plan, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		plans = append(plans, *entity)
	}

	return plans, nil
}

// GetByID retrieves a plan by ID
func (r *PostgresPlanRepository) GetByID(ctx context.Context, id kernel.PlanID) (*catalog.Plan, error) {
	query := `
		SELECT id, name, price, features, allowed_provider_ids, usage_limits, created_at
		FROM plans
		WHERE id = $1
	`

	var model planModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrPlanNotFound().WithDetail("plan_id", id.String())
		}
		return nil, fmt.Errorf("failed to get plan by id: %w", err)
	}

	return model.toEntity()
}

// UpdateAllowedProviders replaces the providers a plan may use
func (r *PostgresPlanRepository) UpdateAllowedProviders(ctx context.Context, id kernel.PlanID, providerIDs []string) (*catalog.Plan, error) {
	query := `
		UPDATE plans
		SET allowed_provider_ids = $1
		WHERE id = $2
		RETURNING id, name, price, features, allowed_provider_ids, usage_limits, created_at
	`

	var model planModel
	err := r.db.GetContext(ctx, &model, query, pq.StringArray(providerIDs), string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrPlanNotFound().WithDetail("plan_id", id.String())
		}
		return nil, fmt.Errorf("failed to update plan providers: %w", err)
	}

	return model.toEntity()
}
