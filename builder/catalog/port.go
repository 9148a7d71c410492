package catalog

import (
	"context"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

type ProviderRepository interface {
	// Create registers a new provider
	Create(ctx context.Context, provider *Provider) error

	// GetByID retrieves a provider by ID
	GetByID(ctx context.Context, id kernel.ProviderID) (*Provider, error)

	// List retrieves all providers, newest first
	List(ctx context.Context) ([]Provider, error)
}

type ModelRepository interface {
	// Create registers a new model
	Create(ctx context.Context, model *Model) error

	// List retrieves all models with provider info, newest first
	List(ctx context.Context) ([]ModelWithProvider, error)

	// ListEnabled retrieves enabled models of enabled providers
	ListEnabled(ctx context.Context) ([]ModelWithProvider, error)
}

type PlanRepository interface {
	// List retrieves all plans, cheapest first
	List(ctx context.Context) ([]Plan, error)

	// GetByID retrieves a plan by ID
	GetByID(ctx context.Context, id kernel.PlanID) (*Plan, error)

	// UpdateAllowedProviders replaces the providers a plan may use
	UpdateAllowedProviders(ctx context.Context, id kernel.PlanID, providerIDs []string) (*Plan, error)
}

// UserPlanResolver resolves the subscription tier a user is on
type UserPlanResolver interface {
	ResolvePlanTier(ctx context.Context, userID kernel.UserID) (string, error)
}
