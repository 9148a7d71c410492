package catalog

import "github.com/resumeforge/resumeforge/pkg/kernel"

// CreateProviderRequest - DTO for registering a new AI provider
type CreateProviderRequest struct {
	Name       string         `json:"name" validate:"required"`
	Type       string         `json:"type" validate:"required"`
	BaseURL    string         `json:"base_url,omitempty"`
	AuthConfig map[string]any `json:"auth_config,omitempty"`
}

// CreateModelRequest - DTO for registering a new AI model
type CreateModelRequest struct {
	ProviderID   kernel.ProviderID `json:"provider_id" validate:"required"`
	ModelName    string            `json:"model_name" validate:"required"`
	DisplayName  string            `json:"display_name" validate:"required"`
	CostPerToken float64           `json:"cost_per_token"`
	TierAllowed  string            `json:"tier_allowed" validate:"required"`
}

// UpdatePlanModelsRequest - DTO for changing which providers a plan may use
type UpdatePlanModelsRequest struct {
	AllowedProviderIDs []string `json:"allowed_provider_ids" validate:"required"`
}

// ProvidersResponse - DTO listing registered providers
type ProvidersResponse struct {
	Providers []Provider `json:"providers"`
}

// ModelsResponse - DTO listing registered models with provider info
type ModelsResponse struct {
	Models []ModelWithProvider `json:"models"`
}

// PlansResponse - DTO listing subscription plans
type PlansResponse struct {
	Plans []Plan `json:"plans"`
}
