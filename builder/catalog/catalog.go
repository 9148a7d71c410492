package catalog

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Provider tiers, ordered from least to most privileged
const (
	TierFree       = "free"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// Provider is an upstream AI provider registered by an administrator
type Provider struct {
	ID         kernel.ProviderID `db:"id" json:"id"`
	Name       string            `db:"name" json:"name"`
	Type       string            `db:"type" json:"type"`
	BaseURL    string            `db:"base_url" json:"base_url,omitempty"`
	AuthConfig map[string]any    `db:"auth_config" json:"auth_config,omitempty"`
	Enabled    bool              `db:"enabled" json:"enabled"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
}

// Model is a concrete AI model offered through a provider
type Model struct {
	ID           kernel.ModelID    `db:"id" json:"id"`
	ProviderID   kernel.ProviderID `db:"provider_id" json:"provider_id"`
	ModelName    string            `db:"model_name" json:"model_name"`
	DisplayName  string            `db:"display_name" json:"display_name"`
	CostPerToken float64           `db:"cost_per_token" json:"cost_per_token"`
	TierAllowed  string            `db:"tier_allowed" json:"tier_allowed"`
	Enabled      bool              `db:"enabled" json:"enabled"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
}

// ModelWithProvider is a model joined with its provider's identity
type ModelWithProvider struct {
	Model
	ProviderName string `db:"provider_name" json:"provider_name"`
	ProviderType string `db:"provider_type" json:"provider_type"`
}

// Plan is a subscription plan gating provider and model access
type Plan struct {
	ID                 kernel.PlanID  `db:"id" json:"id"`
	Name               string         `db:"name" json:"name"`
	Price              float64        `db:"price" json:"price"`
	Features           []string       `db:"features" json:"features"`
	AllowedProviderIDs []string       `db:"allowed_provider_ids" json:"allowed_provider_ids"`
	UsageLimits        map[string]int `db:"usage_limits" json:"usage_limits"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
}

// TierAllows reports whether a user on userTier may use a model gated at modelTier
func TierAllows(userTier, modelTier string) bool {
	rank := map[string]int{
		TierFree:       0,
		TierPro:        1,
		TierEnterprise: 2,
	}

	userRank, ok := rank[userTier]
	if !ok {
		userRank = 0
	}
	modelRank, ok := rank[modelTier]
	if !ok {
		return false
	}

	return userRank >= modelRank
}
