package catalogsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resumeforge/resumeforge/builder/catalog"
	"github.com/resumeforge/resumeforge/builder/rewrite"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/resumeforge/resumeforge/pkg/logx"
)

// CatalogService administers AI providers, models and subscription plans
type CatalogService struct {
	providerRepo catalog.ProviderRepository
	modelRepo    catalog.ModelRepository
	planRepo     catalog.PlanRepository
	planResolver catalog.UserPlanResolver
}

// NewCatalogService creates a new instance of the catalog service
func NewCatalogService(
	providerRepo catalog.ProviderRepository,
	modelRepo catalog.ModelRepository,
	planRepo catalog.PlanRepository,
	planResolver catalog.UserPlanResolver,
) *CatalogService {
	return &CatalogService{
		providerRepo: providerRepo,
		modelRepo:    modelRepo,
		planRepo:     planRepo,
		planResolver: planResolver,
	}
}

// CreateProvider registers a new AI provider
func (s *CatalogService) CreateProvider(ctx context.Context, req catalog.CreateProviderRequest) (*catalog.Provider, error) {
	if req.Name == "" || req.Type == "" {
		return nil, catalog.ErrInvalidCatalogData().WithDetail("message", "name and type are required")
	}

	newProvider := &catalog.Provider{
		ID:         kernel.NewProviderID(uuid.NewString()),
		Name:       req.Name,
		Type:       req.Type,
		BaseURL:    req.BaseURL,
		AuthConfig: req.AuthConfig,
		Enabled:    true,
		CreatedAt:  time.Now(),
	}

	if err := s.providerRepo.Create(ctx, newProvider); err != nil {
		return nil, errx.Wrap(err, "failed to create provider", errx.TypeInternal)
	}

	return newProvider, nil
}

// ListProviders retrieves all registered providers
func (s *CatalogService) ListProviders(ctx context.Context) (*catalog.ProvidersResponse, error) {
	providers, err := s.providerRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list providers", errx.TypeInternal)
	}

	return &catalog.ProvidersResponse{Providers: providers}, nil
}

// CreateModel registers a new AI model under an existing provider
func (s *CatalogService) CreateModel(ctx context.Context, req catalog.CreateModelRequest) (*catalog.Model, error) {
	if req.ProviderID.IsEmpty() || req.ModelName == "" || req.DisplayName == "" || req.TierAllowed == "" {
		return nil, catalog.ErrInvalidCatalogData().WithDetail("message", "provider_id, model_name, display_name and tier_allowed are required")
	}

	if _, err := s.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		return nil, catalog.ErrProviderNotFound().WithDetail("provider_id", req.ProviderID.String())
	}

	newModel := &catalog.Model{
		ID:           kernel.NewModelID(uuid.NewString()),
		ProviderID:   req.ProviderID,
		ModelName:    req.ModelName,
		DisplayName:  req.DisplayName,
		CostPerToken: req.CostPerToken,
		TierAllowed:  req.TierAllowed,
		Enabled:      true,
		CreatedAt:    time.Now(),
	}

	if err := s.modelRepo.Create(ctx, newModel); err != nil {
		return nil, errx.Wrap(err, "failed to create model", errx.TypeInternal)
	}

	return newModel, nil
}

// ListModels retrieves all registered models with provider info
func (s *CatalogService) ListModels(ctx context.Context) (*catalog.ModelsResponse, error) {
	models, err := s.modelRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list models", errx.TypeInternal)
	}

	return &catalog.ModelsResponse{Models: models}, nil
}

// ListPlans retrieves all subscription plans, cheapest first
func (s *CatalogService) ListPlans(ctx context.Context) (*catalog.PlansResponse, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list plans", errx.TypeInternal)
	}

	return &catalog.PlansResponse{Plans: plans}, nil
}

// UpdatePlanProviders replaces the providers a plan may use
func (s *CatalogService) UpdatePlanProviders(ctx context.Context, planID kernel.PlanID, req catalog.UpdatePlanModelsRequest) (*catalog.Plan, error) {
	if req.AllowedProviderIDs == nil {
		return nil, catalog.ErrInvalidCatalogData().WithDetail("message", "allowed_provider_ids is required")
	}

	plan, err := s.planRepo.UpdateAllowedProviders(ctx, planID, req.AllowedProviderIDs)
	if err != nil {
		if _, ok := err.(*errx.Error); ok {
			return nil, err
		}
		return nil, errx.Wrap(err, "failed to update plan providers", errx.TypeInternal)
	}

	return plan, nil
}

// AvailableModels lists the enabled models a user's plan tier grants access to
func (s *CatalogService) AvailableModels(ctx context.Context, userID kernel.UserID) ([]rewrite.AvailableModel, error) {
	tier := catalog.TierFree
	if s.planResolver != nil {
		resolved, err := s.planResolver.ResolvePlanTier(ctx, userID)
		if err != nil {
			logx.Warnf("plan tier lookup failed for user %s, falling back to free: %v", userID.String(), err)
		} else if resolved != "" {
			tier = resolved
		}
	}

	models, err := s.modelRepo.ListEnabled(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list enabled models", errx.TypeInternal)
	}

	available := make([]rewrite.AvailableModel, 0, len(models))
	for _, m := range models {
		if !catalog.TierAllows(tier, m.TierAllowed) {
			continue
		}
		available = append(available, rewrite.AvailableModel{
			Provider: m.ProviderType,
			Model:    m.ModelName,
			Name:     m.DisplayName,
			Tier:     m.TierAllowed,
		})
	}

	return available, nil
}
