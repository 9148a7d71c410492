package rewritesrv

import (
	"context"

	"github.com/resumeforge/resumeforge/builder/rewrite"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/resumeforge/resumeforge/pkg/logx"
)

const defaultProviderName = "gemini"

// RewriteService orchestrates AI resume rewriting across providers
type RewriteService struct {
	providers map[string]rewrite.Provider
	catalog   rewrite.ModelCatalog
}

// NewRewriteService creates a new rewrite service over the given providers
func NewRewriteService(catalog rewrite.ModelCatalog, providers ...rewrite.Provider) *RewriteService {
	byName := make(map[string]rewrite.Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &RewriteService{
		providers: byName,
		catalog:   catalog,
	}
}

// Rewrite rephrases a resume section to better match a job description
func (s *RewriteService) Rewrite(ctx context.Context, req rewrite.RewriteRequest) (*rewrite.RewriteResponse, error) {
	if req.Text == "" || req.JobDescription == "" {
		return nil, rewrite.ErrInvalidRequest()
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = defaultProviderName
	}

	provider, ok := s.providers[providerName]
	if !ok {
		return nil, rewrite.ErrUnknownProvider().WithDetail("provider", providerName)
	}

	model := req.Model
	if model == "" {
		model = provider.DefaultModel()
	}

	rewritten, err := provider.Rewrite(ctx, req.Text, req.JobDescription, model)
	if err != nil {
		logx.Errorf("rewrite via %s failed: %v", providerName, err)
		return nil, rewrite.ErrProviderFailed().
			WithCause(err).
			WithDetail("provider", providerName).
			WithDetail("model", model)
	}

	return &rewrite.RewriteResponse{
		RewrittenText: rewritten,
		Provider:      providerName,
		Model:         model,
		// Rough estimate until providers report usage
		TokensUsed: len(rewritten),
	}, nil
}

// AvailableModels lists the models a user's plan grants access to
func (s *RewriteService) AvailableModels(ctx context.Context, userID kernel.UserID) (*rewrite.ModelsResponse, error) {
	models, err := s.catalog.AvailableModels(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list available models", errx.TypeInternal)
	}

	return &rewrite.ModelsResponse{Models: models}, nil
}
