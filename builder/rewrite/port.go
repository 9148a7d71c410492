package rewrite

import (
	"context"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Provider generates a rewritten resume section from an upstream AI service
type Provider interface {
	// Name returns the provider identifier used in requests ("gemini", "openai")
	Name() string

	// DefaultModel returns the model used when the request names none
	DefaultModel() string

	// Rewrite rephrases text to better match the job description without
	// inventing facts not present in the original
	Rewrite(ctx context.Context, text, jobDescription, model string) (string, error)
}

// ModelCatalog resolves which models a user's plan grants access to
type ModelCatalog interface {
	AvailableModels(ctx context.Context, userID kernel.UserID) ([]AvailableModel, error)
}
