package rewriteinfra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiDefaultModel = "gemini-pro"

const geminiPromptTemplate = `Rewrite the following resume section to better match the job description.
IMPORTANT: Do not invent facts or add information not present in the original text.
Only rephrase and reorganize existing information to better align with the job requirements.

Original text: %s

Job description: %s

Rewritten text:`

// GeminiProvider rewrites resume sections using the Google Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini rewrite provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

// Name returns the provider identifier
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// DefaultModel returns the model used when the request names none
func (p *GeminiProvider) DefaultModel() string {
	return geminiDefaultModel
}

// Rewrite rephrases text to better match the job description
func (p *GeminiProvider) Rewrite(ctx context.Context, text, jobDescription, model string) (string, error) {
	if model == "" {
		model = geminiDefaultModel
	}

	prompt := fmt.Sprintf(geminiPromptTemplate, text, jobDescription)

	resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}
