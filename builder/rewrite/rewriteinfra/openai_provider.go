package rewriteinfra

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	openaiDefaultModel = "gpt-3.5-turbo"

	openaiSystemPrompt = "You are a professional resume writer. Rewrite resume content to better match job descriptions without inventing facts."
)

// OpenAIProvider rewrites resume sections using OpenAI chat completions
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI rewrite provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIProvider{
		client: &client,
	}
}

// Name returns the provider identifier
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// DefaultModel returns the model used when the request names none
func (p *OpenAIProvider) DefaultModel() string {
	return openaiDefaultModel
}

// Rewrite rephrases text to better match the job description
func (p *OpenAIProvider) Rewrite(ctx context.Context, text, jobDescription, model string) (string, error) {
	if model == "" {
		model = openaiDefaultModel
	}

	userPrompt := fmt.Sprintf("Rewrite this resume section: %q to better match this job: %q", text, jobDescription)

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openaiSystemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       model,
		MaxTokens:   openai.Int(500),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	return completion.Choices[0].Message.Content, nil
}
