package rewritesrv

import (
	"context"
	"errors"
	"testing"

	"github.com/resumeforge/resumeforge/builder/rewrite"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a scripted rewrite.Provider
type fakeProvider struct {
	name         string
	defaultModel string
	output       string
	err          error
	lastModel    string
}

func (f *fakeProvider) Name() string         { return f.name }
func (f *fakeProvider) DefaultModel() string { return f.defaultModel }

func (f *fakeProvider) Rewrite(_ context.Context, _, _, model string) (string, error) {
	f.lastModel = model
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

// staticCatalog returns a fixed model list
type staticCatalog struct {
	models []rewrite.AvailableModel
}

func (c *staticCatalog) AvailableModels(_ context.Context, _ kernel.UserID) ([]rewrite.AvailableModel, error) {
	return c.models, nil
}

func TestRewriteUsesDefaultProviderAndModel(t *testing.T) {
	gemini := &fakeProvider{name: "gemini", defaultModel: "gemini-pro", output: "polished text"}
	svc := NewRewriteService(&staticCatalog{}, gemini)

	resp, err := svc.Rewrite(context.Background(), rewrite.RewriteRequest{
		Text:           "I did backend stuff",
		JobDescription: "Backend engineer role",
	})
	require.NoError(t, err)
	assert.Equal(t, "polished text", resp.RewrittenText)
	assert.Equal(t, "gemini", resp.Provider)
	assert.Equal(t, "gemini-pro", resp.Model)
	assert.Equal(t, len("polished text"), resp.TokensUsed)
	assert.Equal(t, "gemini-pro", gemini.lastModel)
}

func TestRewriteSelectsRequestedProvider(t *testing.T) {
	gemini := &fakeProvider{name: "gemini", defaultModel: "gemini-pro", output: "from gemini"}
	oai := &fakeProvider{name: "openai", defaultModel: "gpt-3.5-turbo", output: "from openai"}
	svc := NewRewriteService(&staticCatalog{}, gemini, oai)

	resp, err := svc.Rewrite(context.Background(), rewrite.RewriteRequest{
		Text:           "text",
		JobDescription: "job",
		Provider:       "openai",
		Model:          "gpt-4o",
	})
	require.NoError(t, err)
	assert.Equal(t, "from openai", resp.RewrittenText)
	assert.Equal(t, "gpt-4o", oai.lastModel)
}

func TestRewriteRejectsUnknownProvider(t *testing.T) {
	svc := NewRewriteService(&staticCatalog{}, &fakeProvider{name: "gemini", defaultModel: "gemini-pro"})

	_, err := svc.Rewrite(context.Background(), rewrite.RewriteRequest{
		Text:           "text",
		JobDescription: "job",
		Provider:       "mistral",
	})
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, rewrite.CodeUnknownProvider.Code, e.Code)
}

func TestRewriteValidatesInput(t *testing.T) {
	svc := NewRewriteService(&staticCatalog{}, &fakeProvider{name: "gemini", defaultModel: "gemini-pro"})

	for _, req := range []rewrite.RewriteRequest{
		{},
		{Text: "text only"},
		{JobDescription: "job only"},
	} {
		_, err := svc.Rewrite(context.Background(), req)
		require.Error(t, err)

		e, ok := err.(*errx.Error)
		require.True(t, ok)
		assert.Equal(t, errx.TypeValidation, e.Type)
	}
}

func TestRewriteWrapsProviderFailure(t *testing.T) {
	gemini := &fakeProvider{name: "gemini", defaultModel: "gemini-pro", err: errors.New("quota exceeded")}
	svc := NewRewriteService(&staticCatalog{}, gemini)

	_, err := svc.Rewrite(context.Background(), rewrite.RewriteRequest{
		Text:           "text",
		JobDescription: "job",
	})
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, rewrite.CodeProviderFailed.Code, e.Code)
	assert.Equal(t, errx.TypeExternal, e.Type)
}

func TestAvailableModels(t *testing.T) {
	cat := &staticCatalog{models: []rewrite.AvailableModel{
		{Provider: "gemini", Model: "gemini-pro", Name: "Gemini Pro", Tier: "free"},
	}}
	svc := NewRewriteService(cat)

	resp, err := svc.AvailableModels(context.Background(), kernel.NewUserID("user-1"))
	require.NoError(t, err)
	require.Len(t, resp.Models, 1)
	assert.Equal(t, "gemini-pro", resp.Models[0].Model)
}
