package templatesrv

import (
	"context"
	"errors"
	"testing"

	"github.com/resumeforge/resumeforge/builder/template"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTemplateRepo is an in-memory template.Repository
type fakeTemplateRepo struct {
	templates map[kernel.TemplateID]*template.Template
	createErr error
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[kernel.TemplateID]*template.Template)}
}

func (f *fakeTemplateRepo) Create(_ context.Context, t *template.Template) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *t
	f.templates[t.ID] = &stored
	return nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id kernel.TemplateID) (*template.Template, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, template.ErrTemplateNotFound().WithDetail("template_id", id.String())
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTemplateRepo) ListActive(_ context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[template.Template], error) {
	items := make([]template.Template, 0)
	for _, t := range f.templates {
		if t.Active {
			items = append(items, *t)
		}
	}
	return &kernel.Paginated[template.Template]{
		Items: items,
		Page:  kernel.Page{Number: pagination.Page, Size: pagination.PageSize, Total: len(items), Pages: 1},
		Empty: len(items) == 0,
	}, nil
}

func (f *fakeTemplateRepo) ListCategories(_ context.Context) ([]string, error) {
	return []string{"modern", "technical"}, nil
}

func (f *fakeTemplateRepo) SetActive(_ context.Context, id kernel.TemplateID, active bool) error {
	t, ok := f.templates[id]
	if !ok {
		return template.ErrTemplateNotFound().WithDetail("template_id", id.String())
	}
	t.Active = active
	return nil
}

// fakeBlobStore is an in-memory fsx.FileSystem
type fakeBlobStore struct {
	objects map[string][]byte
	readErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (f *fakeBlobStore) Read(_ context.Context, key string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeBlobStore) Write(_ context.Context, key string, data []byte, _ string) error {
	f.objects[key] = data
	return nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeBlobStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

func TestCreateTemplateStoresSource(t *testing.T) {
	repo := newFakeTemplateRepo()
	blobs := newFakeBlobStore()
	svc := NewTemplateService(repo, blobs)

	resp, err := svc.CreateTemplate(context.Background(), template.CreateTemplateRequest{
		Name:       "Modern",
		TexContent: `\documentclass{article}`,
		Categories: []string{"modern"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Active)

	content, err := svc.GetTemplateContent(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, `\documentclass{article}`, content.TexContent)
}

func TestCreateTemplateValidation(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo(), newFakeBlobStore())

	_, err := svc.CreateTemplate(context.Background(), template.CreateTemplateRequest{Name: "No Source"})
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, errx.TypeValidation, e.Type)
}

func TestCreateTemplateCleansUpBlobOnRepoFailure(t *testing.T) {
	repo := newFakeTemplateRepo()
	repo.createErr = errors.New("insert failed")
	blobs := newFakeBlobStore()
	svc := NewTemplateService(repo, blobs)

	_, err := svc.CreateTemplate(context.Background(), template.CreateTemplateRequest{
		Name:       "Doomed",
		TexContent: "content",
	})
	require.Error(t, err)
	assert.Empty(t, blobs.objects)
}

func TestGetTemplateContentUnavailable(t *testing.T) {
	repo := newFakeTemplateRepo()
	blobs := newFakeBlobStore()
	svc := NewTemplateService(repo, blobs)

	resp, err := svc.CreateTemplate(context.Background(), template.CreateTemplateRequest{
		Name:       "Modern",
		TexContent: "content",
	})
	require.NoError(t, err)

	blobs.readErr = errors.New("connection reset")

	_, err = svc.GetTemplateContent(context.Background(), resp.ID)
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, template.CodeContentUnavailable.Code, e.Code)
}

func TestDeactivateTemplateHidesFromListing(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := NewTemplateService(repo, newFakeBlobStore())

	resp, err := svc.CreateTemplate(context.Background(), template.CreateTemplateRequest{
		Name:       "Retired",
		TexContent: "content",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateTemplate(context.Background(), resp.ID))

	page, err := svc.ListActiveTemplates(context.Background(), kernel.PaginationOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.True(t, page.Empty)
}
