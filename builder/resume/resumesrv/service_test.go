package resumesrv

import (
	"context"
	"testing"
	"time"

	"github.com/resumeforge/resumeforge/builder/resume"
	"github.com/resumeforge/resumeforge/builder/template"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResumeRepo is an in-memory resume.Repository
type fakeResumeRepo struct {
	resumes map[kernel.ResumeID]*resume.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: make(map[kernel.ResumeID]*resume.Resume)}
}

func (f *fakeResumeRepo) Create(_ context.Context, r *resume.Resume) error {
	stored := *r
	f.resumes[r.ID] = &stored
	return nil
}

func (f *fakeResumeRepo) Update(_ context.Context, id kernel.ResumeID, r *resume.Resume) error {
	if _, ok := f.resumes[id]; !ok {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id.String())
	}
	stored := *r
	f.resumes[id] = &stored
	return nil
}

func (f *fakeResumeRepo) GetByID(_ context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	r, ok := f.resumes[id]
	if !ok {
		return nil, resume.ErrResumeNotFound().WithDetail("resume_id", id.String())
	}
	copied := *r
	return &copied, nil
}

func (f *fakeResumeRepo) ListByUserID(_ context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	items := make([]resume.Resume, 0)
	for _, r := range f.resumes {
		if r.UserID == userID {
			items = append(items, *r)
		}
	}
	return &kernel.Paginated[resume.Resume]{
		Items: items,
		Page:  kernel.Page{Number: pagination.Page, Size: pagination.PageSize, Total: len(items), Pages: 1},
		Empty: len(items) == 0,
	}, nil
}

func (f *fakeResumeRepo) Delete(_ context.Context, id kernel.ResumeID) error {
	if _, ok := f.resumes[id]; !ok {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id.String())
	}
	delete(f.resumes, id)
	return nil
}

func (f *fakeResumeRepo) CountByUserID(_ context.Context, userID kernel.UserID) (int64, error) {
	var count int64
	for _, r := range f.resumes {
		if r.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeTemplateRepo knows a fixed set of template IDs
type fakeTemplateRepo struct {
	known map[kernel.TemplateID]*template.Template
}

func newFakeTemplateRepo(ids ...kernel.TemplateID) *fakeTemplateRepo {
	known := make(map[kernel.TemplateID]*template.Template, len(ids))
	for _, id := range ids {
		known[id] = &template.Template{
			ID:        id,
			Name:      "Test Template",
			Active:    true,
			CreatedAt: time.Now(),
		}
	}
	return &fakeTemplateRepo{known: known}
}

func (f *fakeTemplateRepo) Create(_ context.Context, t *template.Template) error {
	f.known[t.ID] = t
	return nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id kernel.TemplateID) (*template.Template, error) {
	t, ok := f.known[id]
	if !ok {
		return nil, template.ErrTemplateNotFound().WithDetail("template_id", id.String())
	}
	return t, nil
}

func (f *fakeTemplateRepo) ListActive(_ context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[template.Template], error) {
	items := make([]template.Template, 0, len(f.known))
	for _, t := range f.known {
		items = append(items, *t)
	}
	return &kernel.Paginated[template.Template]{
		Items: items,
		Page:  kernel.Page{Number: pagination.Page, Size: pagination.PageSize, Total: len(items), Pages: 1},
		Empty: len(items) == 0,
	}, nil
}

func (f *fakeTemplateRepo) ListCategories(_ context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeTemplateRepo) SetActive(_ context.Context, id kernel.TemplateID, active bool) error {
	t, ok := f.known[id]
	if !ok {
		return template.ErrTemplateNotFound().WithDetail("template_id", id.String())
	}
	t.Active = active
	return nil
}

const testTemplateID = kernel.TemplateID("tpl-1")

func newTestService() (*ResumeService, *fakeResumeRepo) {
	repo := newFakeResumeRepo()
	svc := NewResumeService(repo, newFakeTemplateRepo(testTemplateID))
	return svc, repo
}

func TestCreateResume(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.CreateResume(context.Background(), resume.CreateResumeRequest{
		UserID:     kernel.NewUserID("user-1"),
		TemplateID: testTemplateID,
		Title:      "Backend Resume",
		TexContent: `\documentclass{article}`,
	})
	require.NoError(t, err)
	assert.False(t, resp.ID.IsEmpty())
	assert.Equal(t, kernel.ResumeTitle("Backend Resume"), resp.Title)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, stored.ID)
}

func TestCreateResumeRejectsUnknownTemplate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateResume(context.Background(), resume.CreateResumeRequest{
		UserID:     kernel.NewUserID("user-1"),
		TemplateID: kernel.NewTemplateID("missing"),
		Title:      "Resume",
		TexContent: "content",
	})
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, resume.CodeUnknownTemplate.Code, e.Code)
}

func TestGetResumeEnforcesOwnership(t *testing.T) {
	svc, _ := newTestService()

	owner := kernel.NewUserID("owner")
	resp, err := svc.CreateResume(context.Background(), resume.CreateResumeRequest{
		UserID:     owner,
		TemplateID: testTemplateID,
		Title:      "Mine",
		TexContent: "content",
	})
	require.NoError(t, err)

	_, err = svc.GetResumeByID(context.Background(), resp.ID, owner)
	assert.NoError(t, err)

	_, err = svc.GetResumeByID(context.Background(), resp.ID, kernel.NewUserID("intruder"))
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, errx.TypeAuthorization, e.Type)
}

func TestUpdateResumePartialFields(t *testing.T) {
	svc, _ := newTestService()

	owner := kernel.NewUserID("owner")
	created, err := svc.CreateResume(context.Background(), resume.CreateResumeRequest{
		UserID:     owner,
		TemplateID: testTemplateID,
		Title:      "Original",
		TexContent: "original content",
	})
	require.NoError(t, err)

	newTitle := kernel.ResumeTitle("Updated")
	updated, err := svc.UpdateResume(context.Background(), created.ID, resume.UpdateResumeRequest{
		Title: &newTitle,
	}, owner)
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, kernel.TexContent("original content"), updated.TexContent)
}

func TestDeleteResumeEnforcesOwnership(t *testing.T) {
	svc, repo := newTestService()

	owner := kernel.NewUserID("owner")
	created, err := svc.CreateResume(context.Background(), resume.CreateResumeRequest{
		UserID:     owner,
		TemplateID: testTemplateID,
		Title:      "Doomed",
		TexContent: "content",
	})
	require.NoError(t, err)

	err = svc.DeleteResume(context.Background(), created.ID, kernel.NewUserID("intruder"))
	require.Error(t, err)

	require.NoError(t, svc.DeleteResume(context.Background(), created.ID, owner))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.Error(t, err)
}
