package atssrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/resumeforge/resumeforge/builder/ats"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportRepo is an in-memory ats.ReportRepository
type fakeReportRepo struct {
	reports   map[kernel.ReportID]*ats.ATSReport
	createErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[kernel.ReportID]*ats.ATSReport)}
}

func (f *fakeReportRepo) Create(_ context.Context, report *ats.ATSReport) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *report
	f.reports[report.ID] = &stored
	return nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id kernel.ReportID) (*ats.ATSReport, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, ats.ErrReportNotFound().WithDetail("report_id", id.String())
	}
	return report, nil
}

func (f *fakeReportRepo) ListByResumeID(_ context.Context, resumeID kernel.ResumeID, pagination kernel.PaginationOptions) (*kernel.Paginated[ats.ATSReport], error) {
	items := make([]ats.ATSReport, 0)
	for _, r := range f.reports {
		if r.ResumeID == resumeID {
			items = append(items, *r)
		}
	}
	return &kernel.Paginated[ats.ATSReport]{
		Items: items,
		Page:  kernel.Page{Number: pagination.Page, Size: pagination.PageSize, Total: len(items), Pages: 1},
		Empty: len(items) == 0,
	}, nil
}

// fakeReportCache records cache traffic
type fakeReportCache struct {
	entries map[kernel.ReportID]*ats.ATSReport
	hits    int
	sets    int
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{entries: make(map[kernel.ReportID]*ats.ATSReport)}
}

func (f *fakeReportCache) Get(_ context.Context, id kernel.ReportID) (*ats.ATSReport, error) {
	report, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	f.hits++
	return report, nil
}

func (f *fakeReportCache) Set(_ context.Context, report *ats.ATSReport, _ time.Duration) error {
	f.sets++
	stored := *report
	f.entries[report.ID] = &stored
	return nil
}

func validRequest() ats.ScoreResumeRequest {
	return ats.ScoreResumeRequest{
		ResumeID:           "resume-1",
		JobDescriptionID:   "jd-1",
		ResumeText:         "Senior software engineer with Python, Docker and Kubernetes experience",
		JobDescriptionText: "Looking for a software engineer skilled in Python, Docker, Kubernetes and Terraform",
	}
}

func TestScoreResume(t *testing.T) {
	repo := newFakeReportRepo()
	svc := NewATSService(repo, newFakeReportCache())

	resp, err := svc.ScoreResume(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Report)

	assert.NotEmpty(t, resp.Report.ID)
	assert.Equal(t, kernel.ResumeID("resume-1"), resp.Report.ResumeID)
	assert.Equal(t, kernel.JobDescriptionID("jd-1"), resp.Report.JobDescriptionID)
	assert.False(t, resp.Report.CreatedAt.IsZero())

	// Response tuple mirrors the stored report
	assert.Equal(t, resp.Report.Score, resp.Score)
	assert.Equal(t, resp.Report.MissingKeywords, resp.MissingKeywords)
	assert.Equal(t, resp.Report.Suggestions, resp.Suggestions)

	// terraform is in the job description but not the resume
	assert.Contains(t, resp.MissingKeywords, "terraform")
	assert.NotContains(t, resp.MissingKeywords, "python")

	// The report was persisted
	stored, err := repo.GetByID(context.Background(), resp.Report.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Report.Score, stored.Score)
	assert.Equal(t, resp.Report.MissingKeywords, stored.MissingKeywords)
	assert.Equal(t, resp.Report.Suggestions, stored.Suggestions)
}

func TestScoreResumeValidation(t *testing.T) {
	svc := NewATSService(newFakeReportRepo(), nil)

	tests := []struct {
		name   string
		mutate func(*ats.ScoreResumeRequest)
	}{
		{"missing resume id", func(r *ats.ScoreResumeRequest) { r.ResumeID = "" }},
		{"missing job description id", func(r *ats.ScoreResumeRequest) { r.JobDescriptionID = "" }},
		{"missing resume text", func(r *ats.ScoreResumeRequest) { r.ResumeText = "" }},
		{"missing job description text", func(r *ats.ScoreResumeRequest) { r.JobDescriptionText = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.ScoreResume(context.Background(), req)
			require.Error(t, err)

			var e *errx.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, errx.TypeValidation, e.Type)
		})
	}
}

func TestScoreResumeOversizedInput(t *testing.T) {
	svc := NewATSService(newFakeReportRepo(), nil)

	req := validRequest()
	req.ResumeText = string(make([]byte, ats.MaxInputLength+1))

	_, err := svc.ScoreResume(context.Background(), req)
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ats.CodeTextTooLarge.Code, e.Code)
}

func TestScoreResumeNoJobKeywords(t *testing.T) {
	svc := NewATSService(newFakeReportRepo(), nil)

	req := validRequest()
	req.JobDescriptionText = "is it to be or do we" // all stop words or too short

	_, err := svc.ScoreResume(context.Background(), req)
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ats.CodeNoJobKeywords.Code, e.Code)
}

func TestScoreResumePersistenceFailureKeepsResult(t *testing.T) {
	repo := newFakeReportRepo()
	repo.createErr = errors.New("connection refused")
	svc := NewATSService(repo, nil)

	_, err := svc.ScoreResume(context.Background(), validRequest())
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ats.CodePersistFailed.Code, e.Code)

	// The computed tuple must survive a storage failure
	assert.Contains(t, e.Details, "score")
	assert.Contains(t, e.Details, "missing_keywords")
	assert.Contains(t, e.Details, "suggestions")
}

func TestGetReportReadThroughCache(t *testing.T) {
	repo := newFakeReportRepo()
	cache := newFakeReportCache()
	svc := NewATSService(repo, cache)

	scored, err := svc.ScoreResume(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, 1, cache.sets)

	// First lookup after scoring is served from the cache
	got, err := svc.GetReport(context.Background(), scored.Report.ID)
	require.NoError(t, err)
	assert.Equal(t, scored.Report.ID, got.Report.ID)
	assert.Equal(t, 1, cache.hits)

	// Cold cache falls back to the repository and refills
	cold := NewATSService(repo, newFakeReportCache())
	got, err = cold.GetReport(context.Background(), scored.Report.ID)
	require.NoError(t, err)
	assert.Equal(t, scored.Report.Score, got.Report.Score)
	assert.Equal(t, scored.Report.MissingKeywords, got.Report.MissingKeywords)
	assert.Equal(t, scored.Report.Suggestions, got.Report.Suggestions)
}

func TestGetReportNotFound(t *testing.T) {
	svc := NewATSService(newFakeReportRepo(), nil)

	_, err := svc.GetReport(context.Background(), "missing-report")
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errx.TypeNotFound, e.Type)
}
