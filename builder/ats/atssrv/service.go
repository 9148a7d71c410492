package atssrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resumeforge/resumeforge/builder/ats"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/resumeforge/resumeforge/pkg/logx"
)

// reportCacheTTL bounds how long a fetched report stays in the cache
const reportCacheTTL = 15 * time.Minute

// ATSService wires the pure scoring pipeline to report persistence
type ATSService struct {
	reportRepo  ats.ReportRepository
	reportCache ats.ReportCache
}

// NewATSService creates a new ATS scoring service. The cache may be nil;
// lookups then always hit the repository.
func NewATSService(reportRepo ats.ReportRepository, reportCache ats.ReportCache) *ATSService {
	return &ATSService{
		reportRepo:  reportRepo,
		reportCache: reportCache,
	}
}

// ScoreResume extracts keywords from both texts, computes the match and
// persists the resulting report. The computed tuple is always part of the
// outcome: on a persistence failure the error carries the score, missing
// keywords and suggestions in its details so callers never lose the result.
func (s *ATSService) ScoreResume(ctx context.Context, req ats.ScoreResumeRequest) (*ats.ScoreResumeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	jobKeywords := ats.ExtractKeywords(req.JobDescriptionText)
	if len(jobKeywords) == 0 {
		// Scoring against zero job keywords would divide by zero; rejected
		// as an input error rather than defining an arbitrary score.
		return nil, ats.ErrNoJobKeywords().
			WithDetail("job_description_id", req.JobDescriptionID.String())
	}
	resumeKeywords := ats.ExtractKeywords(req.ResumeText)

	match := ats.ScoreKeywords(jobKeywords, resumeKeywords)
	suggestions := ats.GenerateSuggestions(match.Missing, match.Score)

	report := &ats.ATSReport{
		ID:               kernel.NewReportID(uuid.NewString()),
		ResumeID:         req.ResumeID,
		JobDescriptionID: req.JobDescriptionID,
		Score:            match.Score,
		MissingKeywords:  match.Missing,
		Suggestions:      suggestions,
		CreatedAt:        time.Now(),
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		logx.Errorf("Failed to persist ATS report for resume %s: %v", req.ResumeID, err)
		return nil, ats.ErrRegistry.NewWithCause(ats.CodePersistFailed, err).
			WithDetail("score", match.Score).
			WithDetail("missing_keywords", match.Missing).
			WithDetail("suggestions", suggestions)
	}

	if s.reportCache != nil {
		if err := s.reportCache.Set(ctx, report, reportCacheTTL); err != nil {
			logx.Warnf("Failed to cache ATS report %s: %v", report.ID, err)
		}
	}

	return &ats.ScoreResumeResponse{
		Report:          report,
		Score:           match.Score,
		MissingKeywords: match.Missing,
		Suggestions:     suggestions,
	}, nil
}

// GetReport retrieves a stored report by ID, read-through cached
func (s *ATSService) GetReport(ctx context.Context, id kernel.ReportID) (*ats.ReportResponse, error) {
	if id.IsEmpty() {
		return nil, ats.ErrReportNotFound().WithDetail("id", "missing or empty")
	}

	if s.reportCache != nil {
		cached, err := s.reportCache.Get(ctx, id)
		if err != nil {
			logx.Warnf("ATS report cache lookup failed for %s: %v", id, err)
		} else if cached != nil {
			return &ats.ReportResponse{Report: cached}, nil
		}
	}

	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.reportCache != nil {
		if err := s.reportCache.Set(ctx, report, reportCacheTTL); err != nil {
			logx.Warnf("Failed to cache ATS report %s: %v", id, err)
		}
	}

	return &ats.ReportResponse{Report: report}, nil
}

// ListReportsByResume retrieves the scoring history of a resume
func (s *ATSService) ListReportsByResume(ctx context.Context, resumeID kernel.ResumeID, pagination kernel.PaginationOptions) (*kernel.Paginated[ats.ATSReport], error) {
	return s.reportRepo.ListByResumeID(ctx, resumeID, pagination)
}
