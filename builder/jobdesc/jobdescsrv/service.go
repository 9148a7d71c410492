package jobdescsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resumeforge/resumeforge/builder/ats"
	"github.com/resumeforge/resumeforge/builder/jobdesc"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// JobDescriptionService provides business operations for saved job descriptions
type JobDescriptionService struct {
	jobDescRepo jobdesc.Repository
}

// NewJobDescriptionService creates a new instance of the job description service
func NewJobDescriptionService(jobDescRepo jobdesc.Repository) *JobDescriptionService {
	return &JobDescriptionService{
		jobDescRepo: jobDescRepo,
	}
}

// CreateJobDescription saves a job description and extracts its keywords
func (s *JobDescriptionService) CreateJobDescription(ctx context.Context, req jobdesc.CreateJobDescriptionRequest) (*jobdesc.JobDescriptionResponse, error) {
	if req.UserID.IsEmpty() || req.Title == "" || req.Text == "" {
		return nil, jobdesc.ErrInvalidJobDescription().WithDetail("message", "user_id, title and text are required")
	}

	// Keywords are extracted once at save time so scoring can reuse them
	keywords := ats.ExtractKeywords(string(req.Text))

	newJD := &jobdesc.JobDescription{
		ID:                kernel.NewJobDescriptionID(uuid.NewString()),
		UserID:            req.UserID,
		Title:             req.Title,
		Company:           req.Company,
		Text:              req.Text,
		ExtractedKeywords: keywords,
		CreatedAt:         time.Now(),
	}

	if err := s.jobDescRepo.Create(ctx, newJD); err != nil {
		return nil, errx.Wrap(err, "failed to create job description", errx.TypeInternal)
	}

	resp := s.toJobDescriptionResponse(newJD)
	return &resp, nil
}

// GetJobDescriptionByID retrieves a job description, enforcing ownership
func (s *JobDescriptionService) GetJobDescriptionByID(ctx context.Context, id kernel.JobDescriptionID, callerID kernel.UserID) (*jobdesc.JobDescriptionResponse, error) {
	entity, err := s.jobDescRepo.GetByID(ctx, id)
	if err != nil {
		return nil, jobdesc.ErrJobDescriptionNotFound().WithDetail("job_description_id", id.String())
	}

	if entity.UserID != callerID {
		return nil, jobdesc.ErrNotOwner().WithDetail("job_description_id", id.String())
	}

	resp := s.toJobDescriptionResponse(entity)
	return &resp, nil
}

// GetJobDescriptionsByUser retrieves a user's saved job descriptions, newest first
func (s *JobDescriptionService) GetJobDescriptionsByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*jobdesc.PaginatedJobDescriptionsResponse, error) {
	jds, err := s.jobDescRepo.ListByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get job descriptions by user", errx.TypeInternal)
	}

	responses := make([]jobdesc.JobDescriptionResponse, 0, len(jds.Items))
	for _, jd := range jds.Items {
		responses = append(responses, s.toJobDescriptionResponse(&jd))
	}

	return &kernel.Paginated[jobdesc.JobDescriptionResponse]{
		Items: responses,
		Page:  jds.Page,
		Empty: jds.Empty,
	}, nil
}

// DeleteJobDescription deletes a job description, enforcing ownership
func (s *JobDescriptionService) DeleteJobDescription(ctx context.Context, id kernel.JobDescriptionID, callerID kernel.UserID) error {
	entity, err := s.jobDescRepo.GetByID(ctx, id)
	if err != nil {
		return jobdesc.ErrJobDescriptionNotFound().WithDetail("job_description_id", id.String())
	}

	if entity.UserID != callerID {
		return jobdesc.ErrNotOwner().WithDetail("job_description_id", id.String())
	}

	if err := s.jobDescRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete job description", errx.TypeInternal)
	}

	return nil
}

// toJobDescriptionResponse converts a JobDescription entity to its DTO
func (s *JobDescriptionService) toJobDescriptionResponse(jd *jobdesc.JobDescription) jobdesc.JobDescriptionResponse {
	return jobdesc.JobDescriptionResponse{
		ID:                jd.ID,
		UserID:            jd.UserID,
		Title:             jd.Title,
		Company:           jd.Company,
		Text:              jd.Text,
		ExtractedKeywords: jd.ExtractedKeywords,
		CreatedAt:         jd.CreatedAt,
	}
}
