package resumesrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resumeforge/resumeforge/builder/resume"
	"github.com/resumeforge/resumeforge/builder/template"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// ResumeService provides business operations for resumes
type ResumeService struct {
	resumeRepo   resume.Repository
	templateRepo template.Repository
}

// NewResumeService creates a new instance of the resume service
func NewResumeService(
	resumeRepo resume.Repository,
	templateRepo template.Repository,
) *ResumeService {
	return &ResumeService{
		resumeRepo:   resumeRepo,
		templateRepo: templateRepo,
	}
}

// CreateResume creates a new resume from a template
func (s *ResumeService) CreateResume(ctx context.Context, req resume.CreateResumeRequest) (*resume.ResumeResponse, error) {
	if req.UserID.IsEmpty() || req.TemplateID.IsEmpty() || req.Title == "" {
		return nil, resume.ErrInvalidResumeData().WithDetail("message", "user_id, template_id and title are required")
	}

	// Validate that the referenced template exists
	if _, err := s.templateRepo.GetByID(ctx, req.TemplateID); err != nil {
		return nil, resume.ErrUnknownTemplate().WithDetail("template_id", req.TemplateID.String())
	}

	newResume := &resume.Resume{
		ID:         kernel.NewResumeID(uuid.NewString()),
		UserID:     req.UserID,
		TemplateID: req.TemplateID,
		Title:      req.Title,
		TexContent: req.TexContent,
		Metadata:   req.Metadata,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.resumeRepo.Create(ctx, newResume); err != nil {
		return nil, errx.Wrap(err, "failed to create resume", errx.TypeInternal)
	}

	resp := s.toResumeResponse(newResume)
	return &resp, nil
}

// GetResumeByID retrieves a resume, enforcing ownership
func (s *ResumeService) GetResumeByID(ctx context.Context, resumeID kernel.ResumeID, callerID kernel.UserID) (*resume.ResumeResponse, error) {
	entity, err := s.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, resume.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
	}

	if entity.UserID != callerID {
		return nil, resume.ErrNotOwner().WithDetail("resume_id", resumeID.String())
	}

	resp := s.toResumeResponse(entity)
	return &resp, nil
}

// GetResumesByUser retrieves all resumes owned by a user, newest first
func (s *ResumeService) GetResumesByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*resume.PaginatedResumesResponse, error) {
	resumes, err := s.resumeRepo.ListByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get resumes by user", errx.TypeInternal)
	}

	responses := make([]resume.ResumeResponse, 0, len(resumes.Items))
	for _, r := range resumes.Items {
		responses = append(responses, s.toResumeResponse(&r))
	}

	return &kernel.Paginated[resume.ResumeResponse]{
		Items: responses,
		Page:  resumes.Page,
		Empty: resumes.Empty,
	}, nil
}

// UpdateResume updates an existing resume's title, LaTeX source or metadata
func (s *ResumeService) UpdateResume(ctx context.Context, resumeID kernel.ResumeID, req resume.UpdateResumeRequest, callerID kernel.UserID) (*resume.ResumeResponse, error) {
	entity, err := s.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, resume.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
	}

	if entity.UserID != callerID {
		return nil, resume.ErrNotOwner().WithDetail("resume_id", resumeID.String())
	}

	updated := false

	if req.Title != nil && *req.Title != entity.Title {
		entity.Title = *req.Title
		updated = true
	}

	if req.TexContent != nil && *req.TexContent != entity.TexContent {
		entity.TexContent = *req.TexContent
		updated = true
	}

	if req.Metadata != nil {
		entity.Metadata = *req.Metadata
		updated = true
	}

	if updated {
		entity.UpdatedAt = time.Now()

		if err := s.resumeRepo.Update(ctx, resumeID, entity); err != nil {
			return nil, errx.Wrap(err, "failed to update resume", errx.TypeInternal)
		}
	}

	resp := s.toResumeResponse(entity)
	return &resp, nil
}

// AttachExport records the storage path of a rendered PDF for a resume
func (s *ResumeService) AttachExport(ctx context.Context, resumeID kernel.ResumeID, path kernel.BlobPath) error {
	entity, err := s.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return resume.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
	}

	entity.AttachExport(path)

	if err := s.resumeRepo.Update(ctx, resumeID, entity); err != nil {
		return errx.Wrap(err, "failed to attach export", errx.TypeInternal)
	}

	return nil
}

// DeleteResume deletes a resume, enforcing ownership
func (s *ResumeService) DeleteResume(ctx context.Context, resumeID kernel.ResumeID, callerID kernel.UserID) error {
	entity, err := s.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return resume.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
	}

	if entity.UserID != callerID {
		return resume.ErrNotOwner().WithDetail("resume_id", resumeID.String())
	}

	if err := s.resumeRepo.Delete(ctx, resumeID); err != nil {
		return errx.Wrap(err, "failed to delete resume", errx.TypeInternal)
	}

	return nil
}

// CountUserResumes counts the resumes owned by a user
func (s *ResumeService) CountUserResumes(ctx context.Context, userID kernel.UserID) (int64, error) {
	count, err := s.resumeRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, errx.Wrap(err, "failed to count user resumes", errx.TypeInternal)
	}

	return count, nil
}

// toResumeResponse converts a Resume entity to ResumeResponse DTO
func (s *ResumeService) toResumeResponse(r *resume.Resume) resume.ResumeResponse {
	return resume.ResumeResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		TemplateID: r.TemplateID,
		Title:      r.Title,
		TexContent: r.TexContent,
		PDFPath:    r.PDFPath,
		Metadata:   r.Metadata,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
