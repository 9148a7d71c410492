package templatesrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resumeforge/resumeforge/builder/template"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/fsx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// TemplateService provides business operations for resume templates
type TemplateService struct {
	templateRepo template.Repository
	blobStore    fsx.FileSystem
}

// NewTemplateService creates a new instance of the template service
func NewTemplateService(
	templateRepo template.Repository,
	blobStore fsx.FileSystem,
) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		blobStore:    blobStore,
	}
}

// CreateTemplate registers a new template and stores its LaTeX source
func (s *TemplateService) CreateTemplate(ctx context.Context, req template.CreateTemplateRequest) (*template.TemplateResponse, error) {
	if req.Name == "" || req.TexContent == "" {
		return nil, template.ErrInvalidTemplateData().WithDetail("message", "name and tex_content are required")
	}

	id := kernel.NewTemplateID(uuid.NewString())
	blobPath := kernel.BlobPath(fmt.Sprintf("templates/%s.tex", id.String()))

	if err := s.blobStore.Write(ctx, blobPath.String(), []byte(req.TexContent), "application/x-tex"); err != nil {
		return nil, errx.Wrap(err, "failed to store template source", errx.TypeExternal)
	}

	newTemplate := &template.Template{
		ID:               id,
		Name:             req.Name,
		Description:      req.Description,
		PreviewURL:       req.PreviewURL,
		TexBlobPath:      blobPath,
		Categories:       req.Categories,
		ATSScoreEstimate: req.ATSScoreEstimate,
		Active:           true,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.templateRepo.Create(ctx, newTemplate); err != nil {
		// Best effort cleanup so the blob does not leak
		_ = s.blobStore.Delete(ctx, blobPath.String())
		return nil, errx.Wrap(err, "failed to create template", errx.TypeInternal)
	}

	resp := s.toTemplateResponse(newTemplate)
	return &resp, nil
}

// GetTemplateByID retrieves a template by ID
func (s *TemplateService) GetTemplateByID(ctx context.Context, templateID kernel.TemplateID) (*template.TemplateResponse, error) {
	entity, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, template.ErrTemplateNotFound().WithDetail("template_id", templateID.String())
	}

	resp := s.toTemplateResponse(entity)
	return &resp, nil
}

// GetTemplateContent fetches the LaTeX source of a template from blob storage
func (s *TemplateService) GetTemplateContent(ctx context.Context, templateID kernel.TemplateID) (*template.TemplateContentResponse, error) {
	entity, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, template.ErrTemplateNotFound().WithDetail("template_id", templateID.String())
	}

	data, err := s.blobStore.Read(ctx, entity.TexBlobPath.String())
	if err != nil {
		return nil, template.ErrContentUnavailable().
			WithCause(err).
			WithDetail("template_id", templateID.String())
	}

	return &template.TemplateContentResponse{
		ID:         entity.ID,
		TexContent: string(data),
	}, nil
}

// ListActiveTemplates retrieves active templates, newest first
func (s *TemplateService) ListActiveTemplates(ctx context.Context, pagination kernel.PaginationOptions) (*template.PaginatedTemplatesResponse, error) {
	templates, err := s.templateRepo.ListActive(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list templates", errx.TypeInternal)
	}

	responses := make([]template.TemplateResponse, 0, len(templates.Items))
	for _, t := range templates.Items {
		responses = append(responses, s.toTemplateResponse(&t))
	}

	return &kernel.Paginated[template.TemplateResponse]{
		Items: responses,
		Page:  templates.Page,
		Empty: templates.Empty,
	}, nil
}

// ListCategories retrieves the distinct categories across all templates
func (s *TemplateService) ListCategories(ctx context.Context) (*template.CategoriesResponse, error) {
	categories, err := s.templateRepo.ListCategories(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list template categories", errx.TypeInternal)
	}

	return &template.CategoriesResponse{Categories: categories}, nil
}

// DeactivateTemplate hides a template from users
func (s *TemplateService) DeactivateTemplate(ctx context.Context, templateID kernel.TemplateID) error {
	if _, err := s.templateRepo.GetByID(ctx, templateID); err != nil {
		return template.ErrTemplateNotFound().WithDetail("template_id", templateID.String())
	}

	if err := s.templateRepo.SetActive(ctx, templateID, false); err != nil {
		return errx.Wrap(err, "failed to deactivate template", errx.TypeInternal)
	}

	return nil
}

// toTemplateResponse converts a Template entity to TemplateResponse DTO
func (s *TemplateService) toTemplateResponse(t *template.Template) template.TemplateResponse {
	return template.TemplateResponse{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		PreviewURL:       t.PreviewURL,
		Categories:       t.Categories,
		ATSScoreEstimate: t.ATSScoreEstimate,
		Active:           t.Active,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
