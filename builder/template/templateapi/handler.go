package templateapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resumeforge/resumeforge/builder/template"
	"github.com/resumeforge/resumeforge/builder/template/templatesrv"
	"github.com/resumeforge/resumeforge/pkg/auth"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Handlers provides HTTP handlers for template operations
type Handlers struct {
	service *templatesrv.TemplateService
}

// NewHandlers creates a new template handlers instance
func NewHandlers(service *templatesrv.TemplateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListTemplates retrieves active templates
// GET /api/templates
func (h *Handlers) ListTemplates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	templates, err := h.service.ListActiveTemplates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(templates)
}

// ListCategories retrieves the distinct template categories
// GET /api/templates/categories
func (h *Handlers) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(categories)
}

// GetTemplateByID retrieves a template by ID
// GET /api/templates/:id
func (h *Handlers) GetTemplateByID(c *fiber.Ctx) error {
	templateID := kernel.TemplateID(c.Params("id"))
	if templateID == "" {
		return template.ErrTemplateNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetTemplateByID(c.Context(), templateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetTemplateContent fetches the LaTeX source of a template
// GET /api/templates/:id/content
func (h *Handlers) GetTemplateContent(c *fiber.Ctx) error {
	templateID := kernel.TemplateID(c.Params("id"))
	if templateID == "" {
		return template.ErrTemplateNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetTemplateContent(c.Context(), templateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateTemplate registers a new template
// POST /api/templates
func (h *Handlers) CreateTemplate(c *fiber.Ctx) error {
	var req template.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return template.ErrInvalidTemplateData().WithDetail("parse_error", err.Error())
	}

	newTemplate, err := h.service.CreateTemplate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newTemplate)
}

// DeactivateTemplate hides a template from users
// POST /api/templates/:id/deactivate
func (h *Handlers) DeactivateTemplate(c *fiber.Ctx) error {
	templateID := kernel.TemplateID(c.Params("id"))
	if templateID == "" {
		return template.ErrTemplateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeactivateTemplate(c.Context(), templateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Template deactivated successfully",
	})
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all template routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/templates")

	// Static routes before parameterized ones
	api.Get("/categories",
		authMiddleware.Authenticate(),
		handlers.ListCategories,
	)

	api.Get("/",
		authMiddleware.Authenticate(),
		handlers.ListTemplates,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetTemplateByID,
	)

	api.Get("/:id/content",
		authMiddleware.Authenticate(),
		handlers.GetTemplateContent,
	)

	// Admin routes
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.CreateTemplate,
	)

	api.Post("/:id/deactivate",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.DeactivateTemplate,
	)
}
