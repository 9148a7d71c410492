package catalogapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resumeforge/resumeforge/builder/catalog"
	"github.com/resumeforge/resumeforge/builder/catalog/catalogsrv"
	"github.com/resumeforge/resumeforge/pkg/auth"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Handlers provides HTTP handlers for catalog administration
type Handlers struct {
	service *catalogsrv.CatalogService
}

// NewHandlers creates a new catalog handlers instance
func NewHandlers(service *catalogsrv.CatalogService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListProviders retrieves all registered providers
// GET /api/admin/providers
func (h *Handlers) ListProviders(c *fiber.Ctx) error {
	resp, err := h.service.ListProviders(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateProvider registers a new AI provider
// POST /api/admin/providers
func (h *Handlers) CreateProvider(c *fiber.Ctx) error {
	var req catalog.CreateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidCatalogData().WithDetail("parse_error", err.Error())
	}

	provider, err := h.service.CreateProvider(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"provider": provider,
	})
}

// ListModels retrieves all registered models with provider info
// GET /api/admin/models
func (h *Handlers) ListModels(c *fiber.Ctx) error {
	resp, err := h.service.ListModels(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateModel registers a new AI model
// POST /api/admin/models
func (h *Handlers) CreateModel(c *fiber.Ctx) error {
	var req catalog.CreateModelRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidCatalogData().WithDetail("parse_error", err.Error())
	}

	model, err := h.service.CreateModel(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"model": model,
	})
}

// ListPlans retrieves all subscription plans
// GET /api/admin/plans
func (h *Handlers) ListPlans(c *fiber.Ctx) error {
	resp, err := h.service.ListPlans(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdatePlanProviders replaces the providers a plan may use
// PUT /api/admin/plans/:id/models
func (h *Handlers) UpdatePlanProviders(c *fiber.Ctx) error {
	planID := kernel.PlanID(c.Params("id"))
	if planID == "" {
		return catalog.ErrPlanNotFound().WithDetail("id", "missing or empty")
	}

	var req catalog.UpdatePlanModelsRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidCatalogData().WithDetail("parse_error", err.Error())
	}

	plan, err := h.service.UpdatePlanProviders(c.Context(), planID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"plan": plan,
	})
}

// RegisterRoutes registers all catalog admin routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/admin",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
	)

	api.Get("/providers", handlers.ListProviders)
	api.Post("/providers", handlers.CreateProvider)

	api.Get("/models", handlers.ListModels)
	api.Post("/models", handlers.CreateModel)

	api.Get("/plans", handlers.ListPlans)
	api.Put("/plans/:id/models", handlers.UpdatePlanProviders)
}
