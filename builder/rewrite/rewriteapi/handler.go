package rewriteapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resumeforge/resumeforge/builder/rewrite"
	"github.com/resumeforge/resumeforge/builder/rewrite/rewritesrv"
	"github.com/resumeforge/resumeforge/pkg/auth"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Handlers provides HTTP handlers for AI rewrite operations
type Handlers struct {
	service *rewritesrv.RewriteService
}

// NewHandlers creates a new rewrite handlers instance
func NewHandlers(service *rewritesrv.RewriteService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Rewrite rephrases a resume section against a job description
// POST /api/ai/rewrite
func (h *Handlers) Rewrite(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return rewrite.ErrInvalidRequest().WithDetail("reason", "missing auth context")
	}

	var req rewrite.RewriteRequest
	if err := c.BodyParser(&req); err != nil {
		return rewrite.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	// Usage is always attributed to the authenticated user
	req.UserID = authContext.UserID

	resp, err := h.service.Rewrite(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListModels lists the models available to a user
// GET /api/ai/models/:userId
func (h *Handlers) ListModels(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("userId"))
	if userID == "" {
		return rewrite.ErrInvalidRequest().WithDetail("user_id", "missing or empty")
	}

	resp, err := h.service.AvailableModels(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all AI rewrite routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/ai")

	api.Post("/rewrite",
		authMiddleware.Authenticate(),
		handlers.Rewrite,
	)

	api.Get("/models/:userId",
		authMiddleware.Authenticate(),
		handlers.ListModels,
	)
}
