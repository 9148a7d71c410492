package jobdescapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resumeforge/resumeforge/builder/jobdesc"
	"github.com/resumeforge/resumeforge/builder/jobdesc/jobdescsrv"
	"github.com/resumeforge/resumeforge/pkg/auth"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Handlers provides HTTP handlers for job description operations
type Handlers struct {
	service *jobdescsrv.JobDescriptionService
}

// NewHandlers creates a new job description handlers instance
func NewHandlers(service *jobdescsrv.JobDescriptionService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJobDescription saves a new job description
// POST /api/job-descriptions
func (h *Handlers) CreateJobDescription(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return jobdesc.ErrNotOwner()
	}

	var req jobdesc.CreateJobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return jobdesc.ErrInvalidJobDescription().WithDetail("parse_error", err.Error())
	}

	// The owner is always the authenticated user
	req.UserID = authContext.UserID

	newJD, err := h.service.CreateJobDescription(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJD)
}

// GetJobDescriptionByID retrieves a job description by ID
// GET /api/job-descriptions/:id
func (h *Handlers) GetJobDescriptionByID(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return jobdesc.ErrNotOwner()
	}

	id := kernel.JobDescriptionID(c.Params("id"))
	if id == "" {
		return jobdesc.ErrJobDescriptionNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetJobDescriptionByID(c.Context(), id, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListJobDescriptionsByUser retrieves job descriptions saved by a user
// GET /api/job-descriptions/by-user/:userId
func (h *Handlers) ListJobDescriptionsByUser(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return jobdesc.ErrNotOwner()
	}

	userID := kernel.UserID(c.Params("userId"))
	if userID == "" {
		return jobdesc.ErrInvalidJobDescription().WithDetail("user_id", "missing or empty")
	}

	if userID != authContext.UserID && authContext.Role != auth.RoleAdmin {
		return jobdesc.ErrNotOwner().WithDetail("user_id", userID.String())
	}

	pagination := parsePaginationOptions(c)

	jds, err := h.service.GetJobDescriptionsByUser(c.Context(), userID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(jds)
}

// DeleteJobDescription deletes a job description
// DELETE /api/job-descriptions/:id
func (h *Handlers) DeleteJobDescription(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return jobdesc.ErrNotOwner()
	}

	id := kernel.JobDescriptionID(c.Params("id"))
	if id == "" {
		return jobdesc.ErrJobDescriptionNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJobDescription(c.Context(), id, authContext.UserID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
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

// RegisterRoutes registers all job description routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/job-descriptions")

	api.Get("/by-user/:userId",
		authMiddleware.Authenticate(),
		handlers.ListJobDescriptionsByUser,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetJobDescriptionByID,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.CreateJobDescription,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		handlers.DeleteJobDescription,
	)
}
