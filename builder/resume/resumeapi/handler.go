package resumeapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resumeforge/resumeforge/builder/resume"
	"github.com/resumeforge/resumeforge/builder/resume/resumesrv"
	"github.com/resumeforge/resumeforge/pkg/auth"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Handlers provides HTTP handlers for resume operations
type Handlers struct {
	service *resumesrv.ResumeService
}

// NewHandlers creates a new resume handlers instance
func NewHandlers(service *resumesrv.ResumeService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateResume creates a new resume
// POST /api/resumes
func (h *Handlers) CreateResume(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return resume.ErrNotOwner()
	}

	var req resume.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidResumeData().WithDetail("parse_error", err.Error())
	}

	// The owner is always the authenticated user
	req.UserID = authContext.UserID

	newResume, err := h.service.CreateResume(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newResume)
}

// GetResumeByID retrieves a resume by ID
// GET /api/resumes/:id
func (h *Handlers) GetResumeByID(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return resume.ErrNotOwner()
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID == "" {
		return resume.ErrResumeNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetResumeByID(c.Context(), resumeID, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListResumesByUser retrieves resumes owned by a specific user
// GET /api/resumes/by-user/:userId
func (h *Handlers) ListResumesByUser(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return resume.ErrNotOwner()
	}

	userID := kernel.UserID(c.Params("userId"))
	if userID == "" {
		return resume.ErrInvalidResumeData().WithDetail("user_id", "missing or empty")
	}

	// Users can only list their own resumes
	if userID != authContext.UserID && authContext.Role != auth.RoleAdmin {
		return resume.ErrNotOwner().WithDetail("user_id", userID.String())
	}

	pagination := parsePaginationOptions(c)

	resumes, err := h.service.GetResumesByUser(c.Context(), userID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(resumes)
}

// UpdateResume updates an existing resume
// PUT /api/resumes/:id
func (h *Handlers) UpdateResume(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return resume.ErrNotOwner()
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID == "" {
		return resume.ErrResumeNotFound().WithDetail("id", "missing or empty")
	}

	var req resume.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidResumeData().WithDetail("parse_error", err.Error())
	}

	updatedResume, err := h.service.UpdateResume(c.Context(), resumeID, req, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(updatedResume)
}

// DeleteResume deletes a resume
// DELETE /api/resumes/:id
func (h *Handlers) DeleteResume(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return resume.ErrNotOwner()
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID == "" {
		return resume.ErrResumeNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteResume(c.Context(), resumeID, authContext.UserID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// CountUserResumes counts the resumes owned by a user
// GET /api/resumes/count/by-user/:userId
func (h *Handlers) CountUserResumes(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("userId"))
	if userID == "" {
		return resume.ErrInvalidResumeData().WithDetail("user_id", "missing or empty")
	}

	count, err := h.service.CountUserResumes(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user_id": userID,
		"count":   count,
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

// RegisterRoutes registers all resume routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/resumes")

	api.Get("/by-user/:userId",
		authMiddleware.Authenticate(),
		handlers.ListResumesByUser,
	)

	api.Get("/count/by-user/:userId",
		authMiddleware.Authenticate(),
		handlers.CountUserResumes,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetResumeByID,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.CreateResume,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		handlers.UpdateResume,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		handlers.DeleteResume,
	)
}
