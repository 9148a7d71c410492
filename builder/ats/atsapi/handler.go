package atsapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resumeforge/resumeforge/builder/ats"
	"github.com/resumeforge/resumeforge/builder/ats/atssrv"
	"github.com/resumeforge/resumeforge/pkg/auth"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Handlers provides HTTP handlers for ATS scoring
type Handlers struct {
	service *atssrv.ATSService
}

// NewHandlers creates a new ATS handlers instance
func NewHandlers(service *atssrv.ATSService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ScoreResume scores a resume against a job description
// POST /api/ats/score
func (h *Handlers) ScoreResume(c *fiber.Ctx) error {
	var req ats.ScoreResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return ats.ErrInvalidInput().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.ScoreResume(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetReport retrieves a stored ATS report
// GET /api/ats/reports/:id
func (h *Handlers) GetReport(c *fiber.Ctx) error {
	reportID := kernel.ReportID(c.Params("id"))
	if reportID == "" {
		return ats.ErrReportNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetReport(c.Context(), reportID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListReportsByResume retrieves the scoring history of a resume
// GET /api/ats/reports/by-resume/:resumeId
func (h *Handlers) ListReportsByResume(c *fiber.Ctx) error {
	resumeID := kernel.ResumeID(c.Params("resumeId"))
	if resumeID == "" {
		return ats.ErrInvalidInput().WithDetail("resume_id", "missing or empty")
	}

	pagination := parsePaginationOptions(c)

	reports, err := h.service.ListReportsByResume(c.Context(), resumeID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(reports)
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

// RegisterRoutes registers all ATS routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/ats")

	api.Post("/score",
		authMiddleware.Authenticate(),
		handlers.ScoreResume,
	)

	api.Get("/reports/by-resume/:resumeId",
		authMiddleware.Authenticate(),
		handlers.ListReportsByResume,
	)

	api.Get("/reports/:id",
		authMiddleware.Authenticate(),
		handlers.GetReport,
	)
}
