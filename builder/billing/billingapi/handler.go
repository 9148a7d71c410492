package billingapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resumeforge/resumeforge/builder/billing"
	"github.com/resumeforge/resumeforge/builder/billing/billingsrv"
	"github.com/resumeforge/resumeforge/pkg/auth"
)

// Handlers provides HTTP handlers for billing operations
type Handlers struct {
	service *billingsrv.BillingService
}

// NewHandlers creates a new billing handlers instance
func NewHandlers(service *billingsrv.BillingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCheckoutSession starts a subscription checkout
// POST /api/billing/create-checkout-session
func (h *Handlers) CreateCheckoutSession(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return billing.ErrInvalidBillingData().WithDetail("reason", "missing auth context")
	}

	var req billing.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return billing.ErrInvalidBillingData().WithDetail("parse_error", err.Error())
	}

	// Checkouts are always started for the authenticated user
	req.UserID = authContext.UserID

	resp, err := h.service.CreateCheckoutSession(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Webhook receives payment provider events
// POST /api/billing/webhook
func (h *Handlers) Webhook(c *fiber.Ctx) error {
	signature := c.Get("Webhook-Signature")

	if err := h.service.HandleWebhook(c.Context(), c.Body(), signature); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"received": true,
	})
}

// RegisterRoutes registers all billing routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/billing")

	api.Post("/create-checkout-session",
		authMiddleware.Authenticate(),
		handlers.CreateCheckoutSession,
	)

	// Authenticated by signature, not bearer token
	api.Post("/webhook", handlers.Webhook)
}
