package billing

import (
	"encoding/json"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// CreateCheckoutSessionRequest - DTO for starting a subscription checkout
type CreateCheckoutSessionRequest struct {
	PriceID string        `json:"priceId" validate:"required"`
	UserID  kernel.UserID `json:"userId,omitempty"`
}

// CheckoutSessionResponse - DTO carrying the provider's checkout session ID
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// WebhookEvent is a payment provider event delivered to the webhook endpoint
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// CheckoutSessionObject is the payload of a checkout.session.completed event
type CheckoutSessionObject struct {
	ID                string `json:"id"`
	ClientReferenceID string `json:"client_reference_id"`
	Subscription      string `json:"subscription"`
}

// SubscriptionObject is the payload of a customer.subscription.* event
type SubscriptionObject struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
