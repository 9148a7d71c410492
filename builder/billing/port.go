package billing

import (
	"context"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// CheckoutProvider starts subscription checkouts with the payment provider
type CheckoutProvider interface {
	// CreateCheckoutSession starts a subscription checkout for the given
	// price and returns the provider's session ID
	CreateCheckoutSession(ctx context.Context, priceID string, userID kernel.UserID) (string, error)
}

type SubscriptionRepository interface {
	// Upsert creates or replaces the subscription for a user
	Upsert(ctx context.Context, sub *Subscription) error

	// GetByUserID retrieves a user's subscription
	GetByUserID(ctx context.Context, userID kernel.UserID) (*Subscription, error)

	// GetByProviderRef retrieves a subscription by the provider's reference
	GetByProviderRef(ctx context.Context, providerRef string) (*Subscription, error)

	// UpdateStatus changes the status of a subscription by provider reference
	UpdateStatus(ctx context.Context, providerRef, status string) error
}
