package billingsrv

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/resumeforge/resumeforge/builder/billing"
	"github.com/resumeforge/resumeforge/builder/catalog"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/resumeforge/resumeforge/pkg/logx"
)

// BillingService manages subscription checkouts and webhook events
type BillingService struct {
	checkout      billing.CheckoutProvider
	subRepo       billing.SubscriptionRepository
	webhookSecret string
}

// NewBillingService creates a new instance of the billing service
func NewBillingService(
	checkout billing.CheckoutProvider,
	subRepo billing.SubscriptionRepository,
	webhookSecret string,
) *BillingService {
	return &BillingService{
		checkout:      checkout,
		subRepo:       subRepo,
		webhookSecret: webhookSecret,
	}
}

// CreateCheckoutSession starts a subscription checkout for a user
func (s *BillingService) CreateCheckoutSession(ctx context.Context, req billing.CreateCheckoutSessionRequest) (*billing.CheckoutSessionResponse, error) {
	if req.PriceID == "" || req.UserID.IsEmpty() {
		return nil, billing.ErrInvalidBillingData().WithDetail("message", "priceId and userId are required")
	}

	sessionID, err := s.checkout.CreateCheckoutSession(ctx, req.PriceID, req.UserID)
	if err != nil {
		return nil, billing.ErrCheckoutFailed().WithCause(err)
	}

	return &billing.CheckoutSessionResponse{SessionID: sessionID}, nil
}

// HandleWebhook verifies and applies a payment provider event
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	if err := billing.VerifyWebhookSignature(payload, signatureHeader, s.webhookSecret, billing.DefaultSignatureTolerance); err != nil {
		return billing.ErrInvalidSignature().WithCause(err)
	}

	var event billing.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return billing.ErrInvalidBillingData().WithCause(err).WithDetail("reason", "malformed event payload")
	}

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		// Unhandled event types are acknowledged, not errors
		logx.Debugf("ignoring webhook event type %s", event.Type)
		return nil
	}
}

func (s *BillingService) handleCheckoutCompleted(ctx context.Context, event billing.WebhookEvent) error {
	var session billing.CheckoutSessionObject
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return billing.ErrInvalidBillingData().WithCause(err).WithDetail("event_type", event.Type)
	}

	if session.ClientReferenceID == "" {
		return billing.ErrInvalidBillingData().WithDetail("reason", "checkout session has no client reference")
	}

	providerRef := session.Subscription
	if providerRef == "" {
		providerRef = session.ID
	}

	sub := &billing.Subscription{
		ID:          uuid.NewString(),
		UserID:      kernel.UserID(session.ClientReferenceID),
		PlanTier:    catalog.TierPro,
		ProviderRef: providerRef,
		Status:      billing.StatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return errx.Wrap(err, "failed to store subscription", errx.TypeInternal)
	}

	logx.Infof("subscription activated for user %s", session.ClientReferenceID)
	return nil
}

func (s *BillingService) handleSubscriptionUpdated(ctx context.Context, event billing.WebhookEvent) error {
	var sub billing.SubscriptionObject
	if err := json.Unmarshal(event.Data.Object, &sub); err != nil {
		return billing.ErrInvalidBillingData().WithCause(err).WithDetail("event_type", event.Type)
	}

	status := billing.StatusActive
	if sub.Status == "canceled" || sub.Status == "unpaid" {
		status = billing.StatusCanceled
	}

	if err := s.subRepo.UpdateStatus(ctx, sub.ID, status); err != nil {
		return errx.Wrap(err, "failed to update subscription status", errx.TypeInternal)
	}

	return nil
}

func (s *BillingService) handleSubscriptionDeleted(ctx context.Context, event billing.WebhookEvent) error {
	var sub billing.SubscriptionObject
	if err := json.Unmarshal(event.Data.Object, &sub); err != nil {
		return billing.ErrInvalidBillingData().WithCause(err).WithDetail("event_type", event.Type)
	}

	if err := s.subRepo.UpdateStatus(ctx, sub.ID, billing.StatusCanceled); err != nil {
		return errx.Wrap(err, "failed to cancel subscription", errx.TypeInternal)
	}

	logx.Infof("subscription %s canceled", sub.ID)
	return nil
}

// ResolvePlanTier returns the tier of a user's active subscription, free otherwise
func (s *BillingService) ResolvePlanTier(ctx context.Context, userID kernel.UserID) (string, error) {
	sub, err := s.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		if e, ok := err.(*errx.Error); ok && e.Type == errx.TypeNotFound {
			return catalog.TierFree, nil
		}
		return "", err
	}

	if !sub.IsActive() {
		return catalog.TierFree, nil
	}

	return sub.PlanTier, nil
}
