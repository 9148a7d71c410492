package billingsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/resumeforge/resumeforge/builder/billing"
	"github.com/resumeforge/resumeforge/builder/catalog"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

// fakeCheckout records checkout calls
type fakeCheckout struct {
	sessionID string
	err       error
	lastPrice string
}

func (f *fakeCheckout) CreateCheckoutSession(_ context.Context, priceID string, _ kernel.UserID) (string, error) {
	f.lastPrice = priceID
	if f.err != nil {
		return "", f.err
	}
	return f.sessionID, nil
}

// fakeSubRepo is an in-memory billing.SubscriptionRepository
type fakeSubRepo struct {
	byUser map[kernel.UserID]*billing.Subscription
	byRef  map[string]*billing.Subscription
}

func newFakeSubRepo() *fakeSubRepo {
	return &fakeSubRepo{
		byUser: make(map[kernel.UserID]*billing.Subscription),
		byRef:  make(map[string]*billing.Subscription),
	}
}

func (f *fakeSubRepo) Upsert(_ context.Context, sub *billing.Subscription) error {
	stored := *sub
	f.byUser[sub.UserID] = &stored
	f.byRef[sub.ProviderRef] = &stored
	return nil
}

func (f *fakeSubRepo) GetByUserID(_ context.Context, userID kernel.UserID) (*billing.Subscription, error) {
	sub, ok := f.byUser[userID]
	if !ok {
		return nil, billing.ErrSubscriptionNotFound().WithDetail("user_id", userID.String())
	}
	return sub, nil
}

func (f *fakeSubRepo) GetByProviderRef(_ context.Context, ref string) (*billing.Subscription, error) {
	sub, ok := f.byRef[ref]
	if !ok {
		return nil, billing.ErrSubscriptionNotFound().WithDetail("provider_ref", ref)
	}
	return sub, nil
}

func (f *fakeSubRepo) UpdateStatus(_ context.Context, ref, status string) error {
	sub, ok := f.byRef[ref]
	if !ok {
		return billing.ErrSubscriptionNotFound().WithDetail("provider_ref", ref)
	}
	sub.Status = status
	sub.UpdatedAt = time.Now()
	return nil
}

func signedEvent(t *testing.T, event any) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	ts := time.Now().Unix()
	header := fmt.Sprintf("t=%d,v1=%s", ts, billing.ComputeWebhookSignature(payload, ts, testWebhookSecret))
	return payload, header
}

func checkoutCompletedEvent(userID, subscriptionRef string) map[string]any {
	return map[string]any{
		"id":   "evt_1",
		"type": "checkout.session.completed",
		"data": map[string]any{
			"object": map[string]any{
				"id":                  "cs_1",
				"client_reference_id": userID,
				"subscription":        subscriptionRef,
			},
		},
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	checkout := &fakeCheckout{sessionID: "cs_123"}
	svc := NewBillingService(checkout, newFakeSubRepo(), testWebhookSecret)

	resp, err := svc.CreateCheckoutSession(context.Background(), billing.CreateCheckoutSessionRequest{
		PriceID: "price_pro_monthly",
		UserID:  kernel.NewUserID("user-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", resp.SessionID)
	assert.Equal(t, "price_pro_monthly", checkout.lastPrice)
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	svc := NewBillingService(&fakeCheckout{}, newFakeSubRepo(), testWebhookSecret)

	_, err := svc.CreateCheckoutSession(context.Background(), billing.CreateCheckoutSessionRequest{})
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, errx.TypeValidation, e.Type)
}

func TestHandleWebhookActivatesSubscription(t *testing.T) {
	repo := newFakeSubRepo()
	svc := NewBillingService(&fakeCheckout{}, repo, testWebhookSecret)

	payload, header := signedEvent(t, checkoutCompletedEvent("user-1", "sub_9"))
	require.NoError(t, svc.HandleWebhook(context.Background(), payload, header))

	sub, err := repo.GetByUserID(context.Background(), kernel.NewUserID("user-1"))
	require.NoError(t, err)
	assert.Equal(t, catalog.TierPro, sub.PlanTier)
	assert.Equal(t, billing.StatusActive, sub.Status)
	assert.Equal(t, "sub_9", sub.ProviderRef)
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	repo := newFakeSubRepo()
	svc := NewBillingService(&fakeCheckout{}, repo, testWebhookSecret)

	payload, err := json.Marshal(checkoutCompletedEvent("user-1", "sub_9"))
	require.NoError(t, err)

	err = svc.HandleWebhook(context.Background(), payload, "t=1,v1=bogus")
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, billing.CodeInvalidSignature.Code, e.Code)
	assert.Empty(t, repo.byUser)
}

func TestHandleWebhookCancelsSubscription(t *testing.T) {
	repo := newFakeSubRepo()
	svc := NewBillingService(&fakeCheckout{}, repo, testWebhookSecret)

	payload, header := signedEvent(t, checkoutCompletedEvent("user-1", "sub_9"))
	require.NoError(t, svc.HandleWebhook(context.Background(), payload, header))

	payload, header = signedEvent(t, map[string]any{
		"id":   "evt_2",
		"type": "customer.subscription.deleted",
		"data": map[string]any{
			"object": map[string]any{"id": "sub_9", "status": "canceled"},
		},
	})
	require.NoError(t, svc.HandleWebhook(context.Background(), payload, header))

	tier, err := svc.ResolvePlanTier(context.Background(), kernel.NewUserID("user-1"))
	require.NoError(t, err)
	assert.Equal(t, catalog.TierFree, tier)
}

func TestHandleWebhookIgnoresUnknownEvents(t *testing.T) {
	svc := NewBillingService(&fakeCheckout{}, newFakeSubRepo(), testWebhookSecret)

	payload, header := signedEvent(t, map[string]any{
		"id":   "evt_3",
		"type": "invoice.paid",
		"data": map[string]any{"object": map[string]any{}},
	})
	assert.NoError(t, svc.HandleWebhook(context.Background(), payload, header))
}

func TestResolvePlanTierDefaultsToFree(t *testing.T) {
	svc := NewBillingService(&fakeCheckout{}, newFakeSubRepo(), testWebhookSecret)

	tier, err := svc.ResolvePlanTier(context.Background(), kernel.NewUserID("nobody"))
	require.NoError(t, err)
	assert.Equal(t, catalog.TierFree, tier)
}
