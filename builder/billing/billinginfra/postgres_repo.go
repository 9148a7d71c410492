package billinginfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/resumeforge/resumeforge/builder/billing"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// PostgresSubscriptionRepository implements billing.SubscriptionRepository using PostgreSQL
type PostgresSubscriptionRepository struct {
	db *sqlx.DB
}

// NewPostgresSubscriptionRepository creates a new PostgreSQL subscription repository
func NewPostgresSubscriptionRepository(db *sqlx.DB) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{
		db: db,
	}
}

// Upsert creates or replaces the subscription for a user
func (r *PostgresSubscriptionRepository) Upsert(ctx context.Context, sub *billing.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id, user_id, plan_tier, provider_ref, status, created_at, updated_at
		) VALUES (
			:id, :user_id, :plan_tier, :provider_ref, :status, :created_at, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			plan_tier = EXCLUDED.plan_tier,
			provider_ref = EXCLUDED.provider_ref,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return nil
}

// GetByUserID retrieves a user's subscription
func (r *PostgresSubscriptionRepository) GetByUserID(ctx context.Context, userID kernel.UserID) (*billing.Subscription, error) {
	query := `
		SELECT id, user_id, plan_tier, provider_ref, status, created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
	`

	var sub billing.Subscription
	err := r.db.GetContext(ctx, &sub, query, string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, billing.ErrSubscriptionNotFound().WithDetail("user_id", userID.String())
		}
		return nil, fmt.Errorf("failed to get subscription by user: %w", err)
	}

	return &sub, nil
}

// GetByProviderRef retrieves a subscription by the provider's reference
func (r *PostgresSubscriptionRepository) GetByProviderRef(ctx context.Context, providerRef string) (*billing.Subscription, error) {
	query := `
		SELECT id, user_id, plan_tier, provider_ref, status, created_at, updated_at
		FROM subscriptions
		WHERE provider_ref = $1
	`

	var sub billing.Subscription
	err := r.db.GetContext(ctx, &sub, query, providerRef)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, billing.ErrSubscriptionNotFound().WithDetail("provider_ref", providerRef)
		}
		return nil, fmt.Errorf("failed to get subscription by provider ref: %w", err)
	}

	return &sub, nil
}

// UpdateStatus changes the status of a subscription by provider reference
func (r *PostgresSubscriptionRepository) UpdateStatus(ctx context.Context, providerRef, status string) error {
	query := `
		UPDATE subscriptions
		SET status = $1, updated_at = NOW()
		WHERE provider_ref = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, providerRef)
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return billing.ErrSubscriptionNotFound().WithDetail("provider_ref", providerRef)
	}

	return nil
}
