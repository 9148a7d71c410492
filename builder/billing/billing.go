package billing

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Subscription statuses
const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
)

// Subscription records a user's paid plan as reported by the payment provider
type Subscription struct {
	ID          string        `db:"id" json:"id"`
	UserID      kernel.UserID `db:"user_id" json:"user_id"`
	PlanTier    string        `db:"plan_tier" json:"plan_tier"`
	ProviderRef string        `db:"provider_ref" json:"provider_ref"`
	Status      string        `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the subscription currently grants its tier
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}

// Cancel marks the subscription canceled
func (s *Subscription) Cancel() {
	s.Status = StatusCanceled
	s.UpdatedAt = time.Now()
}
