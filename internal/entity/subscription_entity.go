package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive              SubscriptionStatus = "active"
	SubscriptionStatusPendingCancellation SubscriptionStatus = "pending_cancellation"
	SubscriptionStatusCancelled           SubscriptionStatus = "cancelled"
)

// CanTransitionTo reports whether the state machine permits moving from s to
// next. Re-entering pending_cancellation is a permitted no-op; cancelled is
// terminal and only reachable from pending_cancellation (the billing batch
// performs that move, not this flow).
func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	switch s {
	case SubscriptionStatusActive:
		return next == SubscriptionStatusPendingCancellation
	case SubscriptionStatusPendingCancellation:
		return next == SubscriptionStatusPendingCancellation || next == SubscriptionStatusCancelled
	default:
		return false
	}
}

type UserSubscription struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Status       SubscriptionStatus
	MonthlyPrice int // minor currency units (cents)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOperativeCandidate reports whether the subscription can be treated as the
// user's current one for cancellation purposes.
func (s *UserSubscription) IsOperativeCandidate() bool {
	return s.Status == SubscriptionStatusActive || s.Status == SubscriptionStatusPendingCancellation
}
