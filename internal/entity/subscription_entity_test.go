package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatusTransitions(t *testing.T) {
	// active may only move to pending_cancellation
	assert.True(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusPendingCancellation))
	assert.False(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusCancelled))
	assert.False(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusActive))

	// pending_cancellation may re-enter itself (idempotent retry) or finish
	assert.True(t, SubscriptionStatusPendingCancellation.CanTransitionTo(SubscriptionStatusPendingCancellation))
	assert.True(t, SubscriptionStatusPendingCancellation.CanTransitionTo(SubscriptionStatusCancelled))
	assert.False(t, SubscriptionStatusPendingCancellation.CanTransitionTo(SubscriptionStatusActive))

	// cancelled is terminal for this flow
	assert.False(t, SubscriptionStatusCancelled.CanTransitionTo(SubscriptionStatusActive))
	assert.False(t, SubscriptionStatusCancelled.CanTransitionTo(SubscriptionStatusPendingCancellation))
	assert.False(t, SubscriptionStatusCancelled.CanTransitionTo(SubscriptionStatusCancelled))
}
