package service

import "errors"

// Sentinel errors for the retention flow. NotFound-class errors surface to
// the client as 404 and are never retried; anything else coming out of the
// store is treated as retryable, which is safe because every state-changing
// operation here is idempotent.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrNoSubscription       = errors.New("no subscription found")
	ErrNoEligibleSub        = errors.New("no active or pending subscription")
	ErrNoCancellationRecord = errors.New("no cancellation record for user")
)
