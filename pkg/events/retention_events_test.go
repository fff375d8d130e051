package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDownsellAccepted(t *testing.T) {
	evt := DownsellAccepted("user-1", "record-1")

	assert.Equal(t, "DOWNSELL_ACCEPTED", evt.EventType())
	assert.Equal(t, "user-1", evt.Payload()["user_id"])
	assert.Equal(t, "record-1", evt.Payload()["record_id"])
	assert.WithinDuration(t, time.Now(), evt.Timestamp(), time.Minute)
}

func TestSubscriptionPendingCancellation(t *testing.T) {
	evt := SubscriptionPendingCancellation("user-1", "sub-1")

	assert.Equal(t, "SUBSCRIPTION_PENDING_CANCELLATION", evt.EventType())
	assert.Equal(t, "user-1", evt.Payload()["user_id"])
	assert.Equal(t, "sub-1", evt.Payload()["subscription_id"])
}
