package events

import "time"

// DownsellAccepted is emitted when a user takes the discount offer; the
// billing batch applies the new price on the next cycle.
func DownsellAccepted(userId, recordId string) Event {
	return BaseEvent{
		Type: "DOWNSELL_ACCEPTED",
		Data: map[string]interface{}{
			"user_id":   userId,
			"record_id": recordId,
		},
		OccurredAt: time.Now(),
	}
}

// SubscriptionPendingCancellation is emitted when a subscription enters
// pending_cancellation; downstream consumers stop renewal attempts.
func SubscriptionPendingCancellation(userId, subscriptionId string) Event {
	return BaseEvent{
		Type: "SUBSCRIPTION_PENDING_CANCELLATION",
		Data: map[string]interface{}{
			"user_id":         userId,
			"subscription_id": subscriptionId,
		},
		OccurredAt: time.Now(),
	}
}
