package dto

// CancellationEventMessage rides the in-process event bus from the
// cancellation service to the consumer that sends confirmation emails.
type CancellationEventMessage struct {
	Type           string `json:"type"` // REASON_RECORDED or DOWNSELL_ACCEPTED
	Email          string `json:"email"`
	UserId         string `json:"user_id"`
	SubscriptionId string `json:"subscription_id,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

const (
	EventReasonRecorded   = "REASON_RECORDED"
	EventDownsellAccepted = "DOWNSELL_ACCEPTED"
)
