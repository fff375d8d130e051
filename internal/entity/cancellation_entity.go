// FILE: internal/entity/cancellation_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DownsellVariant is the two-arm experiment bucket controlling whether the
// discount offer is shown on the "still looking" path.
type DownsellVariant string

const (
	VariantA DownsellVariant = "A" // control: no discount offer
	VariantB DownsellVariant = "B" // treatment: $10-off downsell screen
)

func (v DownsellVariant) Valid() bool {
	return v == VariantA || v == VariantB
}

// Cancellation tracks one user's variant, acceptance and reason for a given
// subscription's cancellation attempt. The variant is written once on first
// encounter and is immutable after that; accepted_downsell only ever moves
// false -> true.
type Cancellation struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	SubscriptionId   uuid.UUID
	DownsellVariant  DownsellVariant
	AcceptedDownsell bool
	Reason           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
