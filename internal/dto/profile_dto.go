package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileSubscription struct {
	Status            string     `json:"status"`
	MonthlyPriceCents int        `json:"monthly_price_cents"`
	CreatedAt         time.Time  `json:"created_at"`
	NextBillingDate   *time.Time `json:"next_billing_date"` // nil once cancelled
}

type ProfileResponse struct {
	Email        string               `json:"email"`
	UserId       uuid.UUID            `json:"user_id"`
	Subscription *ProfileSubscription `json:"subscription"`
}

type OfferResponse struct {
	PlanCents       int `json:"plan_cents"`
	DiscountedCents int `json:"discounted_cents"`
	OffCents        int `json:"off_cents"`
}
