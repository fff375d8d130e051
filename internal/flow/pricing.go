package flow

// DownsellOffCents is the flat promotional discount: $10 off the monthly
// price, applied unconditionally with a floor at zero. There is no plan-size
// eligibility threshold.
const DownsellOffCents = 1000

type Offer struct {
	PlanCents       int `json:"plan_cents"`
	DiscountedCents int `json:"discounted_cents"`
	OffCents        int `json:"off_cents"`
}

// ComputeOffer derives the discounted price from a monthly plan price in
// cents. A $9.99 plan discounts to zero, never negative.
func ComputeOffer(planCents int) Offer {
	discounted := planCents - DownsellOffCents
	if discounted < 0 {
		discounted = 0
	}
	return Offer{
		PlanCents:       planCents,
		DiscountedCents: discounted,
		OffCents:        DownsellOffCents,
	}
}
