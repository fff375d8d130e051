package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOffer(t *testing.T) {
	tests := []struct {
		name       string
		planCents  int
		discounted int
	}{
		{"standard plan", 2500, 1500},
		{"premium plan", 2900, 1900},
		{"below the discount, floors at zero", 999, 0},
		{"exactly the discount", 1000, 0},
		{"zero plan", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := ComputeOffer(tt.planCents)
			assert.Equal(t, tt.planCents, offer.PlanCents)
			assert.Equal(t, tt.discounted, offer.DiscountedCents)
			assert.Equal(t, DownsellOffCents, offer.OffCents)
		})
	}
}
