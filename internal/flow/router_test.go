package flow

import (
	"testing"

	"migratemate-retention-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveAsksJobStatusFirst(t *testing.T) {
	assert.Equal(t, StepJobStatus, Resolve(Facts{Variant: entity.VariantA}))
	assert.Equal(t, StepJobStatus, Resolve(Facts{Variant: entity.VariantB}))
}

func TestResolveJobFoundBranch(t *testing.T) {
	base := Facts{Variant: entity.VariantA, JobFound: boolPtr(true)}

	assert.Equal(t, StepJobSuccess, Resolve(base))

	base.SurveyDone = true
	assert.Equal(t, StepImprovement, Resolve(base))

	base.ImprovementDone = true
	assert.Equal(t, StepVisa, Resolve(base))

	base.VisaDone = true
	assert.Equal(t, StepEmployedCancellation, Resolve(base))
}

func TestResolvePlatformAttributionNeverChangesRouting(t *testing.T) {
	// The attribution answer affects survey copy only.
	for _, attribution := range []*bool{nil, boolPtr(true), boolPtr(false)} {
		f := Facts{
			Variant:              entity.VariantB,
			JobFound:             boolPtr(true),
			FoundThroughPlatform: attribution,
		}
		assert.Equal(t, StepJobSuccess, Resolve(f))
	}
}

func TestResolveStillLookingVariantA(t *testing.T) {
	f := Facts{Variant: entity.VariantA, JobFound: boolPtr(false)}

	// Arm A never sees the downsell screen, regardless of call order.
	for i := 0; i < 5; i++ {
		assert.Equal(t, StepStillLooking, Resolve(f))
	}

	f.SurveyDone = true
	assert.Equal(t, StepReasons, Resolve(f))

	f.ReasonDone = true
	assert.Equal(t, StepCancellation, Resolve(f))
}

func TestResolveStillLookingVariantB(t *testing.T) {
	f := Facts{Variant: entity.VariantB, JobFound: boolPtr(false)}
	assert.Equal(t, StepDownsell, Resolve(f))

	// Declining the offer drops arm B onto the arm A path.
	f.DownsellDeclined = true
	assert.Equal(t, StepStillLooking, Resolve(f))

	f.SurveyDone = true
	assert.Equal(t, StepReasons, Resolve(f))
}

func TestResolveAcceptedDownsellIsTerminal(t *testing.T) {
	f := Facts{
		Variant:          entity.VariantB,
		JobFound:         boolPtr(false),
		AcceptedDownsell: true,
	}
	assert.Equal(t, StepDownsellAccepted, Resolve(f))

	// Acceptance wins even over later survey progress.
	f.SurveyDone = true
	f.ReasonDone = true
	assert.Equal(t, StepDownsellAccepted, Resolve(f))
}

func TestResolveUnknownVariantDefaultsToA(t *testing.T) {
	// A variant lookup failure must route conservatively: no discount arm.
	f := Facts{Variant: entity.DownsellVariant(""), JobFound: boolPtr(false)}
	assert.Equal(t, StepStillLooking, Resolve(f))

	f.Variant = entity.DownsellVariant("C")
	assert.Equal(t, StepStillLooking, Resolve(f))
}
