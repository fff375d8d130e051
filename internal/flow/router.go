// FILE: internal/flow/router.go
package flow

import "migratemate-retention-be/internal/entity"

// Step identifies a screen of the cancellation wizard.
type Step string

const (
	StepJobStatus            Step = "job-status"
	StepJobSuccess           Step = "job-success"
	StepImprovement          Step = "improvement"
	StepVisa                 Step = "visa"
	StepEmployedCancellation Step = "employed-cancellation"
	StepDownsell             Step = "downsell"
	StepDownsellAccepted     Step = "downsell-accepted"
	StepStillLooking         Step = "still-looking"
	StepReasons              Step = "reasons"
	StepCancellation         Step = "cancellation"
)

// Facts are everything the router is allowed to know. Durable values
// (variant, acceptance) always come from the store; the boolean pointers are
// survey answers that may not have been given yet.
type Facts struct {
	Variant              entity.DownsellVariant
	JobFound             *bool
	FoundThroughPlatform *bool // survey copy only, never affects routing
	HasLawyer            *bool
	AcceptedDownsell     bool
	DownsellDeclined     bool
	SurveyDone           bool
	ImprovementDone      bool
	VisaDone             bool
	ReasonDone           bool
}

// Resolve maps the current facts to the next wizard step. First matching
// rule wins; the function is pure and deterministic. An invalid variant is
// treated as A so that a lookup failure never shows the discount arm.
func Resolve(f Facts) Step {
	variant := f.Variant
	if !variant.Valid() {
		variant = entity.VariantA
	}

	if f.JobFound == nil {
		return StepJobStatus
	}

	if *f.JobFound {
		// Found-a-job branch. Platform attribution may still be unanswered;
		// it only changes survey copy, so routing proceeds on JobFound alone.
		switch {
		case !f.SurveyDone:
			return StepJobSuccess
		case !f.ImprovementDone:
			return StepImprovement
		case !f.VisaDone:
			return StepVisa
		default:
			return StepEmployedCancellation
		}
	}

	// Still-looking branch.
	if f.AcceptedDownsell {
		return StepDownsellAccepted
	}
	if variant == entity.VariantB && !f.DownsellDeclined {
		return StepDownsell
	}
	switch {
	case !f.SurveyDone:
		return StepStillLooking
	case !f.ReasonDone:
		return StepReasons
	default:
		return StepCancellation
	}
}
