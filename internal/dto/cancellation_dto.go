// FILE: internal/dto/cancellation_dto.go
package dto

import (
	"github.com/google/uuid"
)

// --- Variant Assignment ---

// InitCancellationRequest starts (or resumes) the cancellation wizard.
type InitCancellationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VariantResponse struct {
	DownsellVariant  string `json:"downsell_variant"`
	AcceptedDownsell bool   `json:"accepted_downsell"`
}

// --- Downsell Acceptance ---

type AcceptDownsellRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AcceptDownsellResponse struct {
	AlreadyAccepted bool      `json:"already_accepted"`
	RecordId        uuid.UUID `json:"record_id"`
}

// --- Reason Submission ---

// SubmitReasonRequest records the dropdown category plus optional free text
// and transitions the subscription in the same unit of work.
type SubmitReasonRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Reason  string `json:"reason" validate:"required"`
	Details string `json:"details" validate:"omitempty,max=2000"`
}

// --- Pending Cancellation ---

type MarkPendingCancellationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type MarkPendingCancellationResponse struct {
	SubscriptionId uuid.UUID `json:"subscription_id"`
}

// --- Wizard Session / Routing ---

// UpdateFlowSessionRequest stores survey hints between wizard steps. All
// answer fields are optional; omitted ones keep their previous value.
type UpdateFlowSessionRequest struct {
	Email                string `json:"email" validate:"required,email"`
	JobFound             *bool  `json:"job_found"`
	FoundThroughPlatform *bool  `json:"found_through_platform"`
	HasLawyer            *bool  `json:"has_lawyer"`
	DownsellDeclined     *bool  `json:"downsell_declined"`
	SurveyDone           *bool  `json:"survey_done"`
	ImprovementDone      *bool  `json:"improvement_done"`
	VisaDone             *bool  `json:"visa_done"`
	ReasonDone           *bool  `json:"reason_done"`
}

type NextStepResponse struct {
	Step string `json:"step"`
}
