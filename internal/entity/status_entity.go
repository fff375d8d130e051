package entity

import (
	"time"

	"github.com/google/uuid"
)

// MigrateStatus is a one-row-per-user snapshot of the exit survey, upserted
// field by field. The counts store the maximum of the UI-selected bucket
// (e.g. "6–20" -> 20). RawAnswers keeps the submitted payload verbatim for
// later review.
type MigrateStatus struct {
	UserId            uuid.UUID
	EmployedThroughMM bool
	AppliedCount      int
	ContactsCount     int
	InterviewsCount   int
	Improvement       string
	RawAnswers        map[string]interface{}
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserStatus holds the visa/employment detail collected on the visa step.
// Nil pointers mean "never answered"; a partial upsert leaves them untouched.
type UserStatus struct {
	UserId                uuid.UUID
	HasImmigrationLawyer  *bool
	FutureVisaApplyingFor *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
