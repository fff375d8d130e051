package dto

// MigrateStatusRequest carries the job-success survey. Counts arrive as UI
// buckets ("0", "1–5", "6–20", "20+") and are mapped to integers before
// storage.
type MigrateStatusRequest struct {
	Email          string `json:"email" validate:"required,email"`
	FoundWithMM    string `json:"found_with_mm" validate:"omitempty,oneof=yes no Yes No"`
	AppliedCount   string `json:"applied_count"`
	EmailedCount   string `json:"emailed_count"`
	InterviewCount string `json:"interview_count"`
}

type ImprovementRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Improvement string `json:"improvement" validate:"required,max=2000"`
}

// UserStatusRequest accepts both snake_case and camelCase field names; the
// aliasing is resolved here at the boundary, never deeper.
type UserStatusRequest struct {
	Email string `json:"email" validate:"required,email"`

	HasImmigrationLawyer      *bool `json:"has_immigration_lawyer"`
	HasImmigrationLawyerCamel *bool `json:"hasImmigrationLawyer"`

	FutureVisaApplyingFor      *string `json:"future_visa_applying_for"`
	FutureVisaApplyingForCamel *string `json:"futureVisaApplyingFor"`
}

// Lawyer returns the lawyer flag regardless of which casing the client used.
func (r *UserStatusRequest) Lawyer() *bool {
	if r.HasImmigrationLawyer != nil {
		return r.HasImmigrationLawyer
	}
	return r.HasImmigrationLawyerCamel
}

// Visa returns the visa text regardless of casing, trimmed; empty collapses
// to nil so it never overwrites a stored answer.
func (r *UserStatusRequest) Visa() *string {
	v := r.FutureVisaApplyingFor
	if v == nil {
		v = r.FutureVisaApplyingForCamel
	}
	return v
}

type UserStatusResponse struct {
	Noop                  bool    `json:"noop,omitempty"`
	HasImmigrationLawyer  *bool   `json:"has_immigration_lawyer"`
	FutureVisaApplyingFor *string `json:"future_visa_applying_for"`
}
