package store

// FlowSession carries the wizard's in-flight survey answers between steps so
// the UI does not have to smuggle them through query parameters. Everything
// here is a hint: the durable variant and acceptance flag always win over
// whatever the session claims.
type FlowSession struct {
	Email                string `json:"email"` // lowercased, the session key
	JobFound             *bool  `json:"job_found,omitempty"`
	FoundThroughPlatform *bool  `json:"found_through_platform,omitempty"`
	HasLawyer            *bool  `json:"has_lawyer,omitempty"`
	DownsellDeclined     bool   `json:"downsell_declined"`
	SurveyDone           bool   `json:"survey_done"`
	ImprovementDone      bool   `json:"improvement_done"`
	VisaDone             bool   `json:"visa_done"`
	ReasonDone           bool   `json:"reason_done"`
}
