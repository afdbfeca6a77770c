package models

// ScholarshipProgram is a sponsor-funded offering with a per-student amount
type ScholarshipProgram struct {
	ID               int64    `json:"program_id"`
	SponsorID        int64    `json:"sponsor_id"`
	ProgramName      string   `json:"program_name"`
	AmountPerStudent *float64 `json:"amount_per_student"`
	Duration         string   `json:"duration"`
}
