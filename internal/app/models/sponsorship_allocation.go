package models

// SponsorshipAllocation assigns one program to one student for a date range
type SponsorshipAllocation struct {
	ID        int64  `json:"allocation_id"`
	StudentID int64  `json:"student_id"`
	ProgramID int64  `json:"program_id"`
	StartDate *Date  `json:"start_date"`
	EndDate   *Date  `json:"end_date"`
	Status    string `json:"status"`
}
