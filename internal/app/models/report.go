package models

// ReportFilters holds the optional report predicates. A nil field means the
// predicate is not applied at all.
type ReportFilters struct {
	University  *string
	YearOfStudy *int
	SponsorID   *int64
	Semester    *string
	Status      *string
	DateFrom    *Date
	DateTo      *Date
}

// StudentSponsorshipRow is one allocation with student, program and sponsor
type StudentSponsorshipRow struct {
	AllocationID int64   `json:"allocation_id"`
	StudentID    int64   `json:"student_id"`
	StudentName  string  `json:"student_name"`
	University   *string `json:"university"`
	YearOfStudy  *int    `json:"year_of_study"`
	Program      string  `json:"program"`
	SponsorID    int64   `json:"sponsor_id"`
	Sponsor      string  `json:"sponsor"`
	Status       string  `json:"status"`
}

// PaymentSummaryRow is one payment with the paid student
type PaymentSummaryRow struct {
	PaymentID    int64    `json:"payment_id"`
	AllocationID int64    `json:"allocation_id"`
	Student      string   `json:"student"`
	Program      string   `json:"program"`
	Sponsor      string   `json:"sponsor"`
	Amount       *float64 `json:"amount"`
	Date         *Date    `json:"date"`
	Semester     string   `json:"semester"`
}

// SponsorContributionRow aggregates disbursed payments per sponsor
type SponsorContributionRow struct {
	SponsorID   int64   `json:"sponsor_id"`
	Sponsor     string  `json:"sponsor"`
	TotalAmount float64 `json:"total_amount"`
	NumStudents int64   `json:"num_students"`
}

// ProgramSummaryRow describes a program and how many students it funds
type ProgramSummaryRow struct {
	ProgramID        int64    `json:"program_id"`
	SponsorID        int64    `json:"sponsor_id"`
	Sponsor          string   `json:"sponsor"`
	ProgramName      string   `json:"program_name"`
	AmountPerStudent *float64 `json:"amount_per_student"`
	Duration         string   `json:"duration"`
	StudentCount     int64    `json:"student_count"`
}

// AllocationStatusRow is an allocation listed by lifecycle status
type AllocationStatusRow struct {
	AllocationID int64  `json:"allocation_id"`
	Student      string `json:"student"`
	Program      string `json:"program"`
	StartDate    *Date  `json:"start_date"`
	EndDate      *Date  `json:"end_date"`
	Status       string `json:"status"`
}

// StudentAllocationRow is one allocation inside a student detail report
type StudentAllocationRow struct {
	AllocationID int64  `json:"allocation_id"`
	Program      string `json:"program"`
	Sponsor      string `json:"sponsor"`
	StartDate    *Date  `json:"start_date"`
	EndDate      *Date  `json:"end_date"`
	Status       string `json:"status"`
}

// StudentDetail gathers everything recorded for one student
type StudentDetail struct {
	Student     *Student               `json:"student"`
	Allocations []StudentAllocationRow `json:"allocations"`
	Payments    []*Payment             `json:"payments"`
}
