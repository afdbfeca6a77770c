package models

// DashboardTotals are the headline counters of the dashboard
type DashboardTotals struct {
	TotalStudents          int64   `json:"total_students"`
	TotalSponsors          int64   `json:"total_sponsors"`
	TotalPrograms          int64   `json:"total_programs"`
	TotalActiveAllocations int64   `json:"total_active_allocations"`
	TotalPayments          float64 `json:"total_payments"`
}

// RecentAllocation is an allocation joined with its student and program names
type RecentAllocation struct {
	StudentName string `json:"student_name"`
	ProgramName string `json:"program_name"`
	StartDate   *Date  `json:"start_date"`
}

// MonthlyCount is the number of allocations started in one calendar month
type MonthlyCount struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"month_number"`
	Count       int64  `json:"count"`
}

// UniversityCount groups students by university
type UniversityCount struct {
	University string `json:"university"`
	Count      int64  `json:"count"`
}

// YearOfStudyCount groups students by year of study
type YearOfStudyCount struct {
	YearOfStudy int   `json:"year_of_study"`
	Count       int64 `json:"count"`
}

// GenderCount groups students by gender
type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

// StatusCount groups allocations by status
type StatusCount struct {
	Status *string `json:"status"`
	Count  int64   `json:"count"`
}

// SemesterPayment is the payment total for one semester label
type SemesterPayment struct {
	Semester      *string `json:"semester"`
	SemesterIndex *int    `json:"semester_index"`
	Amount        float64 `json:"amount"`
}

// SponsorContribution is the sum of active program amounts for a sponsor
type SponsorContribution struct {
	SponsorID   int64   `json:"sponsor_id"`
	SponsorName string  `json:"sponsor_name"`
	TotalAmount float64 `json:"total_amount"`
}

// SponsorAverage is the mean per-student amount over a sponsor's programs
type SponsorAverage struct {
	SponsorID   int64   `json:"sponsor_id"`
	SponsorName string  `json:"sponsor_name"`
	AvgAmount   float64 `json:"avg_amount"`
}

// ProgramFunding ranks a program by its per-student amount
type ProgramFunding struct {
	ProgramID   int64   `json:"program_id"`
	ProgramName string  `json:"program_name"`
	SponsorID   int64   `json:"sponsor_id"`
	Amount      float64 `json:"amount"`
}

// UpcomingEndDate is an active allocation that is about to finish
type UpcomingEndDate struct {
	AllocationID int64  `json:"allocation_id"`
	StudentName  string `json:"student_name"`
	ProgramName  string `json:"program_name"`
	EndDate      *Date  `json:"end_date"`
}
