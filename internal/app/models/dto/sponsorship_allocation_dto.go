package dto

import "github.com/ssms/scholarship/internal/app/models"

// CreateAllocationRequest is the body of POST /add-allocation/
type CreateAllocationRequest struct {
	StudentID FlexInt64 `json:"student_id" validate:"required"`
	ProgramID FlexInt64 `json:"program_id" validate:"required"`
	StartDate string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"status"`
}

// UpdateAllocationRequest carries only the fields to change
type UpdateAllocationRequest struct {
	StudentID *FlexInt64 `json:"student_id"`
	ProgramID *FlexInt64 `json:"program_id"`
	StartDate *string    `json:"start_date"`
	EndDate   *string    `json:"end_date"`
	Status    *string    `json:"status"`
}

// AllocationCreatedResponse is returned after an allocation is inserted
type AllocationCreatedResponse struct {
	Message      string `json:"message" example:"Sponsorship allocation added successfully!"`
	AllocationID int64  `json:"allocation_id" example:"1"`
}

// AllocationListResponse is the body of GET /show-allocations/
type AllocationListResponse struct {
	Allocations []*models.SponsorshipAllocation `json:"sponsorship_allocations"`
}
