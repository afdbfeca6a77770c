package dto

import (
	"github.com/shopspring/decimal"
	"github.com/ssms/scholarship/internal/app/models"
)

// CreateProgramRequest is the body of POST /add-scholarship-program/
type CreateProgramRequest struct {
	SponsorID        FlexInt64        `json:"sponsor_id" validate:"required"`
	ProgramName      string           `json:"program_name" validate:"required"`
	AmountPerStudent *decimal.Decimal `json:"amount_per_student"`
	Duration         string           `json:"duration" validate:"required"`
}

// UpdateProgramRequest carries only the fields to change
type UpdateProgramRequest struct {
	SponsorID        *FlexInt64       `json:"sponsor_id"`
	ProgramName      *string          `json:"program_name"`
	AmountPerStudent *decimal.Decimal `json:"amount_per_student"`
	Duration         *string          `json:"duration"`
}

// ProgramCreatedResponse is returned after a program is inserted
type ProgramCreatedResponse struct {
	Message   string `json:"message" example:"Scholarship program added successfully!"`
	ProgramID int64  `json:"program_id" example:"1"`
}

// ProgramListResponse is the body of GET /show-programs/
type ProgramListResponse struct {
	Programs []*models.ScholarshipProgram `json:"scholarship_programs"`
}
