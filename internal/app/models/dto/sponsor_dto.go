package dto

import "github.com/ssms/scholarship/internal/app/models"

// CreateSponsorRequest is the body of POST /add-sponsor/
type CreateSponsorRequest struct {
	OrganizationName string `json:"organization_name" validate:"required"`
	ContactPerson    string `json:"contact_person" validate:"required"`
	Contact          string `json:"contact" validate:"required"`
	Email            string `json:"email" validate:"required"`
	Address          string `json:"address" validate:"required"`
}

// UpdateSponsorRequest carries only the fields to change
type UpdateSponsorRequest struct {
	OrganizationName *string `json:"organization_name"`
	ContactPerson    *string `json:"contact_person"`
	Contact          *string `json:"contact"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
}

// SponsorCreatedResponse is returned after a sponsor is inserted
type SponsorCreatedResponse struct {
	Message   string `json:"message" example:"Sponsor added successfully!"`
	SponsorID int64  `json:"sponsor_id" example:"1"`
}

// SponsorListResponse is the body of GET /show-sponsors/
type SponsorListResponse struct {
	Sponsors []*models.Sponsor `json:"sponsors"`
}
