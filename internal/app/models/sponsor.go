package models

// Sponsor is an organization funding one or more scholarship programs
type Sponsor struct {
	ID               int64  `json:"sponsor_id"`
	OrganizationName string `json:"organization_name"`
	ContactPerson    string `json:"contact_person"`
	Contact          string `json:"contact"`
	Email            string `json:"email"`
	Address          string `json:"address"`
}
