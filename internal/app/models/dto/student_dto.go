package dto

import "github.com/ssms/scholarship/internal/app/models"

// CreateStudentRequest is the body of POST /add-student/
type CreateStudentRequest struct {
	Name        string     `json:"name" validate:"required"`
	Gender      string     `json:"gender" validate:"required"`
	DateOfBirth string     `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Contact     string     `json:"contact" validate:"required"`
	Email       string     `json:"email" validate:"required"`
	University  *string    `json:"university"`
	Course      *string    `json:"course"`
	YearOfStudy *FlexInt64 `json:"year_of_study"`
}

// UpdateStudentRequest carries only the fields to change
type UpdateStudentRequest struct {
	Name        *string    `json:"name"`
	Gender      *string    `json:"gender"`
	DateOfBirth *string    `json:"date_of_birth"`
	Contact     *string    `json:"contact"`
	Email       *string    `json:"email"`
	University  *string    `json:"university"`
	Course      *string    `json:"course"`
	YearOfStudy *FlexInt64 `json:"year_of_study"`
}

// StudentCreatedResponse is returned after a student is inserted
type StudentCreatedResponse struct {
	Message   string `json:"message" example:"Student added successfully!"`
	StudentID int64  `json:"student_id" example:"1"`
}

// StudentListResponse is the body of GET /show-students/
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
}
