package models

// Student is a row of the students table
type Student struct {
	ID          int64   `json:"student_id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	DateOfBirth *Date   `json:"date_of_birth"`
	Contact     string  `json:"contact"`
	Email       string  `json:"email"`
	University  *string `json:"university"`
	Course      *string `json:"course"`
	YearOfStudy *int    `json:"year_of_study"`
}
