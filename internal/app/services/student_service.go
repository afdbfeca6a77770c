package services

import (
	"context"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/app/repositories"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
	"github.com/ssms/scholarship/internal/pkg/validation"
)

const studentRequiredMessage = "All fields are required."

// StudentService handles student operations
type StudentService struct {
	repo studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(repo studentStore) *StudentService {
	return &StudentService{repo: repo}
}

// yearOfStudy maps an absent, blank or zero year to NULL. In a patch this
// clears the column.
func yearOfStudy(v *dto.FlexInt64) *int {
	if v == nil || *v == 0 {
		return nil
	}
	y := int(*v)
	return &y
}

// Create validates and stores a new student
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (int64, error) {
	if err := validation.Struct(req, studentRequiredMessage); err != nil {
		return 0, err
	}

	dob, err := parseDateField("date_of_birth", req.DateOfBirth)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, repositories.StudentRecord{
		Name:        req.Name,
		Gender:      req.Gender,
		DateOfBirth: dob,
		Contact:     req.Contact,
		Email:       req.Email,
		University:  req.University,
		Course:      req.Course,
		YearOfStudy: yearOfStudy(req.YearOfStudy),
	})
	if err != nil {
		return 0, apperrors.NewPersistenceError(err)
	}
	return id, nil
}

// List returns every student
func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return students, nil
}

// Update applies the fields present in req
func (s *StudentService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) error {
	changes := &repositories.Changes{}
	if err := setRequiredText(changes, "name", req.Name); err != nil {
		return err
	}
	if err := setRequiredText(changes, "gender", req.Gender); err != nil {
		return err
	}
	if req.DateOfBirth != nil {
		dob, err := parseDateField("date_of_birth", *req.DateOfBirth)
		if err != nil {
			return err
		}
		changes.Set("date_of_birth", dob)
	}
	if err := setRequiredText(changes, "contact", req.Contact); err != nil {
		return err
	}
	if err := setRequiredText(changes, "email", req.Email); err != nil {
		return err
	}
	if req.University != nil {
		changes.Set("university", *req.University)
	}
	if req.Course != nil {
		changes.Set("course", *req.Course)
	}
	if req.YearOfStudy != nil {
		changes.Set("year_of_study", yearOfStudy(req.YearOfStudy))
	}

	if changes.Len() == 0 {
		return ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return mutationError(err, apperrors.ErrStudentNotFound)
	}
	return nil
}

// Delete removes a student
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mutationError(err, apperrors.ErrStudentNotFound)
	}
	return nil
}
