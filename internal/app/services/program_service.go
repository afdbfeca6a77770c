package services

import (
	"context"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/app/repositories"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
	"github.com/ssms/scholarship/internal/pkg/validation"
)

const programRequiredMessage = "All fields are required."

// ProgramService handles scholarship program operations
type ProgramService struct {
	repo programStore
}

// NewProgramService creates a new program service instance
func NewProgramService(repo programStore) *ProgramService {
	return &ProgramService{repo: repo}
}

// Create validates and stores a new program. The sponsor reference is
// checked by the database foreign key only.
func (s *ProgramService) Create(ctx context.Context, req dto.CreateProgramRequest) (int64, error) {
	if err := validation.Struct(req, programRequiredMessage); err != nil {
		return 0, err
	}
	if req.AmountPerStudent == nil || req.AmountPerStudent.IsZero() {
		return 0, apperrors.NewValidationError(programRequiredMessage)
	}

	id, err := s.repo.Create(ctx, repositories.ProgramRecord{
		SponsorID:        req.SponsorID.Int64(),
		ProgramName:      req.ProgramName,
		AmountPerStudent: *req.AmountPerStudent,
		Duration:         req.Duration,
	})
	if err != nil {
		return 0, apperrors.NewPersistenceError(err)
	}
	return id, nil
}

// List returns every program
func (s *ProgramService) List(ctx context.Context) ([]*models.ScholarshipProgram, error) {
	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return programs, nil
}

// Update applies the fields present in req
func (s *ProgramService) Update(ctx context.Context, id int64, req dto.UpdateProgramRequest) error {
	changes := &repositories.Changes{}
	if req.SponsorID != nil {
		changes.Set("sponsor_id", req.SponsorID.Int64())
	}
	if err := setRequiredText(changes, "program_name", req.ProgramName); err != nil {
		return err
	}
	if req.AmountPerStudent != nil {
		changes.Set("amount_per_student", *req.AmountPerStudent)
	}
	if err := setRequiredText(changes, "duration", req.Duration); err != nil {
		return err
	}

	if changes.Len() == 0 {
		return ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return mutationError(err, apperrors.ErrProgramNotFound)
	}
	return nil
}

// Delete removes a program
func (s *ProgramService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mutationError(err, apperrors.ErrProgramNotFound)
	}
	return nil
}
