package services

import (
	"context"
	"strings"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/app/repositories"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
	"github.com/ssms/scholarship/internal/pkg/validation"
)

// AllocationService handles sponsorship allocation operations
type AllocationService struct {
	repo allocationStore
}

// NewAllocationService creates a new allocation service instance
func NewAllocationService(repo allocationStore) *AllocationService {
	return &AllocationService{repo: repo}
}

// Create validates and stores a new allocation. A missing or blank status
// becomes Active.
func (s *AllocationService) Create(ctx context.Context, req dto.CreateAllocationRequest) (int64, error) {
	if err := validation.Struct(req, "student_id, program_id, start_date, and end_date are required."); err != nil {
		return 0, err
	}

	start, err := parseDateField("start_date", req.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := parseDateField("end_date", req.EndDate)
	if err != nil {
		return 0, err
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = string(models.DefaultAllocationStatus)
	}

	id, err := s.repo.Create(ctx, repositories.AllocationRecord{
		StudentID: req.StudentID.Int64(),
		ProgramID: req.ProgramID.Int64(),
		StartDate: start,
		EndDate:   end,
		Status:    status,
	})
	if err != nil {
		return 0, apperrors.NewPersistenceError(err)
	}
	return id, nil
}

// List returns every allocation
func (s *AllocationService) List(ctx context.Context) ([]*models.SponsorshipAllocation, error) {
	allocations, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return allocations, nil
}

// Update applies the fields present in req
func (s *AllocationService) Update(ctx context.Context, id int64, req dto.UpdateAllocationRequest) error {
	changes := &repositories.Changes{}
	if req.StudentID != nil {
		changes.Set("student_id", req.StudentID.Int64())
	}
	if req.ProgramID != nil {
		changes.Set("program_id", req.ProgramID.Int64())
	}
	if req.StartDate != nil {
		start, err := parseDateField("start_date", *req.StartDate)
		if err != nil {
			return err
		}
		changes.Set("start_date", start)
	}
	if req.EndDate != nil {
		end, err := parseDateField("end_date", *req.EndDate)
		if err != nil {
			return err
		}
		changes.Set("end_date", end)
	}
	if req.Status != nil {
		changes.Set("status", *req.Status)
	}

	if changes.Len() == 0 {
		return ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return mutationError(err, apperrors.ErrAllocationNotFound)
	}
	return nil
}

// Delete removes an allocation
func (s *AllocationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mutationError(err, apperrors.ErrAllocationNotFound)
	}
	return nil
}
