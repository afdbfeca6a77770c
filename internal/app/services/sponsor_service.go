package services

import (
	"context"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/app/repositories"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
	"github.com/ssms/scholarship/internal/pkg/validation"
)

// SponsorService handles sponsor operations
type SponsorService struct {
	repo sponsorStore
}

// NewSponsorService creates a new sponsor service instance
func NewSponsorService(repo sponsorStore) *SponsorService {
	return &SponsorService{repo: repo}
}

// Create validates and stores a new sponsor
func (s *SponsorService) Create(ctx context.Context, req dto.CreateSponsorRequest) (int64, error) {
	if err := validation.Struct(req, "All fields are required."); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, repositories.SponsorRecord{
		OrganizationName: req.OrganizationName,
		ContactPerson:    req.ContactPerson,
		Contact:          req.Contact,
		Email:            req.Email,
		Address:          req.Address,
	})
	if err != nil {
		return 0, apperrors.NewPersistenceError(err)
	}
	return id, nil
}

// List returns every sponsor
func (s *SponsorService) List(ctx context.Context) ([]*models.Sponsor, error) {
	sponsors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return sponsors, nil
}

// Update applies the fields present in req
func (s *SponsorService) Update(ctx context.Context, id int64, req dto.UpdateSponsorRequest) error {
	changes := &repositories.Changes{}
	if err := setRequiredText(changes, "organization_name", req.OrganizationName); err != nil {
		return err
	}
	if err := setRequiredText(changes, "contact_person", req.ContactPerson); err != nil {
		return err
	}
	if err := setRequiredText(changes, "contact", req.Contact); err != nil {
		return err
	}
	if err := setRequiredText(changes, "email", req.Email); err != nil {
		return err
	}
	if err := setRequiredText(changes, "address", req.Address); err != nil {
		return err
	}

	if changes.Len() == 0 {
		return ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return mutationError(err, apperrors.ErrSponsorNotFound)
	}
	return nil
}

// Delete removes a sponsor
func (s *SponsorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mutationError(err, apperrors.ErrSponsorNotFound)
	}
	return nil
}
