package services

import (
	"context"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/app/repositories"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
	"github.com/ssms/scholarship/internal/pkg/validation"
)

const paymentRequiredMessage = "allocation_id, amount, payment_date, and semester are required."

// PaymentService handles payment operations
type PaymentService struct {
	repo paymentStore
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(repo paymentStore) *PaymentService {
	return &PaymentService{repo: repo}
}

// Create validates and stores a new payment
func (s *PaymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (int64, error) {
	if err := validation.Struct(req, paymentRequiredMessage); err != nil {
		return 0, err
	}
	if req.Amount == nil || req.Amount.IsZero() {
		return 0, apperrors.NewValidationError(paymentRequiredMessage)
	}

	paid, err := parseDateField("payment_date", req.PaymentDate)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, repositories.PaymentRecord{
		AllocationID: req.AllocationID.Int64(),
		Amount:       *req.Amount,
		PaymentDate:  paid,
		Semester:     req.Semester,
	})
	if err != nil {
		return 0, apperrors.NewPersistenceError(err)
	}
	return id, nil
}

// List returns every payment
func (s *PaymentService) List(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return payments, nil
}

// Update applies the fields present in req
func (s *PaymentService) Update(ctx context.Context, id int64, req dto.UpdatePaymentRequest) error {
	changes := &repositories.Changes{}
	if req.AllocationID != nil {
		changes.Set("allocation_id", req.AllocationID.Int64())
	}
	if req.Amount != nil {
		changes.Set("amount", *req.Amount)
	}
	if req.PaymentDate != nil {
		paid, err := parseDateField("payment_date", *req.PaymentDate)
		if err != nil {
			return err
		}
		changes.Set("payment_date", paid)
	}
	if err := setRequiredText(changes, "semester", req.Semester); err != nil {
		return err
	}

	if changes.Len() == 0 {
		return ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return mutationError(err, apperrors.ErrPaymentNotFound)
	}
	return nil
}

// Delete removes a payment
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mutationError(err, apperrors.ErrPaymentNotFound)
	}
	return nil
}
