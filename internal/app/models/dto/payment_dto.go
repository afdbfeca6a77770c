package dto

import (
	"github.com/shopspring/decimal"
	"github.com/ssms/scholarship/internal/app/models"
)

// CreatePaymentRequest is the body of POST /add-payment/
type CreatePaymentRequest struct {
	AllocationID FlexInt64        `json:"allocation_id" validate:"required"`
	Amount       *decimal.Decimal `json:"amount"`
	PaymentDate  string           `json:"payment_date" validate:"required,datetime=2006-01-02"`
	Semester     string           `json:"semester" validate:"required"`
}

// UpdatePaymentRequest carries only the fields to change
type UpdatePaymentRequest struct {
	AllocationID *FlexInt64       `json:"allocation_id"`
	Amount       *decimal.Decimal `json:"amount"`
	PaymentDate  *string          `json:"payment_date"`
	Semester     *string          `json:"semester"`
}

// PaymentCreatedResponse is returned after a payment is inserted
type PaymentCreatedResponse struct {
	Message   string `json:"message" example:"Payment added successfully!"`
	PaymentID int64  `json:"payment_id" example:"1"`
}

// PaymentListResponse is the body of GET /show-payments/
type PaymentListResponse struct {
	Payments []*models.Payment `json:"payments"`
}
