package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/middleware"
)

// PaymentService is the payment behaviour the controller needs
type PaymentService interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (int64, error)
	List(ctx context.Context) ([]*models.Payment, error)
	Update(ctx context.Context, id int64, req dto.UpdatePaymentRequest) error
	Delete(ctx context.Context, id int64) error
}

// PaymentController handles payment endpoints
type PaymentController struct {
	paymentService PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// AddPayment records a disbursement
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment information"
// @Success 201 {object} dto.PaymentCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /add-payment/ [post]
func (c *PaymentController) AddPayment(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.paymentService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.PaymentCreatedResponse{
		Message:   "Payment added successfully!",
		PaymentID: id,
	})
}

// ShowPayments lists every payment
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {object} dto.PaymentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /show-payments/ [get]
func (c *PaymentController) ShowPayments(ctx *gin.Context) {
	payments, err := c.paymentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PaymentListResponse{Payments: payments})
}

// UpdatePayment applies a partial update
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /update-payment/{id}/ [put]
func (c *PaymentController) UpdatePayment(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.paymentService.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment updated successfully!"})
}

// DeletePayment removes a payment
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /delete-payment/{id}/ [delete]
func (c *PaymentController) DeletePayment(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.paymentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment deleted successfully!"})
}
