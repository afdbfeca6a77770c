package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/middleware"
)

// AllocationService is the allocation behaviour the controller needs
type AllocationService interface {
	Create(ctx context.Context, req dto.CreateAllocationRequest) (int64, error)
	List(ctx context.Context) ([]*models.SponsorshipAllocation, error)
	Update(ctx context.Context, id int64, req dto.UpdateAllocationRequest) error
	Delete(ctx context.Context, id int64) error
}

// AllocationController handles sponsorship allocation endpoints
type AllocationController struct {
	allocationService AllocationService
}

// NewAllocationController creates a new AllocationController
func NewAllocationController(allocationService AllocationService) *AllocationController {
	return &AllocationController{allocationService: allocationService}
}

// AddAllocation handles allocation creation
// @Summary Allocate a program to a student
// @Description status defaults to Active when omitted
// @Tags allocations
// @Accept json
// @Produce json
// @Param request body dto.CreateAllocationRequest true "Allocation information"
// @Success 201 {object} dto.AllocationCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /add-allocation/ [post]
func (c *AllocationController) AddAllocation(ctx *gin.Context) {
	var req dto.CreateAllocationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.allocationService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AllocationCreatedResponse{
		Message:      "Sponsorship allocation added successfully!",
		AllocationID: id,
	})
}

// ShowAllocations lists every allocation
// @Summary List sponsorship allocations
// @Tags allocations
// @Produce json
// @Success 200 {object} dto.AllocationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /show-allocations/ [get]
func (c *AllocationController) ShowAllocations(ctx *gin.Context) {
	allocations, err := c.allocationService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AllocationListResponse{Allocations: allocations})
}

// UpdateAllocation applies a partial update
// @Summary Update a sponsorship allocation
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path int true "Allocation ID"
// @Param request body dto.UpdateAllocationRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /update-allocation/{id}/ [put]
func (c *AllocationController) UpdateAllocation(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateAllocationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.allocationService.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Sponsorship allocation updated successfully!"})
}

// DeleteAllocation removes an allocation
// @Summary Delete a sponsorship allocation
// @Tags allocations
// @Produce json
// @Param id path int true "Allocation ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /delete-allocation/{id}/ [delete]
func (c *AllocationController) DeleteAllocation(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.allocationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Sponsorship allocation deleted successfully!"})
}
