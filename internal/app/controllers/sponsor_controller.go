package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/middleware"
)

// SponsorService is the sponsor behaviour the controller needs
type SponsorService interface {
	Create(ctx context.Context, req dto.CreateSponsorRequest) (int64, error)
	List(ctx context.Context) ([]*models.Sponsor, error)
	Update(ctx context.Context, id int64, req dto.UpdateSponsorRequest) error
	Delete(ctx context.Context, id int64) error
}

// SponsorController handles sponsor endpoints
type SponsorController struct {
	sponsorService SponsorService
}

// NewSponsorController creates a new SponsorController
func NewSponsorController(sponsorService SponsorService) *SponsorController {
	return &SponsorController{sponsorService: sponsorService}
}

// AddSponsor handles sponsor creation
// @Summary Add a sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Param request body dto.CreateSponsorRequest true "Sponsor information"
// @Success 201 {object} dto.SponsorCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /add-sponsor/ [post]
func (c *SponsorController) AddSponsor(ctx *gin.Context) {
	var req dto.CreateSponsorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.sponsorService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SponsorCreatedResponse{
		Message:   "Sponsor added successfully!",
		SponsorID: id,
	})
}

// ShowSponsors lists every sponsor
// @Summary List sponsors
// @Tags sponsors
// @Produce json
// @Success 200 {object} dto.SponsorListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /show-sponsors/ [get]
func (c *SponsorController) ShowSponsors(ctx *gin.Context) {
	sponsors, err := c.sponsorService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SponsorListResponse{Sponsors: sponsors})
}

// UpdateSponsor applies a partial update
// @Summary Update a sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Param id path int true "Sponsor ID"
// @Param request body dto.UpdateSponsorRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /update-sponsor/{id}/ [put]
func (c *SponsorController) UpdateSponsor(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateSponsorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.sponsorService.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Sponsor updated successfully!"})
}

// DeleteSponsor removes a sponsor
// @Summary Delete a sponsor
// @Tags sponsors
// @Produce json
// @Param id path int true "Sponsor ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Storage failure, e.g. the sponsor still has programs"
// @Failure 404 {object} dto.ErrorResponse
// @Router /delete-sponsor/{id}/ [delete]
func (c *SponsorController) DeleteSponsor(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.sponsorService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Sponsor deleted successfully!"})
}
