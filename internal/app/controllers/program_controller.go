package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/middleware"
)

// ProgramService is the scholarship program behaviour the controller needs
type ProgramService interface {
	Create(ctx context.Context, req dto.CreateProgramRequest) (int64, error)
	List(ctx context.Context) ([]*models.ScholarshipProgram, error)
	Update(ctx context.Context, id int64, req dto.UpdateProgramRequest) error
	Delete(ctx context.Context, id int64) error
}

// ProgramController handles scholarship program endpoints
type ProgramController struct {
	programService ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

// AddProgram handles program creation
// @Summary Add a scholarship program
// @Tags programs
// @Accept json
// @Produce json
// @Param request body dto.CreateProgramRequest true "Program information"
// @Success 201 {object} dto.ProgramCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /add-scholarship-program/ [post]
func (c *ProgramController) AddProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.programService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ProgramCreatedResponse{
		Message:   "Scholarship program added successfully!",
		ProgramID: id,
	})
}

// ShowPrograms lists every program
// @Summary List scholarship programs
// @Tags programs
// @Produce json
// @Success 200 {object} dto.ProgramListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /show-programs/ [get]
func (c *ProgramController) ShowPrograms(ctx *gin.Context) {
	programs, err := c.programService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProgramListResponse{Programs: programs})
}

// UpdateProgram applies a partial update
// @Summary Update a scholarship program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param request body dto.UpdateProgramRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /update-program/{id}/ [put]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateProgramRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.programService.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Scholarship program updated successfully!"})
}

// DeleteProgram removes a program
// @Summary Delete a scholarship program
// @Tags programs
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /delete-program/{id}/ [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.programService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Scholarship program deleted successfully!"})
}
