package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/middleware"
	"github.com/ssms/scholarship/internal/pkg/helpers"
)

// ReportService is the reporting behaviour the controller needs
type ReportService interface {
	StudentSponsorship(ctx context.Context, f models.ReportFilters) ([]models.StudentSponsorshipRow, error)
	PaymentSummary(ctx context.Context, f models.ReportFilters) ([]models.PaymentSummaryRow, error)
	SponsorContribution(ctx context.Context, f models.ReportFilters) ([]models.SponsorContributionRow, error)
	ProgramSummary(ctx context.Context, f models.ReportFilters) ([]models.ProgramSummaryRow, error)
	ActiveCompletedSponsorships(ctx context.Context, f models.ReportFilters) ([]models.AllocationStatusRow, error)
	StudentsPerUniversity(ctx context.Context, f models.ReportFilters) ([]models.UniversityCount, error)
	StudentDetail(ctx context.Context, studentID int64) (*models.StudentDetail, error)
}

// ReportController serves the filterable reports
type ReportController struct {
	reportService ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// filters parses the report query string, writing the error response on failure
func filters(ctx *gin.Context) (models.ReportFilters, bool) {
	f, err := helpers.ReportFilters(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return f, false
	}
	return f, true
}

// StudentSponsorship lists allocations with student, program and sponsor
// @Summary Student sponsorship report
// @Tags reports
// @Produce json
// @Param university query string false "University"
// @Param year_of_study query int false "Year of study"
// @Param sponsor_id query int false "Sponsor ID"
// @Param status query string false "Allocation status"
// @Success 200 {object} dto.DataResponse{data=[]models.StudentSponsorshipRow}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /report/student-sponsorship/ [get]
func (c *ReportController) StudentSponsorship(ctx *gin.Context) {
	f, ok := filters(ctx)
	if !ok {
		return
	}
	rows, err := c.reportService.StudentSponsorship(ctx.Request.Context(), f)
	respondData(ctx, rows, err)
}

// PaymentSummary lists payments with their student, program and sponsor
// @Summary Payment summary report
// @Tags reports
// @Produce json
// @Param semester query string false "Semester label"
// @Param date_from query string false "Earliest payment date (YYYY-MM-DD)"
// @Param date_to query string false "Latest payment date (YYYY-MM-DD)"
// @Param sponsor_id query int false "Sponsor ID"
// @Success 200 {object} dto.DataResponse{data=[]models.PaymentSummaryRow}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /report/payment-summary/ [get]
func (c *ReportController) PaymentSummary(ctx *gin.Context) {
	f, ok := filters(ctx)
	if !ok {
		return
	}
	rows, err := c.reportService.PaymentSummary(ctx.Request.Context(), f)
	respondData(ctx, rows, err)
}

// SponsorContribution sums disbursed payments per sponsor
// @Summary Sponsor contribution report
// @Tags reports
// @Produce json
// @Param sponsor_id query int false "Sponsor ID"
// @Param date_from query string false "Earliest payment date (YYYY-MM-DD)"
// @Param date_to query string false "Latest payment date (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse{data=[]models.SponsorContributionRow}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /report/sponsor-contribution/ [get]
func (c *ReportController) SponsorContribution(ctx *gin.Context) {
	f, ok := filters(ctx)
	if !ok {
		return
	}
	rows, err := c.reportService.SponsorContribution(ctx.Request.Context(), f)
	respondData(ctx, rows, err)
}

// ProgramSummary lists programs with their student counts
// @Summary Scholarship program summary report
// @Tags reports
// @Produce json
// @Param sponsor_id query int false "Sponsor ID"
// @Success 200 {object} dto.DataResponse{data=[]models.ProgramSummaryRow}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /report/scholarship-program-summary/ [get]
func (c *ReportController) ProgramSummary(ctx *gin.Context) {
	f, ok := filters(ctx)
	if !ok {
		return
	}
	rows, err := c.reportService.ProgramSummary(ctx.Request.Context(), f)
	respondData(ctx, rows, err)
}

// ActiveCompletedSponsorships lists allocations by status
// @Summary Active and completed sponsorships report
// @Tags reports
// @Produce json
// @Param status query string false "Allocation status"
// @Success 200 {object} dto.DataResponse{data=[]models.AllocationStatusRow}
// @Failure 500 {object} dto.ErrorResponse
// @Router /report/active-completed-sponsorships/ [get]
func (c *ReportController) ActiveCompletedSponsorships(ctx *gin.Context) {
	f, ok := filters(ctx)
	if !ok {
		return
	}
	rows, err := c.reportService.ActiveCompletedSponsorships(ctx.Request.Context(), f)
	respondData(ctx, rows, err)
}

// StudentsPerUniversity counts students per university
// @Summary Students per university report
// @Tags reports
// @Produce json
// @Param university query string false "University"
// @Param year_of_study query int false "Year of study"
// @Success 200 {object} dto.DataResponse{data=[]models.UniversityCount}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /report/students-per-university/ [get]
func (c *ReportController) StudentsPerUniversity(ctx *gin.Context) {
	f, ok := filters(ctx)
	if !ok {
		return
	}
	rows, err := c.reportService.StudentsPerUniversity(ctx.Request.Context(), f)
	respondData(ctx, rows, err)
}

// StudentDetail returns one student with allocations and payments
// @Summary Student detail report
// @Tags reports
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentDetail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /report/student-detail/{id}/ [get]
func (c *ReportController) StudentDetail(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	detail, err := c.reportService.StudentDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
