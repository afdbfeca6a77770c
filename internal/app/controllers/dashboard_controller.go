package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/middleware"
	"github.com/ssms/scholarship/internal/pkg/helpers"
)

// DashboardService is the aggregation behaviour the dashboard needs
type DashboardService interface {
	Totals(ctx context.Context) (*models.DashboardTotals, error)
	RecentAllocations(ctx context.Context) ([]models.RecentAllocation, error)
	SponsorshipTrends(ctx context.Context, year *int) ([]models.MonthlyCount, error)
	StudentsByUniversity(ctx context.Context) ([]models.UniversityCount, error)
	StudentsByYear(ctx context.Context) ([]models.YearOfStudyCount, error)
	GenderDistribution(ctx context.Context) ([]models.GenderCount, error)
	StatusDistribution(ctx context.Context) ([]models.StatusCount, error)
	PaymentsPerSemester(ctx context.Context) ([]models.SemesterPayment, error)
	SponsorContributions(ctx context.Context) ([]models.SponsorContribution, error)
	AverageScholarshipAmount(ctx context.Context) ([]models.SponsorAverage, error)
	TopProgramsByFunding(ctx context.Context, limit *int) ([]models.ProgramFunding, error)
	UpcomingEndDates(ctx context.Context, months *int) ([]models.UpcomingEndDate, error)
}

// DashboardController serves the dashboard widgets
type DashboardController struct {
	dashboardService DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// respondData writes {"data": rows} or the error
func respondData(ctx *gin.Context, rows interface{}, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: rows})
}

// Totals returns the headline counters
// @Summary Dashboard totals
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardTotals
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/totals/ [get]
func (c *DashboardController) Totals(ctx *gin.Context) {
	totals, err := c.dashboardService.Totals(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, totals)
}

// RecentAllocations returns the latest allocations
// @Summary Most recent allocations
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.RecentAllocationsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/recent-allocations/ [get]
func (c *DashboardController) RecentAllocations(ctx *gin.Context) {
	rows, err := c.dashboardService.RecentAllocations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.RecentAllocationsResponse{RecentAllocations: rows})
}

// SponsorshipTrends returns allocations started per month
// @Summary Monthly allocation starts
// @Description Twelve entries, January to December. year defaults to the current year.
// @Tags dashboard
// @Produce json
// @Param year query int false "Calendar year, current year when omitted"
// @Success 200 {object} dto.DataResponse{data=[]models.MonthlyCount}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/sponsorship-trends/ [get]
func (c *DashboardController) SponsorshipTrends(ctx *gin.Context) {
	year, err := helpers.OptionalInt(ctx, "year")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	rows, err := c.dashboardService.SponsorshipTrends(ctx.Request.Context(), year)
	respondData(ctx, rows, err)
}

// StudentsByUniversity counts sponsored students per university
// @Summary Sponsored students per university
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]models.UniversityCount}
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/students-by-university/ [get]
func (c *DashboardController) StudentsByUniversity(ctx *gin.Context) {
	rows, err := c.dashboardService.StudentsByUniversity(ctx.Request.Context())
	respondData(ctx, rows, err)
}

// StudentsByYear counts sponsored students per year of study
// @Summary Sponsored students per year of study
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]models.YearOfStudyCount}
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/students-by-year/ [get]
func (c *DashboardController) StudentsByYear(ctx *gin.Context) {
	rows, err := c.dashboardService.StudentsByYear(ctx.Request.Context())
	respondData(ctx, rows, err)
}

// GenderDistribution counts sponsored students per gender
// @Summary Gender distribution
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]models.GenderCount}
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/gender-distribution/ [get]
func (c *DashboardController) GenderDistribution(ctx *gin.Context) {
	rows, err := c.dashboardService.GenderDistribution(ctx.Request.Context())
	respondData(ctx, rows, err)
}

// StatusDistribution counts allocations per status
// @Summary Allocation status distribution
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]models.StatusCount}
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/sponsorship-status-distribution/ [get]
func (c *DashboardController) StatusDistribution(ctx *gin.Context) {
	rows, err := c.dashboardService.StatusDistribution(ctx.Request.Context())
	respondData(ctx, rows, err)
}

// PaymentsPerSemester sums payments per semester label
// @Summary Payments per semester
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]models.SemesterPayment}
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/payments-per-semester/ [get]
func (c *DashboardController) PaymentsPerSemester(ctx *gin.Context) {
	rows, err := c.dashboardService.PaymentsPerSemester(ctx.Request.Context())
	respondData(ctx, rows, err)
}

// SponsorContributions sums active program amounts per sponsor
// @Summary Sponsor contributions
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]models.SponsorContribution}
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/sponsor-contributions/ [get]
func (c *DashboardController) SponsorContributions(ctx *gin.Context) {
	rows, err := c.dashboardService.SponsorContributions(ctx.Request.Context())
	respondData(ctx, rows, err)
}

// AverageScholarshipAmount averages per-student amounts per sponsor
// @Summary Average scholarship amount per sponsor
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]models.SponsorAverage}
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/average-scholarship-amount/ [get]
func (c *DashboardController) AverageScholarshipAmount(ctx *gin.Context) {
	rows, err := c.dashboardService.AverageScholarshipAmount(ctx.Request.Context())
	respondData(ctx, rows, err)
}

// TopProgramsByFunding ranks programs by per-student amount
// @Summary Top programs by funding
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of programs" default(5)
// @Success 200 {object} dto.DataResponse{data=[]models.ProgramFunding}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/top-programs-by-funding/ [get]
func (c *DashboardController) TopProgramsByFunding(ctx *gin.Context) {
	limit, err := helpers.OptionalInt(ctx, "limit")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	rows, err := c.dashboardService.TopProgramsByFunding(ctx.Request.Context(), limit)
	respondData(ctx, rows, err)
}

// UpcomingEndDates lists active allocations ending soon
// @Summary Upcoming allocation end dates
// @Description A month is counted as 30 days.
// @Tags dashboard
// @Produce json
// @Param months query int false "Window in months" default(18)
// @Success 200 {object} dto.DataResponse{data=[]models.UpcomingEndDate}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/upcoming-end-dates/ [get]
func (c *DashboardController) UpcomingEndDates(ctx *gin.Context) {
	months, err := helpers.OptionalInt(ctx, "months")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	rows, err := c.dashboardService.UpcomingEndDates(ctx.Request.Context(), months)
	respondData(ctx, rows, err)
}
