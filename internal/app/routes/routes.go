package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/controllers"
	"github.com/ssms/scholarship/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Student    *controllers.StudentController
	Sponsor    *controllers.SponsorController
	Program    *controllers.ProgramController
	Allocation *controllers.AllocationController
	Payment    *controllers.PaymentController
	Dashboard  *controllers.DashboardController
	Report     *controllers.ReportController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes. Paths keep the trailing
// slash used by existing clients.
func SetupRouter(router *gin.Engine, c Controllers) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(middleware.MethodNotAllowed())

	api := router.Group("/api")

	api.GET("/health", c.Health.Health)

	// --- Students ---
	api.POST("/add-student/", c.Student.AddStudent)
	api.GET("/show-students/", c.Student.ShowStudents)
	api.PUT("/update-student/:id/", c.Student.UpdateStudent)
	api.PATCH("/update-student/:id/", c.Student.UpdateStudent)
	api.DELETE("/delete-student/:id/", c.Student.DeleteStudent)

	// --- Sponsors ---
	api.POST("/add-sponsor/", c.Sponsor.AddSponsor)
	api.GET("/show-sponsors/", c.Sponsor.ShowSponsors)
	api.PUT("/update-sponsor/:id/", c.Sponsor.UpdateSponsor)
	api.PATCH("/update-sponsor/:id/", c.Sponsor.UpdateSponsor)
	api.DELETE("/delete-sponsor/:id/", c.Sponsor.DeleteSponsor)

	// --- Scholarship programs ---
	api.POST("/add-scholarship-program/", c.Program.AddProgram)
	api.GET("/show-programs/", c.Program.ShowPrograms)
	api.PUT("/update-program/:id/", c.Program.UpdateProgram)
	api.PATCH("/update-program/:id/", c.Program.UpdateProgram)
	api.DELETE("/delete-program/:id/", c.Program.DeleteProgram)

	// --- Sponsorship allocations ---
	api.POST("/add-allocation/", c.Allocation.AddAllocation)
	api.GET("/show-allocations/", c.Allocation.ShowAllocations)
	api.PUT("/update-allocation/:id/", c.Allocation.UpdateAllocation)
	api.PATCH("/update-allocation/:id/", c.Allocation.UpdateAllocation)
	api.DELETE("/delete-allocation/:id/", c.Allocation.DeleteAllocation)

	// --- Payments ---
	api.POST("/add-payment/", c.Payment.AddPayment)
	api.GET("/show-payments/", c.Payment.ShowPayments)
	api.PUT("/update-payment/:id/", c.Payment.UpdatePayment)
	api.PATCH("/update-payment/:id/", c.Payment.UpdatePayment)
	api.DELETE("/delete-payment/:id/", c.Payment.DeletePayment)

	// --- Dashboard ---
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/totals/", c.Dashboard.Totals)
		dashboard.GET("/recent-allocations/", c.Dashboard.RecentAllocations)
		dashboard.GET("/sponsorship-trends/", c.Dashboard.SponsorshipTrends)
		dashboard.GET("/students-by-university/", c.Dashboard.StudentsByUniversity)
		dashboard.GET("/sponsorship-status-distribution/", c.Dashboard.StatusDistribution)
		dashboard.GET("/sponsorship-status/", c.Dashboard.StatusDistribution)
		dashboard.GET("/payments-per-semester/", c.Dashboard.PaymentsPerSemester)
		dashboard.GET("/sponsor-contributions/", c.Dashboard.SponsorContributions)
		dashboard.GET("/students-by-year/", c.Dashboard.StudentsByYear)
		dashboard.GET("/gender-distribution/", c.Dashboard.GenderDistribution)
		dashboard.GET("/upcoming-end-dates/", c.Dashboard.UpcomingEndDates)
		dashboard.GET("/average-scholarship-amount/", c.Dashboard.AverageScholarshipAmount)
		dashboard.GET("/top-programs-by-funding/", c.Dashboard.TopProgramsByFunding)
		dashboard.GET("/top-programs/", c.Dashboard.TopProgramsByFunding)
	}

	// --- Reports ---
	report := api.Group("/report")
	{
		report.GET("/student-sponsorship/", c.Report.StudentSponsorship)
		report.GET("/payment-summary/", c.Report.PaymentSummary)
		report.GET("/sponsor-contribution/", c.Report.SponsorContribution)
		report.GET("/scholarship-program-summary/", c.Report.ProgramSummary)
		report.GET("/active-completed-sponsorships/", c.Report.ActiveCompletedSponsorships)
		report.GET("/students-per-university/", c.Report.StudentsPerUniversity)
		report.GET("/student-detail/:id/", c.Report.StudentDetail)
	}
}
