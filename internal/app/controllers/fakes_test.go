package controllers

import (
	"context"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
)

type fakeStudentService struct {
	created  []dto.CreateStudentRequest
	updated  map[int64]dto.UpdateStudentRequest
	deleted  []int64
	students []*models.Student
	err      error
}

func (f *fakeStudentService) Create(_ context.Context, req dto.CreateStudentRequest) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, req)
	return int64(len(f.created)), nil
}

func (f *fakeStudentService) List(context.Context) ([]*models.Student, error) {
	return f.students, f.err
}

func (f *fakeStudentService) Update(_ context.Context, id int64, req dto.UpdateStudentRequest) error {
	if f.err != nil {
		return f.err
	}
	if f.updated == nil {
		f.updated = map[int64]dto.UpdateStudentRequest{}
	}
	f.updated[id] = req
	return nil
}

func (f *fakeStudentService) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePaymentService struct {
	created []dto.CreatePaymentRequest
	err     error
}

func (f *fakePaymentService) Create(_ context.Context, req dto.CreatePaymentRequest) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, req)
	return 7, nil
}

func (f *fakePaymentService) List(context.Context) ([]*models.Payment, error) {
	return []*models.Payment{}, f.err
}

func (f *fakePaymentService) Update(context.Context, int64, dto.UpdatePaymentRequest) error {
	return f.err
}

func (f *fakePaymentService) Delete(context.Context, int64) error {
	return f.err
}

type fakeDashboardService struct {
	totals *models.DashboardTotals
	trends []models.MonthlyCount
	top    []models.ProgramFunding
	recent []models.RecentAllocation

	year   *int
	limit  *int
	months *int
	err    error
}

func (f *fakeDashboardService) Totals(context.Context) (*models.DashboardTotals, error) {
	return f.totals, f.err
}

func (f *fakeDashboardService) RecentAllocations(context.Context) ([]models.RecentAllocation, error) {
	return f.recent, f.err
}

func (f *fakeDashboardService) SponsorshipTrends(_ context.Context, year *int) ([]models.MonthlyCount, error) {
	f.year = year
	return f.trends, f.err
}

func (f *fakeDashboardService) StudentsByUniversity(context.Context) ([]models.UniversityCount, error) {
	return []models.UniversityCount{}, f.err
}

func (f *fakeDashboardService) StudentsByYear(context.Context) ([]models.YearOfStudyCount, error) {
	return []models.YearOfStudyCount{}, f.err
}

func (f *fakeDashboardService) GenderDistribution(context.Context) ([]models.GenderCount, error) {
	return []models.GenderCount{}, f.err
}

func (f *fakeDashboardService) StatusDistribution(context.Context) ([]models.StatusCount, error) {
	return []models.StatusCount{}, f.err
}

func (f *fakeDashboardService) PaymentsPerSemester(context.Context) ([]models.SemesterPayment, error) {
	return []models.SemesterPayment{}, f.err
}

func (f *fakeDashboardService) SponsorContributions(context.Context) ([]models.SponsorContribution, error) {
	return []models.SponsorContribution{}, f.err
}

func (f *fakeDashboardService) AverageScholarshipAmount(context.Context) ([]models.SponsorAverage, error) {
	return []models.SponsorAverage{}, f.err
}

func (f *fakeDashboardService) TopProgramsByFunding(_ context.Context, limit *int) ([]models.ProgramFunding, error) {
	f.limit = limit
	return f.top, f.err
}

func (f *fakeDashboardService) UpcomingEndDates(_ context.Context, months *int) ([]models.UpcomingEndDate, error) {
	f.months = months
	return []models.UpcomingEndDate{}, f.err
}

type fakeReportService struct {
	filters models.ReportFilters
	detail  *models.StudentDetail
	err     error
}

func (f *fakeReportService) StudentSponsorship(_ context.Context, fl models.ReportFilters) ([]models.StudentSponsorshipRow, error) {
	f.filters = fl
	return []models.StudentSponsorshipRow{}, f.err
}

func (f *fakeReportService) PaymentSummary(_ context.Context, fl models.ReportFilters) ([]models.PaymentSummaryRow, error) {
	f.filters = fl
	return []models.PaymentSummaryRow{}, f.err
}

func (f *fakeReportService) SponsorContribution(_ context.Context, fl models.ReportFilters) ([]models.SponsorContributionRow, error) {
	f.filters = fl
	return []models.SponsorContributionRow{}, f.err
}

func (f *fakeReportService) ProgramSummary(_ context.Context, fl models.ReportFilters) ([]models.ProgramSummaryRow, error) {
	f.filters = fl
	return []models.ProgramSummaryRow{}, f.err
}

func (f *fakeReportService) ActiveCompletedSponsorships(_ context.Context, fl models.ReportFilters) ([]models.AllocationStatusRow, error) {
	f.filters = fl
	return []models.AllocationStatusRow{}, f.err
}

func (f *fakeReportService) StudentsPerUniversity(_ context.Context, fl models.ReportFilters) ([]models.UniversityCount, error) {
	f.filters = fl
	return []models.UniversityCount{}, f.err
}

func (f *fakeReportService) StudentDetail(_ context.Context, id int64) (*models.StudentDetail, error) {
	return f.detail, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }
