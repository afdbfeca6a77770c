package services

import (
	"context"
	"time"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/repositories"
)

type fakeStudentStore struct {
	created  []repositories.StudentRecord
	updated  *repositories.Changes
	students map[int64]*models.Student
	err      error
}

func (f *fakeStudentStore) Create(_ context.Context, rec repositories.StudentRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, rec)
	return int64(len(f.created)), nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) List(context.Context) ([]*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*models.Student{}
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, id int64, changes *repositories.Changes) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.students[id]; !ok {
		return repositories.ErrNotFound
	}
	f.updated = changes
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.students[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeAllocationStore struct {
	created []repositories.AllocationRecord
	updated *repositories.Changes
	err     error
}

func (f *fakeAllocationStore) Create(_ context.Context, rec repositories.AllocationRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, rec)
	return int64(len(f.created)), nil
}

func (f *fakeAllocationStore) List(context.Context) ([]*models.SponsorshipAllocation, error) {
	return []*models.SponsorshipAllocation{}, f.err
}

func (f *fakeAllocationStore) Update(_ context.Context, _ int64, changes *repositories.Changes) error {
	f.updated = changes
	return f.err
}

func (f *fakeAllocationStore) Delete(context.Context, int64) error {
	return f.err
}

type fakeSponsorStore struct {
	created []repositories.SponsorRecord
	err     error
}

func (f *fakeSponsorStore) Create(_ context.Context, rec repositories.SponsorRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, rec)
	return int64(len(f.created)), nil
}

func (f *fakeSponsorStore) List(context.Context) ([]*models.Sponsor, error) {
	return []*models.Sponsor{}, f.err
}

func (f *fakeSponsorStore) Update(context.Context, int64, *repositories.Changes) error { return f.err }
func (f *fakeSponsorStore) Delete(context.Context, int64) error                        { return f.err }

type fakeProgramStore struct {
	created []repositories.ProgramRecord
	err     error
}

func (f *fakeProgramStore) Create(_ context.Context, rec repositories.ProgramRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, rec)
	return int64(len(f.created)), nil
}

func (f *fakeProgramStore) List(context.Context) ([]*models.ScholarshipProgram, error) {
	return []*models.ScholarshipProgram{}, f.err
}

func (f *fakeProgramStore) Update(context.Context, int64, *repositories.Changes) error { return f.err }
func (f *fakeProgramStore) Delete(context.Context, int64) error                        { return f.err }

type fakePaymentStore struct {
	created   []repositories.PaymentRecord
	byStudent []*models.Payment
	err       error
}

func (f *fakePaymentStore) Create(_ context.Context, rec repositories.PaymentRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, rec)
	return int64(len(f.created)), nil
}

func (f *fakePaymentStore) List(context.Context) ([]*models.Payment, error) {
	return []*models.Payment{}, f.err
}

func (f *fakePaymentStore) ListByStudent(context.Context, int64) ([]*models.Payment, error) {
	return f.byStudent, f.err
}

func (f *fakePaymentStore) Update(context.Context, int64, *repositories.Changes) error { return f.err }
func (f *fakePaymentStore) Delete(context.Context, int64) error                        { return f.err }

type fakeDashboardStore struct {
	monthly    []models.MonthlyCount
	semesters  []models.SemesterPayment
	topLimit   uint64
	from, to   time.Time
	err        error
	yearAsked  int
	totals     *models.DashboardTotals
	recentSize uint64
}

func (f *fakeDashboardStore) Totals(context.Context) (*models.DashboardTotals, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.totals == nil {
		return &models.DashboardTotals{}, nil
	}
	return f.totals, nil
}

func (f *fakeDashboardStore) RecentAllocations(_ context.Context, limit uint64) ([]models.RecentAllocation, error) {
	f.recentSize = limit
	return []models.RecentAllocation{}, f.err
}

func (f *fakeDashboardStore) MonthlyStarts(_ context.Context, year int) ([]models.MonthlyCount, error) {
	f.yearAsked = year
	return f.monthly, f.err
}

func (f *fakeDashboardStore) StudentsByUniversity(context.Context) ([]models.UniversityCount, error) {
	return []models.UniversityCount{}, f.err
}

func (f *fakeDashboardStore) StudentsByYear(context.Context) ([]models.YearOfStudyCount, error) {
	return []models.YearOfStudyCount{}, f.err
}

func (f *fakeDashboardStore) StudentsByGender(context.Context) ([]models.GenderCount, error) {
	return []models.GenderCount{}, f.err
}

func (f *fakeDashboardStore) StatusDistribution(context.Context) ([]models.StatusCount, error) {
	return []models.StatusCount{}, f.err
}

func (f *fakeDashboardStore) PaymentsPerSemester(context.Context) ([]models.SemesterPayment, error) {
	return f.semesters, f.err
}

func (f *fakeDashboardStore) SponsorContributions(context.Context) ([]models.SponsorContribution, error) {
	return []models.SponsorContribution{}, f.err
}

func (f *fakeDashboardStore) AverageAmountPerSponsor(context.Context) ([]models.SponsorAverage, error) {
	return []models.SponsorAverage{}, f.err
}

func (f *fakeDashboardStore) TopProgramsByFunding(_ context.Context, limit uint64) ([]models.ProgramFunding, error) {
	f.topLimit = limit
	return []models.ProgramFunding{}, f.err
}

func (f *fakeDashboardStore) UpcomingEndDates(_ context.Context, from, to time.Time) ([]models.UpcomingEndDate, error) {
	f.from, f.to = from, to
	return []models.UpcomingEndDate{}, f.err
}

type fakeReportStore struct {
	lastFilters models.ReportFilters
	allocations []models.StudentAllocationRow
	err         error
}

func (f *fakeReportStore) StudentSponsorship(_ context.Context, fl models.ReportFilters) ([]models.StudentSponsorshipRow, error) {
	f.lastFilters = fl
	return []models.StudentSponsorshipRow{}, f.err
}

func (f *fakeReportStore) PaymentSummary(_ context.Context, fl models.ReportFilters) ([]models.PaymentSummaryRow, error) {
	f.lastFilters = fl
	return []models.PaymentSummaryRow{}, f.err
}

func (f *fakeReportStore) SponsorContribution(_ context.Context, fl models.ReportFilters) ([]models.SponsorContributionRow, error) {
	f.lastFilters = fl
	return []models.SponsorContributionRow{}, f.err
}

func (f *fakeReportStore) ProgramSummary(_ context.Context, fl models.ReportFilters) ([]models.ProgramSummaryRow, error) {
	f.lastFilters = fl
	return []models.ProgramSummaryRow{}, f.err
}

func (f *fakeReportStore) AllocationsByStatus(_ context.Context, fl models.ReportFilters) ([]models.AllocationStatusRow, error) {
	f.lastFilters = fl
	return []models.AllocationStatusRow{}, f.err
}

func (f *fakeReportStore) StudentsPerUniversity(_ context.Context, fl models.ReportFilters) ([]models.UniversityCount, error) {
	f.lastFilters = fl
	return []models.UniversityCount{}, f.err
}

func (f *fakeReportStore) StudentAllocations(context.Context, int64) ([]models.StudentAllocationRow, error) {
	return f.allocations, f.err
}
