package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
	"github.com/ssms/scholarship/internal/pkg/helpers"
)

const (
	recentAllocationsLimit = 3
	daysPerMonth           = 30
	maxUpcomingMonths      = 1200
)

type dashboardStore interface {
	Totals(ctx context.Context) (*models.DashboardTotals, error)
	RecentAllocations(ctx context.Context, limit uint64) ([]models.RecentAllocation, error)
	MonthlyStarts(ctx context.Context, year int) ([]models.MonthlyCount, error)
	StudentsByUniversity(ctx context.Context) ([]models.UniversityCount, error)
	StudentsByYear(ctx context.Context) ([]models.YearOfStudyCount, error)
	StudentsByGender(ctx context.Context) ([]models.GenderCount, error)
	StatusDistribution(ctx context.Context) ([]models.StatusCount, error)
	PaymentsPerSemester(ctx context.Context) ([]models.SemesterPayment, error)
	SponsorContributions(ctx context.Context) ([]models.SponsorContribution, error)
	AverageAmountPerSponsor(ctx context.Context) ([]models.SponsorAverage, error)
	TopProgramsByFunding(ctx context.Context, limit uint64) ([]models.ProgramFunding, error)
	UpcomingEndDates(ctx context.Context, from, to time.Time) ([]models.UpcomingEndDate, error)
}

// DashboardService computes the dashboard aggregations
type DashboardService struct {
	repo     dashboardStore
	defaults ReportDefaults
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(repo dashboardStore, defaults ReportDefaults, now func() time.Time) *DashboardService {
	if defaults.TopPrograms < 1 {
		defaults.TopPrograms = 5
	}
	if defaults.UpcomingMonths < 0 || defaults.UpcomingMonths > maxUpcomingMonths {
		defaults.UpcomingMonths = 18
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardService{repo: repo, defaults: defaults, now: now}
}

// Totals returns the headline counters
func (s *DashboardService) Totals(ctx context.Context) (*models.DashboardTotals, error) {
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return totals, nil
}

// RecentAllocations returns the three latest allocations
func (s *DashboardService) RecentAllocations(ctx context.Context) ([]models.RecentAllocation, error) {
	rows, err := s.repo.RecentAllocations(ctx, recentAllocationsLimit)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// SponsorshipTrends returns exactly twelve monthly counts, January first.
// year defaults to the current year.
func (s *DashboardService) SponsorshipTrends(ctx context.Context, year *int) ([]models.MonthlyCount, error) {
	y := s.now().Year()
	if year != nil {
		y = *year
	}

	rows, err := s.repo.MonthlyStarts(ctx, y)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return fillMonths(rows), nil
}

func fillMonths(rows []models.MonthlyCount) []models.MonthlyCount {
	counts := make(map[int]int64, len(rows))
	for _, r := range rows {
		counts[r.MonthNumber] += r.Count
	}

	months := make([]models.MonthlyCount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, models.MonthlyCount{
			Month:       m.String(),
			MonthNumber: int(m),
			Count:       counts[int(m)],
		})
	}
	return months
}

// StudentsByUniversity counts sponsored students per university
func (s *DashboardService) StudentsByUniversity(ctx context.Context) ([]models.UniversityCount, error) {
	rows, err := s.repo.StudentsByUniversity(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// StudentsByYear counts sponsored students per year of study
func (s *DashboardService) StudentsByYear(ctx context.Context) ([]models.YearOfStudyCount, error) {
	rows, err := s.repo.StudentsByYear(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// GenderDistribution counts sponsored students per gender
func (s *DashboardService) GenderDistribution(ctx context.Context) ([]models.GenderCount, error) {
	rows, err := s.repo.StudentsByGender(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// StatusDistribution counts allocations per status
func (s *DashboardService) StatusDistribution(ctx context.Context) ([]models.StatusCount, error) {
	rows, err := s.repo.StatusDistribution(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// PaymentsPerSemester sums payments per semester and attaches the semester index
func (s *DashboardService) PaymentsPerSemester(ctx context.Context) ([]models.SemesterPayment, error) {
	rows, err := s.repo.PaymentsPerSemester(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	for i := range rows {
		if rows[i].Semester != nil {
			rows[i].SemesterIndex = SemesterIndex(*rows[i].Semester)
		}
	}
	return rows, nil
}

// SemesterIndex reads the trailing integer token of a semester label:
// "Semester 1" is 1, "2024 Sem 2" is 2, "Fall" has none.
func SemesterIndex(label string) *int {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return nil
	}
	return &n
}

// SponsorContributions sums active program amounts per sponsor
func (s *DashboardService) SponsorContributions(ctx context.Context) ([]models.SponsorContribution, error) {
	rows, err := s.repo.SponsorContributions(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// AverageScholarshipAmount averages program amounts per sponsor
func (s *DashboardService) AverageScholarshipAmount(ctx context.Context) ([]models.SponsorAverage, error) {
	rows, err := s.repo.AverageAmountPerSponsor(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// TopProgramsByFunding returns the best funded programs. limit defaults to
// the configured value and must be at least 1.
func (s *DashboardService) TopProgramsByFunding(ctx context.Context, limit *int) ([]models.ProgramFunding, error) {
	n := s.defaults.TopPrograms
	if limit != nil {
		if *limit < 1 {
			return nil, apperrors.NewInvalidQueryParamError("Invalid limit parameter: must be at least 1.")
		}
		n = *limit
	}

	rows, err := s.repo.TopProgramsByFunding(ctx, uint64(n))
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// UpcomingEndDates lists Active allocations ending between today and
// months*30 days from today, both ends included.
func (s *DashboardService) UpcomingEndDates(ctx context.Context, months *int) ([]models.UpcomingEndDate, error) {
	m := s.defaults.UpcomingMonths
	if months != nil {
		if *months < 0 {
			return nil, apperrors.NewInvalidQueryParamError("Invalid months parameter: must not be negative.")
		}
		if *months > maxUpcomingMonths {
			return nil, apperrors.NewInvalidQueryParamError(fmt.Sprintf("Invalid months parameter: must be at most %d.", maxUpcomingMonths))
		}
		m = *months
	}

	from, to := helpers.DaysAhead(s.now(), m*daysPerMonth)
	rows, err := s.repo.UpcomingEndDates(ctx, from, to)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}
