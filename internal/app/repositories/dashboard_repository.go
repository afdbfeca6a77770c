package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/logger"
)

// DashboardRepository runs the read-only dashboard aggregations
type DashboardRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db DBTX) *DashboardRepository {
	return &DashboardRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *DashboardRepository) scalar(ctx context.Context, query squirrel.SelectBuilder, what string, dest interface{}) error {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error building SQL")
		return fmt.Errorf("failed to build %s query: %w", what, err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(dest); err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error executing scalar query")
		return fmt.Errorf("error querying %s: %w", what, err)
	}
	return nil
}

// Totals issues five independent statements. They are not wrapped in a
// transaction, so the counters may come from slightly different snapshots.
func (r *DashboardRepository) Totals(ctx context.Context) (*models.DashboardTotals, error) {
	totals := &models.DashboardTotals{}

	counts := []struct {
		what  string
		query squirrel.SelectBuilder
		dest  *int64
	}{
		{"total students", r.sb.Select("COUNT(*)").From(studentsTable), &totals.TotalStudents},
		{"total sponsors", r.sb.Select("COUNT(*)").From(sponsorsTable), &totals.TotalSponsors},
		{"total programs", r.sb.Select("COUNT(*)").From(programsTable), &totals.TotalPrograms},
		{"total active allocations", r.sb.Select("COUNT(*)").From(allocationsTable).
			Where(squirrel.Eq{"status": string(models.StatusActive)}), &totals.TotalActiveAllocations},
	}

	for _, c := range counts {
		if err := r.scalar(ctx, c.query, c.what, c.dest); err != nil {
			return nil, err
		}
	}

	var sum decimal.Decimal
	if err := r.scalar(ctx, r.sb.Select("COALESCE(SUM(amount), 0)").From(paymentsTable), "total payments", &sum); err != nil {
		return nil, err
	}
	totals.TotalPayments = floatOf(sum)

	return totals, nil
}

// RecentAllocations returns the latest allocations by start date
func (r *DashboardRepository) RecentAllocations(ctx context.Context, limit uint64) ([]models.RecentAllocation, error) {
	query := r.sb.Select("s.name", "sp.program_name", "sa.start_date").
		From(allocationsTable + " sa").
		Join("students s ON sa.student_id = s.student_id").
		Join("scholarship_programs sp ON sa.program_id = sp.program_id").
		OrderBy("sa.start_date DESC").
		Limit(limit)

	return selectAll(ctx, r.db, query, "recent allocations", func(row pgx.Row) (models.RecentAllocation, error) {
		var ra models.RecentAllocation
		var start pgtype.Date
		if err := row.Scan(&ra.StudentName, &ra.ProgramName, &start); err != nil {
			return ra, err
		}
		ra.StartDate = datePtr(start)
		return ra, nil
	})
}

// MonthlyStarts counts allocations per start month of year. Months without
// allocations are absent from the result.
func (r *DashboardRepository) MonthlyStarts(ctx context.Context, year int) ([]models.MonthlyCount, error) {
	query := r.sb.Select("EXTRACT(MONTH FROM start_date)::int AS month", "COUNT(*) AS count").
		From(allocationsTable).
		Where("EXTRACT(YEAR FROM start_date) = ?", year).
		GroupBy("month").
		OrderBy("month")

	return selectAll(ctx, r.db, query, "sponsorship trends", func(row pgx.Row) (models.MonthlyCount, error) {
		var mc models.MonthlyCount
		err := row.Scan(&mc.MonthNumber, &mc.Count)
		return mc, err
	})
}

// sponsoredStudents is the distinct-student base of the by-attribute counts:
// only students holding at least one allocation are counted.
func (r *DashboardRepository) sponsoredStudents(group string) squirrel.SelectBuilder {
	return r.sb.Select(group, "COUNT(DISTINCT s.student_id) AS count").
		From(studentsTable + " s").
		Join("sponsorship_allocations sa ON s.student_id = sa.student_id").
		GroupBy(group)
}

// StudentsByUniversity groups sponsored students by university
func (r *DashboardRepository) StudentsByUniversity(ctx context.Context) ([]models.UniversityCount, error) {
	query := r.sponsoredStudents("COALESCE(s.university, 'Unknown')").
		OrderBy("count DESC", "1 ASC")

	return selectAll(ctx, r.db, query, "students by university", func(row pgx.Row) (models.UniversityCount, error) {
		var uc models.UniversityCount
		err := row.Scan(&uc.University, &uc.Count)
		return uc, err
	})
}

// StudentsByYear groups sponsored students by year of study. Students with
// no year recorded are left out.
func (r *DashboardRepository) StudentsByYear(ctx context.Context) ([]models.YearOfStudyCount, error) {
	query := r.sponsoredStudents("s.year_of_study").
		Where("s.year_of_study IS NOT NULL").
		OrderBy("s.year_of_study ASC")

	return selectAll(ctx, r.db, query, "students by year", func(row pgx.Row) (models.YearOfStudyCount, error) {
		var yc models.YearOfStudyCount
		err := row.Scan(&yc.YearOfStudy, &yc.Count)
		return yc, err
	})
}

// StudentsByGender groups sponsored students by gender, skipping NULL.
func (r *DashboardRepository) StudentsByGender(ctx context.Context) ([]models.GenderCount, error) {
	query := r.sponsoredStudents("s.gender").
		Where("s.gender IS NOT NULL").
		OrderBy("s.gender ASC")

	return selectAll(ctx, r.db, query, "gender distribution", func(row pgx.Row) (models.GenderCount, error) {
		var gc models.GenderCount
		err := row.Scan(&gc.Gender, &gc.Count)
		return gc, err
	})
}

// StatusDistribution counts allocations per status
func (r *DashboardRepository) StatusDistribution(ctx context.Context) ([]models.StatusCount, error) {
	query := r.sb.Select("status", "COUNT(*) AS count").
		From(allocationsTable).
		GroupBy("status").
		OrderBy("status ASC")

	return selectAll(ctx, r.db, query, "status distribution", func(row pgx.Row) (models.StatusCount, error) {
		var sc models.StatusCount
		err := row.Scan(&sc.Status, &sc.Count)
		return sc, err
	})
}

// PaymentsPerSemester sums payments per semester label. The semester index
// is derived by the caller.
func (r *DashboardRepository) PaymentsPerSemester(ctx context.Context) ([]models.SemesterPayment, error) {
	query := r.sb.Select("semester", "COALESCE(SUM(amount), 0) AS amount").
		From(paymentsTable).
		GroupBy("semester").
		OrderBy("semester ASC")

	return selectAll(ctx, r.db, query, "payments per semester", func(row pgx.Row) (models.SemesterPayment, error) {
		var sp models.SemesterPayment
		var amount decimal.Decimal
		if err := row.Scan(&sp.Semester, &amount); err != nil {
			return sp, err
		}
		sp.Amount = floatOf(amount)
		return sp, nil
	})
}

// SponsorContributions sums amount_per_student over each sponsor's programs.
// The status filter sits in WHERE over LEFT JOINs: a sponsor with no
// programs or no allocations still appears with 0, while allocations in
// any status other than Active are dropped from the sum.
func (r *DashboardRepository) SponsorContributions(ctx context.Context) ([]models.SponsorContribution, error) {
	query := r.sb.Select("sp.sponsor_id", "sp.organization_name", "COALESCE(SUM(p.amount_per_student), 0) AS total_amount").
		From(sponsorsTable + " sp").
		LeftJoin("scholarship_programs p ON sp.sponsor_id = p.sponsor_id").
		LeftJoin("sponsorship_allocations sa ON p.program_id = sa.program_id").
		Where(squirrel.Or{
			squirrel.Eq{"sa.status": string(models.StatusActive)},
			squirrel.Eq{"sa.status": nil},
		}).
		GroupBy("sp.sponsor_id", "sp.organization_name").
		OrderBy("total_amount DESC", "sp.sponsor_id ASC")

	return selectAll(ctx, r.db, query, "sponsor contributions", func(row pgx.Row) (models.SponsorContribution, error) {
		var sc models.SponsorContribution
		var total decimal.Decimal
		if err := row.Scan(&sc.SponsorID, &sc.SponsorName, &total); err != nil {
			return sc, err
		}
		sc.TotalAmount = floatOf(total)
		return sc, nil
	})
}

// AverageAmountPerSponsor averages amount_per_student over a sponsor's programs
func (r *DashboardRepository) AverageAmountPerSponsor(ctx context.Context) ([]models.SponsorAverage, error) {
	query := r.sb.Select("sp.sponsor_id", "sp.organization_name", "COALESCE(AVG(p.amount_per_student), 0) AS avg_amount").
		From(sponsorsTable + " sp").
		LeftJoin("scholarship_programs p ON sp.sponsor_id = p.sponsor_id").
		GroupBy("sp.sponsor_id", "sp.organization_name").
		OrderBy("sp.sponsor_id ASC")

	return selectAll(ctx, r.db, query, "average scholarship amount", func(row pgx.Row) (models.SponsorAverage, error) {
		var sa models.SponsorAverage
		var avg decimal.Decimal
		if err := row.Scan(&sa.SponsorID, &sa.SponsorName, &avg); err != nil {
			return sa, err
		}
		sa.AvgAmount = floatOf(avg)
		return sa, nil
	})
}

// TopProgramsByFunding returns the limit programs with the highest amount
func (r *DashboardRepository) TopProgramsByFunding(ctx context.Context, limit uint64) ([]models.ProgramFunding, error) {
	query := r.sb.Select("program_id", "program_name", "sponsor_id", "COALESCE(amount_per_student, 0)").
		From(programsTable).
		OrderBy("amount_per_student DESC NULLS LAST", "program_id ASC").
		Limit(limit)

	return selectAll(ctx, r.db, query, "top programs by funding", func(row pgx.Row) (models.ProgramFunding, error) {
		var pf models.ProgramFunding
		var amount decimal.Decimal
		if err := row.Scan(&pf.ProgramID, &pf.ProgramName, &pf.SponsorID, &amount); err != nil {
			return pf, err
		}
		pf.Amount = floatOf(amount)
		return pf, nil
	})
}

// UpcomingEndDates lists Active allocations ending within [from, to]
func (r *DashboardRepository) UpcomingEndDates(ctx context.Context, from, to time.Time) ([]models.UpcomingEndDate, error) {
	query := r.sb.Select("sa.allocation_id", "s.name", "p.program_name", "sa.end_date").
		From(allocationsTable + " sa").
		Join("students s ON sa.student_id = s.student_id").
		Join("scholarship_programs p ON sa.program_id = p.program_id").
		Where(squirrel.Eq{"sa.status": string(models.StatusActive)}).
		Where(squirrel.GtOrEq{"sa.end_date": from}).
		Where(squirrel.LtOrEq{"sa.end_date": to}).
		OrderBy("sa.end_date ASC", "sa.allocation_id ASC")

	return selectAll(ctx, r.db, query, "upcoming end dates", func(row pgx.Row) (models.UpcomingEndDate, error) {
		var u models.UpcomingEndDate
		var end pgtype.Date
		if err := row.Scan(&u.AllocationID, &u.StudentName, &u.ProgramName, &end); err != nil {
			return u, err
		}
		u.EndDate = datePtr(end)
		return u, nil
	})
}
