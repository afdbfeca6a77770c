package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/ssms/scholarship/internal/app/models"
)

// ReportRepository runs the filterable reports. Each report is a fixed base
// join; every filter that is set adds one bound AND predicate, always in the
// same order, and unset filters add nothing.
type ReportRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// predicate is one optional filter: applied only when set is true
type predicate struct {
	set  bool
	cond squirrel.Sqlizer
}

func applyPredicates(query squirrel.SelectBuilder, preds ...predicate) squirrel.SelectBuilder {
	for _, p := range preds {
		if p.set {
			query = query.Where(p.cond)
		}
	}
	return query
}

func universityPredicate(column string, f models.ReportFilters) predicate {
	p := predicate{set: f.University != nil}
	if p.set {
		p.cond = squirrel.Eq{column: *f.University}
	}
	return p
}

func yearOfStudyPredicate(column string, f models.ReportFilters) predicate {
	p := predicate{set: f.YearOfStudy != nil}
	if p.set {
		p.cond = squirrel.Eq{column: *f.YearOfStudy}
	}
	return p
}

func sponsorPredicate(column string, f models.ReportFilters) predicate {
	p := predicate{set: f.SponsorID != nil}
	if p.set {
		p.cond = squirrel.Eq{column: *f.SponsorID}
	}
	return p
}

func statusPredicate(column string, f models.ReportFilters) predicate {
	p := predicate{set: f.Status != nil}
	if p.set {
		p.cond = squirrel.Eq{column: *f.Status}
	}
	return p
}

func semesterPredicate(column string, f models.ReportFilters) predicate {
	p := predicate{set: f.Semester != nil}
	if p.set {
		p.cond = squirrel.Eq{column: *f.Semester}
	}
	return p
}

func dateFromPredicate(column string, f models.ReportFilters) predicate {
	p := predicate{set: f.DateFrom != nil}
	if p.set {
		p.cond = squirrel.GtOrEq{column: f.DateFrom.Time}
	}
	return p
}

func dateToPredicate(column string, f models.ReportFilters) predicate {
	p := predicate{set: f.DateTo != nil}
	if p.set {
		p.cond = squirrel.LtOrEq{column: f.DateTo.Time}
	}
	return p
}

// StudentSponsorship lists allocations with their student, program and sponsor
func (r *ReportRepository) StudentSponsorship(ctx context.Context, f models.ReportFilters) ([]models.StudentSponsorshipRow, error) {
	query := r.sb.Select("sa.allocation_id", "s.student_id", "s.name", "s.university", "s.year_of_study",
		"p.program_name", "sp.sponsor_id", "sp.organization_name", "sa.status").
		From(allocationsTable + " sa").
		Join("students s ON sa.student_id = s.student_id").
		Join("scholarship_programs p ON sa.program_id = p.program_id").
		Join("sponsors sp ON p.sponsor_id = sp.sponsor_id")

	query = applyPredicates(query,
		universityPredicate("s.university", f),
		yearOfStudyPredicate("s.year_of_study", f),
		sponsorPredicate("sp.sponsor_id", f),
		statusPredicate("sa.status", f),
	).OrderBy("sa.allocation_id ASC")

	return selectAll(ctx, r.db, query, "student sponsorship report", func(row pgx.Row) (models.StudentSponsorshipRow, error) {
		var out models.StudentSponsorshipRow
		var year pgtype.Int4
		if err := row.Scan(&out.AllocationID, &out.StudentID, &out.StudentName, &out.University, &year,
			&out.Program, &out.SponsorID, &out.Sponsor, &out.Status); err != nil {
			return out, err
		}
		out.YearOfStudy = intPtr(year)
		return out, nil
	})
}

// PaymentSummary lists payments with the student, program and sponsor they belong to
func (r *ReportRepository) PaymentSummary(ctx context.Context, f models.ReportFilters) ([]models.PaymentSummaryRow, error) {
	query := r.sb.Select("pay.payment_id", "pay.allocation_id", "s.name", "p.program_name", "sp.organization_name",
		"pay.amount", "pay.payment_date", "pay.semester").
		From(paymentsTable + " pay").
		Join("sponsorship_allocations sa ON pay.allocation_id = sa.allocation_id").
		Join("students s ON sa.student_id = s.student_id").
		Join("scholarship_programs p ON sa.program_id = p.program_id").
		Join("sponsors sp ON p.sponsor_id = sp.sponsor_id")

	query = applyPredicates(query,
		semesterPredicate("pay.semester", f),
		dateFromPredicate("pay.payment_date", f),
		dateToPredicate("pay.payment_date", f),
		sponsorPredicate("sp.sponsor_id", f),
	).OrderBy("pay.payment_date ASC", "pay.payment_id ASC")

	return selectAll(ctx, r.db, query, "payment summary report", func(row pgx.Row) (models.PaymentSummaryRow, error) {
		var out models.PaymentSummaryRow
		var amount decimal.NullDecimal
		var paid pgtype.Date
		if err := row.Scan(&out.PaymentID, &out.AllocationID, &out.Student, &out.Program, &out.Sponsor,
			&amount, &paid, &out.Semester); err != nil {
			return out, err
		}
		out.Amount = amountPtr(amount)
		out.Date = datePtr(paid)
		return out, nil
	})
}

// SponsorContribution totals disbursed payments and funded students per sponsor
func (r *ReportRepository) SponsorContribution(ctx context.Context, f models.ReportFilters) ([]models.SponsorContributionRow, error) {
	query := r.sb.Select("sp.sponsor_id", "sp.organization_name",
		"COALESCE(SUM(pay.amount), 0) AS total_amount", "COUNT(DISTINCT sa.student_id) AS num_students").
		From(sponsorsTable + " sp").
		Join("scholarship_programs p ON sp.sponsor_id = p.sponsor_id").
		Join("sponsorship_allocations sa ON p.program_id = sa.program_id").
		Join("payments pay ON sa.allocation_id = pay.allocation_id")

	query = applyPredicates(query,
		sponsorPredicate("sp.sponsor_id", f),
		dateFromPredicate("pay.payment_date", f),
		dateToPredicate("pay.payment_date", f),
	).GroupBy("sp.sponsor_id", "sp.organization_name").
		OrderBy("total_amount DESC", "sp.sponsor_id ASC")

	return selectAll(ctx, r.db, query, "sponsor contribution report", func(row pgx.Row) (models.SponsorContributionRow, error) {
		var out models.SponsorContributionRow
		var total decimal.Decimal
		if err := row.Scan(&out.SponsorID, &out.Sponsor, &total, &out.NumStudents); err != nil {
			return out, err
		}
		out.TotalAmount = floatOf(total)
		return out, nil
	})
}

// ProgramSummary lists programs with their sponsor and funded student count
func (r *ReportRepository) ProgramSummary(ctx context.Context, f models.ReportFilters) ([]models.ProgramSummaryRow, error) {
	query := r.sb.Select("p.program_id", "p.sponsor_id", "sp.organization_name", "p.program_name",
		"p.amount_per_student", "p.duration", "COUNT(DISTINCT sa.student_id) AS student_count").
		From(programsTable + " p").
		Join("sponsors sp ON p.sponsor_id = sp.sponsor_id").
		LeftJoin("sponsorship_allocations sa ON p.program_id = sa.program_id")

	query = applyPredicates(query,
		sponsorPredicate("p.sponsor_id", f),
	).GroupBy("p.program_id", "p.sponsor_id", "sp.organization_name", "p.program_name", "p.amount_per_student", "p.duration").
		OrderBy("p.program_id ASC")

	return selectAll(ctx, r.db, query, "program summary report", func(row pgx.Row) (models.ProgramSummaryRow, error) {
		var out models.ProgramSummaryRow
		var amount decimal.NullDecimal
		if err := row.Scan(&out.ProgramID, &out.SponsorID, &out.Sponsor, &out.ProgramName,
			&amount, &out.Duration, &out.StudentCount); err != nil {
			return out, err
		}
		out.AmountPerStudent = amountPtr(amount)
		return out, nil
	})
}

// AllocationsByStatus lists allocations, optionally narrowed to one status
func (r *ReportRepository) AllocationsByStatus(ctx context.Context, f models.ReportFilters) ([]models.AllocationStatusRow, error) {
	query := r.sb.Select("sa.allocation_id", "s.name", "p.program_name", "sa.start_date", "sa.end_date", "sa.status").
		From(allocationsTable + " sa").
		Join("students s ON sa.student_id = s.student_id").
		Join("scholarship_programs p ON sa.program_id = p.program_id")

	query = applyPredicates(query,
		statusPredicate("sa.status", f),
	).OrderBy("sa.status ASC", "sa.allocation_id ASC")

	return selectAll(ctx, r.db, query, "allocation status report", func(row pgx.Row) (models.AllocationStatusRow, error) {
		var out models.AllocationStatusRow
		var start, end pgtype.Date
		if err := row.Scan(&out.AllocationID, &out.Student, &out.Program, &start, &end, &out.Status); err != nil {
			return out, err
		}
		out.StartDate = datePtr(start)
		out.EndDate = datePtr(end)
		return out, nil
	})
}

// StudentsPerUniversity counts all registered students per university
func (r *ReportRepository) StudentsPerUniversity(ctx context.Context, f models.ReportFilters) ([]models.UniversityCount, error) {
	query := r.sb.Select("COALESCE(university, 'Unknown') AS university", "COUNT(*) AS count").
		From(studentsTable)

	query = applyPredicates(query,
		universityPredicate("university", f),
		yearOfStudyPredicate("year_of_study", f),
	).GroupBy("COALESCE(university, 'Unknown')").
		OrderBy("count DESC", "university ASC")

	return selectAll(ctx, r.db, query, "students per university report", func(row pgx.Row) (models.UniversityCount, error) {
		var out models.UniversityCount
		err := row.Scan(&out.University, &out.Count)
		return out, err
	})
}

// StudentAllocations lists one student's allocations with program and sponsor names
func (r *ReportRepository) StudentAllocations(ctx context.Context, studentID int64) ([]models.StudentAllocationRow, error) {
	query := r.sb.Select("sa.allocation_id", "p.program_name", "sp.organization_name", "sa.start_date", "sa.end_date", "sa.status").
		From(allocationsTable + " sa").
		Join("scholarship_programs p ON sa.program_id = p.program_id").
		Join("sponsors sp ON p.sponsor_id = sp.sponsor_id").
		Where(squirrel.Eq{"sa.student_id": studentID}).
		OrderBy("sa.start_date ASC", "sa.allocation_id ASC")

	return selectAll(ctx, r.db, query, "student allocations", func(row pgx.Row) (models.StudentAllocationRow, error) {
		var out models.StudentAllocationRow
		var start, end pgtype.Date
		if err := row.Scan(&out.AllocationID, &out.Program, &out.Sponsor, &start, &end, &out.Status); err != nil {
			return out, err
		}
		out.StartDate = datePtr(start)
		out.EndDate = datePtr(end)
		return out, nil
	})
}
