package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/logger"
)

const (
	programsTable   = "scholarship_programs"
	programIDColumn = "program_id"
)

// ProgramRecord holds the values of a new scholarship_programs row
type ProgramRecord struct {
	SponsorID        int64
	ProgramName      string
	AmountPerStudent decimal.Decimal
	Duration         string
}

// ProgramRepository handles scholarship program database operations
type ProgramRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a program and returns the generated program_id
func (r *ProgramRepository) Create(ctx context.Context, rec ProgramRecord) (int64, error) {
	return insertReturningID(ctx, r.db, programsTable, programIDColumn,
		[]string{"sponsor_id", "program_name", "amount_per_student", "duration"},
		[]interface{}{rec.SponsorID, rec.ProgramName, rec.AmountPerStudent, rec.Duration},
	)
}

func scanProgram(row pgx.Row) (*models.ScholarshipProgram, error) {
	p := &models.ScholarshipProgram{}
	var amount decimal.NullDecimal
	if err := row.Scan(&p.ID, &p.SponsorID, &p.ProgramName, &amount, &p.Duration); err != nil {
		return nil, err
	}
	p.AmountPerStudent = amountPtr(amount)
	return p, nil
}

// List returns every program ordered by program_id
func (r *ProgramRepository) List(ctx context.Context) ([]*models.ScholarshipProgram, error) {
	sql, args, err := r.sb.Select("program_id", "sponsor_id", "program_name", "amount_per_student", "duration").
		From(programsTable).
		OrderBy("program_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list programs SQL")
		return nil, fmt.Errorf("failed to build list programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list programs query")
		return nil, fmt.Errorf("error querying scholarship programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.ScholarshipProgram{}
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning program row during list")
			return nil, fmt.Errorf("error scanning scholarship program row: %w", err)
		}
		programs = append(programs, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating program rows")
		return nil, fmt.Errorf("error iterating scholarship program rows: %w", err)
	}
	return programs, nil
}

// Update writes only the columns present in changes
func (r *ProgramRepository) Update(ctx context.Context, id int64, changes *Changes) error {
	return updateByID(ctx, r.db, programsTable, programIDColumn, id, changes)
}

// Delete removes a program by id
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, programsTable, programIDColumn, id)
}
