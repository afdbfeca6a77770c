package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ssms/scholarship/internal/pkg/dberrors"
	"github.com/ssms/scholarship/internal/pkg/logger"
)

// ErrNotFound is returned when an update or delete matches no row
var ErrNotFound = errors.New("record not found")

// DBTX is the subset of *pgxpool.Pool the repositories use. Accepting the
// interface lets tests substitute an in-memory double.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	SponsorRepository    *SponsorRepository
	ProgramRepository    *ProgramRepository
	AllocationRepository *AllocationRepository
	PaymentRepository    *PaymentRepository
	DashboardRepository  *DashboardRepository
	ReportRepository     *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		SponsorRepository:    NewSponsorRepository(db),
		ProgramRepository:    NewProgramRepository(db),
		AllocationRepository: NewAllocationRepository(db),
		PaymentRepository:    NewPaymentRepository(db),
		DashboardRepository:  NewDashboardRepository(db),
		ReportRepository:     NewReportRepository(db),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Changes is an ordered list of column assignments for a sparse update.
// Columns are written in the order they were set.
type Changes struct {
	columns []string
	values  []interface{}
}

// Set records an assignment; setting a column twice keeps the last value
func (c *Changes) Set(column string, value interface{}) {
	for i, col := range c.columns {
		if col == column {
			c.values[i] = value
			return
		}
	}
	c.columns = append(c.columns, column)
	c.values = append(c.values, value)
}

// Len reports the number of assigned columns
func (c *Changes) Len() int {
	return len(c.columns)
}

// Columns returns the assigned column names in order
func (c *Changes) Columns() []string {
	out := make([]string, len(c.columns))
	copy(out, c.columns)
	return out
}

// Value returns the value assigned to column
func (c *Changes) Value(column string) (interface{}, bool) {
	for i, col := range c.columns {
		if col == column {
			return c.values[i], true
		}
	}
	return nil, false
}

// updateByID applies changes to the row of table identified by idColumn = id
func updateByID(ctx context.Context, db DBTX, table, idColumn string, id int64, changes *Changes) error {
	if changes == nil || changes.Len() == 0 {
		return fmt.Errorf("no columns to update on %s", table)
	}

	builder := statementBuilder().Update(table)
	for i, col := range changes.columns {
		builder = builder.Set(col, changes.values[i])
	}

	sql, args, err := builder.Where(squirrel.Eq{idColumn: id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building update SQL")
		return fmt.Errorf("failed to build update %s query: %w", table, err)
	}

	cmdTag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Int64("id", id).
			Str("violation", dberrors.Classify(err)).Msg("Error executing update query")
		return fmt.Errorf("error updating %s: %w", table, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteByID removes the row of table identified by idColumn = id
func deleteByID(ctx context.Context, db DBTX, table, idColumn string, id int64) error {
	sql, args, err := statementBuilder().Delete(table).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building delete SQL")
		return fmt.Errorf("failed to build delete %s query: %w", table, err)
	}

	cmdTag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Int64("id", id).
			Str("violation", dberrors.Classify(err)).Msg("Error executing delete query")
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// insertReturningID runs an INSERT ... RETURNING idColumn and returns the key
func insertReturningID(ctx context.Context, db DBTX, table, idColumn string, columns []string, values []interface{}) (int64, error) {
	sql, args, err := statementBuilder().Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + idColumn).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building insert SQL")
		return 0, fmt.Errorf("failed to build insert %s query: %w", table, err)
	}

	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("table", table).
			Str("violation", dberrors.Classify(err)).Msg("Error executing insert query")
		return 0, fmt.Errorf("error inserting into %s: %w", table, err)
	}
	return id, nil
}
