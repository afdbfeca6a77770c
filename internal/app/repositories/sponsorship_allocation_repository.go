package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/logger"
)

const (
	allocationsTable   = "sponsorship_allocations"
	allocationIDColumn = "allocation_id"
)

// AllocationRecord holds the values of a new sponsorship_allocations row
type AllocationRecord struct {
	StudentID int64
	ProgramID int64
	StartDate time.Time
	EndDate   time.Time
	Status    string
}

// AllocationRepository handles sponsorship allocation database operations
type AllocationRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewAllocationRepository creates a new AllocationRepository
func NewAllocationRepository(db DBTX) *AllocationRepository {
	return &AllocationRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts an allocation and returns the generated allocation_id
func (r *AllocationRepository) Create(ctx context.Context, rec AllocationRecord) (int64, error) {
	return insertReturningID(ctx, r.db, allocationsTable, allocationIDColumn,
		[]string{"student_id", "program_id", "start_date", "end_date", "status"},
		[]interface{}{rec.StudentID, rec.ProgramID, rec.StartDate, rec.EndDate, rec.Status},
	)
}

func scanAllocation(row pgx.Row) (*models.SponsorshipAllocation, error) {
	a := &models.SponsorshipAllocation{}
	var start, end pgtype.Date
	if err := row.Scan(&a.ID, &a.StudentID, &a.ProgramID, &start, &end, &a.Status); err != nil {
		return nil, err
	}
	a.StartDate = datePtr(start)
	a.EndDate = datePtr(end)
	return a, nil
}

// List returns every allocation ordered by allocation_id
func (r *AllocationRepository) List(ctx context.Context) ([]*models.SponsorshipAllocation, error) {
	sql, args, err := r.sb.Select("allocation_id", "student_id", "program_id", "start_date", "end_date", "status").
		From(allocationsTable).
		OrderBy("allocation_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list allocations SQL")
		return nil, fmt.Errorf("failed to build list allocations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list allocations query")
		return nil, fmt.Errorf("error querying sponsorship allocations: %w", err)
	}
	defer rows.Close()

	allocations := []*models.SponsorshipAllocation{}
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning allocation row during list")
			return nil, fmt.Errorf("error scanning sponsorship allocation row: %w", err)
		}
		allocations = append(allocations, a)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating allocation rows")
		return nil, fmt.Errorf("error iterating sponsorship allocation rows: %w", err)
	}
	return allocations, nil
}

// Update writes only the columns present in changes
func (r *AllocationRepository) Update(ctx context.Context, id int64, changes *Changes) error {
	return updateByID(ctx, r.db, allocationsTable, allocationIDColumn, id, changes)
}

// Delete removes an allocation by id
func (r *AllocationRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, allocationsTable, allocationIDColumn, id)
}
