package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/logger"
)

const (
	sponsorsTable   = "sponsors"
	sponsorIDColumn = "sponsor_id"
)

// SponsorRecord holds the values of a new sponsors row
type SponsorRecord struct {
	OrganizationName string
	ContactPerson    string
	Contact          string
	Email            string
	Address          string
}

// SponsorRepository handles sponsor database operations
type SponsorRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewSponsorRepository creates a new SponsorRepository
func NewSponsorRepository(db DBTX) *SponsorRepository {
	return &SponsorRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a sponsor and returns the generated sponsor_id
func (r *SponsorRepository) Create(ctx context.Context, rec SponsorRecord) (int64, error) {
	return insertReturningID(ctx, r.db, sponsorsTable, sponsorIDColumn,
		[]string{"organization_name", "contact_person", "contact", "email", "address"},
		[]interface{}{rec.OrganizationName, rec.ContactPerson, rec.Contact, rec.Email, rec.Address},
	)
}

func scanSponsor(row pgx.Row) (*models.Sponsor, error) {
	s := &models.Sponsor{}
	if err := row.Scan(&s.ID, &s.OrganizationName, &s.ContactPerson, &s.Contact, &s.Email, &s.Address); err != nil {
		return nil, err
	}
	return s, nil
}

// List returns every sponsor ordered by sponsor_id
func (r *SponsorRepository) List(ctx context.Context) ([]*models.Sponsor, error) {
	sql, args, err := r.sb.Select("sponsor_id", "organization_name", "contact_person", "contact", "email", "address").
		From(sponsorsTable).
		OrderBy("sponsor_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list sponsors SQL")
		return nil, fmt.Errorf("failed to build list sponsors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list sponsors query")
		return nil, fmt.Errorf("error querying sponsors: %w", err)
	}
	defer rows.Close()

	sponsors := []*models.Sponsor{}
	for rows.Next() {
		s, err := scanSponsor(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning sponsor row during list")
			return nil, fmt.Errorf("error scanning sponsor row: %w", err)
		}
		sponsors = append(sponsors, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating sponsor rows")
		return nil, fmt.Errorf("error iterating sponsor rows: %w", err)
	}
	return sponsors, nil
}

// Update writes only the columns present in changes
func (r *SponsorRepository) Update(ctx context.Context, id int64, changes *Changes) error {
	return updateByID(ctx, r.db, sponsorsTable, sponsorIDColumn, id, changes)
}

// Delete removes a sponsor by id. Programs that reference it are left to
// the foreign key constraint.
func (r *SponsorRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, sponsorsTable, sponsorIDColumn, id)
}
