package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/logger"
)

func datePtr(d pgtype.Date) *models.Date {
	if !d.Valid {
		return nil
	}
	md := models.NewDate(d.Time)
	return &md
}

func intPtr(n pgtype.Int4) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int32)
	return &v
}

// amountPtr renders a nullable NUMERIC as a JSON number or null
func amountPtr(n decimal.NullDecimal) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Decimal.InexactFloat64()
	return &v
}

func floatOf(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// selectAll builds and runs a SELECT and scans every row with scan. An empty
// result is a non-nil empty slice so it renders as [].
func selectAll[T any](ctx context.Context, db DBTX, query squirrel.Sqlizer, what string, scan func(pgx.Row) (T, error)) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error executing query")
		return nil, fmt.Errorf("error querying %s: %w", what, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			logger.Error().Err(err).Str("query", what).Msg("Error scanning row")
			return nil, fmt.Errorf("error scanning %s row: %w", what, err)
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", what, err)
	}
	return out, nil
}
