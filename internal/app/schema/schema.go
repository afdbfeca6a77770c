// Package schema installs the relational schema the service runs on.
package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ssms/scholarship/internal/db"
)

//go:embed schema.sql
var ddl string

// Tables lists the managed tables in dependency order (parents first).
var Tables = []string{
	"students",
	"sponsors",
	"scholarship_programs",
	"sponsorship_allocations",
	"payments",
}

// DDL returns the embedded schema script
func DDL() string {
	return ddl
}

// Statements splits the embedded script into individual statements.
// The script contains no procedural bodies, so splitting on ';' is safe.
func Statements() []string {
	parts := strings.Split(ddl, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// Apply creates any missing tables and indexes. Every statement is
// IF NOT EXISTS, so running it against an installed database is a no-op.
func Apply(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	stmts := Statements()
	err := db.WithTransaction(ctx, pool, func(ctx context.Context, tx pgx.Tx) error {
		for i, stmt := range stmts {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement %d failed: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Int("statements", len(stmts)).Strs("tables", Tables).Msg("Schema verified")
	return nil
}
