package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last step; its presence means the schema is complete.
const sentinelTable = "public.book_authors"

var steps = []migrationStep{
	{
		Name: "create_table_books",
		SQL: `CREATE TABLE IF NOT EXISTS books (
  id        UUID     PRIMARY KEY,
  title     TEXT     NOT NULL,
  year      SMALLINT NOT NULL DEFAULT 0,
  genre     TEXT     NOT NULL DEFAULT '',
  pages     INTEGER  NOT NULL DEFAULT 0,
  publisher TEXT     NOT NULL DEFAULT '',
  file      TEXT
);`,
	},
	{
		Name: "create_table_authors",
		SQL: `CREATE TABLE IF NOT EXISTS authors (
  id          UUID PRIMARY KEY,
  firstname   TEXT NOT NULL,
  lastname    TEXT NOT NULL,
  middlename  TEXT,
  birth_date  DATE,
  death_date  DATE,
  description TEXT
);`,
	},
	{
		// author_id has no foreign key: deleting an author leaves its association rows behind.
		Name: "create_table_book_authors",
		SQL: `CREATE TABLE IF NOT EXISTS book_authors (
  book_id   UUID NOT NULL REFERENCES books (id) ON DELETE CASCADE,
  author_id UUID NOT NULL,
  PRIMARY KEY (book_id, author_id)
);`,
	},
	{
		Name: "create_index_book_authors_author_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_book_authors_author_id ON book_authors (author_id);`,
	},
}

// EnsureMigrated checks if the schema exists and runs the migration steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()
	logger := log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	logger.Info().Str("event", "db_migration_check").Msg("checking schema")

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinelTable)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logger.Error().Err(err).
			Str("event", "db_migration_failed").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info().
			Str("event", "db_migration_skip").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	logger.Info().Str("event", "db_migration_start").Msg("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logger.Info().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	logger.Info().
		Str("event", "db_migration_success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema migrated")

	return nil
}
