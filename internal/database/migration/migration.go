package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Dialect selects the SQL flavour of the schema steps.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type migrationStep struct {
	Name string
	SQL  string
}

var postgresSteps = []migrationStep{
	{
		Name: "create_extension_pg_trgm",
		SQL:  `CREATE EXTENSION IF NOT EXISTS pg_trgm;`,
	},
	{
		Name: "create_table_advocates",
		SQL: `CREATE TABLE IF NOT EXISTS advocates (
  id                  TEXT        PRIMARY KEY,
  first_name          TEXT        NOT NULL,
  last_name           TEXT        NOT NULL,
  city                TEXT        NOT NULL,
  degree              TEXT        NOT NULL,
  specialties         JSONB       NOT NULL DEFAULT '[]'::jsonb,
  years_of_experience INTEGER     NOT NULL CHECK (years_of_experience >= 0),
  phone_number        TEXT        NOT NULL,
  search_text         TEXT        NOT NULL,
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_advocates_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_advocates_name ON advocates (last_name, first_name, id);`,
	},
	{
		Name: "create_index_advocates_search_text_trgm",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_advocates_search_text_trgm ON advocates USING gin (search_text gin_trgm_ops);`,
	},
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_advocates",
		SQL: `CREATE TABLE IF NOT EXISTS advocates (
  id                  TEXT    PRIMARY KEY,
  first_name          TEXT    NOT NULL,
  last_name           TEXT    NOT NULL,
  city                TEXT    NOT NULL,
  degree              TEXT    NOT NULL,
  specialties         TEXT    NOT NULL DEFAULT '[]',
  years_of_experience INTEGER NOT NULL CHECK (years_of_experience >= 0),
  phone_number        TEXT    NOT NULL,
  search_text         TEXT    NOT NULL,
  created_at          TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
	},
	{
		Name: "create_index_advocates_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_advocates_name ON advocates (last_name, first_name, id);`,
	},
}

var sentinelQueries = map[Dialect]string{
	DialectPostgres: `SELECT to_regclass('public.advocates') IS NOT NULL`,
	DialectSQLite:   `SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'advocates')`,
}

func stepsFor(d Dialect) ([]migrationStep, error) {
	switch d {
	case DialectPostgres:
		return postgresSteps, nil
	case DialectSQLite:
		return sqliteSteps, nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %q", d)
	}
}

// EnsureMigrated checks if the 'advocates' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, d Dialect, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("dialect", string(d)))

	steps, err := stepsFor(d)
	if err != nil {
		return err
	}

	log.Info("db_migration_check", zap.String("event", "db_migration_check"), zap.String("status", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQueries[d]).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("event", "db_migration_failed"),
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.String("event", "db_migration_skip"),
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("event", "db_migration_start"), zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("event", "db_migration_failed"),
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("event", "db_migration_step"),
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("event", "db_migration_success"),
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
