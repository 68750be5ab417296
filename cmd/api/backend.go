package main

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"advocates/internal/config"
	"advocates/internal/database"
	"advocates/internal/database/migration"
	"advocates/internal/dataset"
	"advocates/internal/model"
	"advocates/internal/repository"
	"advocates/internal/repository/memory"
	"advocates/internal/repository/postgres"
	"advocates/internal/repository/sqlite"
	"advocates/internal/storage"
)

// backend is the advocate repository the API serves from, plus its database when it has one.
type backend struct {
	repo repository.AdvocateRepository
	db   *sql.DB
}

func (b *backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// loadSeed reads the advocate dataset, opening object storage only when the seed lives there.
func loadSeed(ctx context.Context, cfg *config.AppConfig) ([]model.Advocate, error) {
	var store storage.Storage
	if cfg.Seed.Source == config.SeedSourceObject {
		s, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("initialize object storage: %w", err)
		}
		store = s
	}
	return dataset.Load(ctx, cfg.Seed, store)
}

// openBackend builds the repository selected by DATA_SOURCE. SQL backends are
// migrated and seeded once when their table is empty.
func openBackend(ctx context.Context, cfg *config.AppConfig, seed []model.Advocate, log *zap.Logger) (*backend, error) {
	switch cfg.DataSource {
	case config.DataSourceMemory, "":
		return &backend{repo: memory.NewAdvocateMemory(seed)}, nil

	case config.DataSourcePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		repo := postgres.NewAdvocatePostgres(db)
		if err := prepare(ctx, db, migration.DialectPostgres, repo, seed, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &backend{repo: repo, db: db}, nil

	case config.DataSourceSQLite:
		db, err := database.NewSQLite(cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		repo := sqlite.NewAdvocateSQLite(db)
		if err := prepare(ctx, db, migration.DialectSQLite, repo, seed, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &backend{repo: repo, db: db}, nil

	default:
		return nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}
}

func prepare(ctx context.Context, db *sql.DB, d migration.Dialect, s repository.AdvocateSeeder, seed []model.Advocate, log *zap.Logger) error {
	if err := migration.EnsureMigrated(ctx, db, d, log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if _, err := dataset.SeedIfEmpty(ctx, s, seed, log); err != nil {
		return err
	}
	return nil
}
