package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"resume-parser/internal/common"
)

// Open connects to the configured database. Postgres (pgx) is the service
// backend; SQLite covers the batch CLI's --inmem mode and tests. The SQL in
// this package sticks to the dialect intersection ($N placeholders,
// ON CONFLICT upserts), so one implementation serves both.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "pgx"
	}
	dsn := cfg.DSN
	if driver == "sqlite" && dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	logger.Info("db.open", "driver", driver)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		logger.Error("db.open.failed", "driver", driver, "error", err)
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	}
	if cfg.MaxConnIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// HealthCheck pings the database, bounded by timeout when > 0.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("db.ping")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}

// Close closes the database connection gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("db.close.failed", "error", err)
		return
	}
	logger.Info("db.closed")
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS resume_files (
		id           TEXT PRIMARY KEY,
		source_path  TEXT NOT NULL,
		file_ext     TEXT NOT NULL,
		content_hash TEXT NOT NULL UNIQUE,
		uploaded_at  TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS parse_jobs (
		id           TEXT PRIMARY KEY,
		file_id      TEXT NOT NULL REFERENCES resume_files(id),
		status       TEXT NOT NULL,
		resume_text  TEXT NOT NULL DEFAULT '',
		needs_review BOOLEAN NOT NULL DEFAULT FALSE,
		error_text   TEXT NOT NULL DEFAULT '',
		raw_json     TEXT NOT NULL DEFAULT '',
		started_at   TIMESTAMP NOT NULL,
		finished_at  TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS resumes (
		id          TEXT PRIMARY KEY,
		file_id     TEXT NOT NULL UNIQUE REFERENCES resume_files(id),
		job_id      TEXT NOT NULL,
		full_name   TEXT NOT NULL DEFAULT '',
		email       TEXT NOT NULL DEFAULT '',
		phone       TEXT NOT NULL DEFAULT '',
		skills      TEXT NOT NULL DEFAULT '[]',
		education   TEXT NOT NULL DEFAULT '[]',
		total_years REAL NOT NULL DEFAULT 0,
		companies   TEXT NOT NULL DEFAULT '[]',
		edited      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMP NOT NULL,
		updated_at  TIMESTAMP NOT NULL
	)`,
}

// Migrate applies the schema. Idempotent; safe on startup.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("db.migrate.failed", "error", err)
			return fmt.Errorf("migrate: %w", err)
		}
	}
	logger.Info("db.migrate.ok", "statements", len(migrations))
	return nil
}
