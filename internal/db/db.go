package db

import (
	"database/sql"
	"fmt"

	"routesweep/internal/logger"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the SQLite database at path and runs migrations.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	version := 0
	// Try to read current version
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS leg_cache (
				origin      TEXT NOT NULL,
				destination TEXT NOT NULL,
				window_key  TEXT NOT NULL,
				options     TEXT NOT NULL,
				fetched_at  TEXT NOT NULL,
				PRIMARY KEY (origin, destination, window_key)
			);
			CREATE INDEX IF NOT EXISTS idx_leg_cache_fetched ON leg_cache(fetched_at);

			CREATE TABLE IF NOT EXISTS run_history (
				id            INTEGER PRIMARY KEY AUTOINCREMENT,
				started_at    TEXT NOT NULL,
				finished_at   TEXT NOT NULL,
				total_routes  INTEGER NOT NULL,
				skipped       INTEGER NOT NULL,
				done          INTEGER NOT NULL,
				failed        INTEGER NOT NULL,
				rejected      INTEGER NOT NULL DEFAULT 0,
				errored       INTEGER NOT NULL DEFAULT 0,
				legs_searched INTEGER NOT NULL,
				legs_saved    INTEGER NOT NULL,
				cancelled     INTEGER NOT NULL DEFAULT 0,
				duration_ms   INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_run_history_started ON run_history(started_at);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		logger.Info("DB", "Applied migration v1")
	}

	return nil
}

// SqlDB returns the underlying *sql.DB for use by other packages.
func (d *DB) SqlDB() *sql.DB {
	return d.sql
}
