package shared

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// InMemoryDatabase is the sqlite DSN for a process-lifetime database.
const InMemoryDatabase = ":memory:"

// NewDatabase opens a connection to a SQLite database at the specified path.
// The path can be ":memory:" for an in-memory database.
func NewDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// ConfigureDatabase sets connection pool settings for the database.
//
// An in-memory database lives inside a single connection, so its pool is pinned to one connection
// regardless of the configured sizes.
func ConfigureDatabase(db *sql.DB, path string, maxOpenConns, maxIdleConns int) {
	if path == InMemoryDatabase {
		maxOpenConns, maxIdleConns = 1, 1
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
}

// OpenActivityDatabase opens, configures and migrates the activity log database described by cfg.
func OpenActivityDatabase(cfg DatabaseConfig) (*sql.DB, error) {
	db, err := NewDatabase(cfg.Path)
	if err != nil {
		return nil, err
	}

	ConfigureDatabase(db, cfg.Path, cfg.MaxOpenConns, cfg.MaxIdleConns)

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
