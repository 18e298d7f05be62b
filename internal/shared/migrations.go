package shared

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migration represents a database migration with up and down SQL.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// parseMigrationName splits "0000_create_activity_up.sql" into (0, "create_activity", "up").
func parseMigrationName(filename string) (version int, name, direction string, ok bool) {
	base, found := strings.CutSuffix(filename, ".sql")
	if !found {
		return 0, "", "", false
	}

	switch {
	case strings.HasSuffix(base, "_up"):
		direction, base = "up", strings.TrimSuffix(base, "_up")
	case strings.HasSuffix(base, "_down"):
		direction, base = "down", strings.TrimSuffix(base, "_down")
	default:
		return 0, "", "", false
	}

	prefix, rest, found := strings.Cut(base, "_")
	if !found {
		return 0, "", "", false
	}

	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", "", false
	}
	return version, rest, direction, true
}

// loadMigrations reads all migration files from the embedded filesystem and returns them sorted by version.
func loadMigrations() ([]Migration, error) {
	entries, err := migrationFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	byVersion := make(map[int]*Migration)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		version, name, direction, ok := parseMigrationName(entry.Name())
		if !ok {
			continue
		}

		content, err := migrationFiles.ReadFile(path.Join("sql", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		m, exists := byVersion[version]
		if !exists {
			m = &Migration{Version: version, Name: name}
			byVersion[version] = m
		}

		if direction == "up" {
			m.Up = string(content)
		} else {
			m.Down = string(content)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" || m.Down == "" {
			return nil, fmt.Errorf("incomplete migration for version %d", m.Version)
		}
		migrations = append(migrations, *m)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// RunMigrations executes all pending migrations on the database.
// Creates a schema_migrations table to track applied migrations.
func RunMigrations(db *sql.DB) error {
	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := AppliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := execMigration(db, m.Up, "INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// RollbackMigration rolls back the most recently applied migration.
func RollbackMigration(db *sql.DB) error {
	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	var current sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if !current.Valid {
		return fmt.Errorf("no migrations to rollback")
	}

	for _, m := range migrations {
		if int64(m.Version) == current.Int64 {
			if err := execMigration(db, m.Down, "DELETE FROM schema_migrations WHERE version = ?", m.Version); err != nil {
				return fmt.Errorf("failed to rollback migration %d: %w", m.Version, err)
			}
			return nil
		}
	}

	return fmt.Errorf("migration version %d not found", current.Int64)
}

// AppliedMigrations returns the set of versions recorded in schema_migrations.
func AppliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to check migration status: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func createMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := db.Exec(query)
	return err
}

// execMigration runs each statement of script and then the bookkeeping statement in one transaction.
func execMigration(db *sql.DB, script, bookkeeping string, version int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(removeComments(stmt))
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute statement: %w\nStatement: %s", err, stmt)
		}
	}

	if _, err := tx.Exec(bookkeeping, version); err != nil {
		return err
	}

	return tx.Commit()
}

// removeComments strips "--" line comments from a statement.
func removeComments(stmt string) string {
	var kept []string
	for _, line := range strings.Split(stmt, "\n") {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
