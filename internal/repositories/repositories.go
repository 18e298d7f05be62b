// package repositories provides persistence layer implementations for all model types.
package repositories

import (
	"database/sql"
	"fmt"
)

// NextSequence atomically increments and returns the next sequence number for the given table.
//
// The table must have a companion "<table>_sequence" table seeded with a single row (id = 1).
func NextSequence(db *sql.DB, table string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequenceTable := table + "_sequence"

	var sequence int
	query := fmt.Sprintf("UPDATE %s SET value = value + 1 WHERE id = 1 RETURNING value", sequenceTable)
	if err := tx.QueryRow(query).Scan(&sequence); err != nil {
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sequence transaction: %w", err)
	}

	return sequence, nil
}
