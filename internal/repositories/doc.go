// Package repositories implements SQLite persistence for the registrar's activity log.
//
// Key Implementations:
//   - [ActivityRepository] : Append-only log of register/drop attempts with student and course lookups
//   - [ActivityRecorder] : Adapter that lets the registrar write to the log without knowing about SQL
//
// Sequence numbers provide stable, human-readable ordering (e.g. activity #42) independent of UUIDs
// and creation timestamps. The [NextSequence] function atomically increments per-table counters kept in
// dedicated sequence tables.
package repositories
