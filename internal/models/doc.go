// Package models defines the registrar's domain entities and persistence interfaces.
//
// The package contains three categories of types:
//
// 1. Registration entities: in-memory state owned by the registrar
//   - [Course] : Catalog entry with capacity and enrollment count
//   - [Student] : Roster entry with the ordered codes of registered courses
//
// 2. Display records: read-only snapshots handed to the CLI shell and TUI
//   - [CourseRecord] : Course listing row with available slots
//   - [StudentDetails] : Student with the titles of registered courses
//
// 3. Persistent entities: database-backed models
//   - [Activity] : One register/drop attempt and its outcome
//
// Persistent entities implement the [Model] interface; [Repository] defines data access for them.
package models
