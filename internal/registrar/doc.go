// Package registrar owns the course catalog and the student roster and exposes the operations the
// CLI shell and TUI call into.
//
// # Operations
//
//   - [Registrar.ListCourses] : catalog in insertion order
//   - [Registrar.FindCourse], [Registrar.FindStudent] : direct key lookup, returning copies
//   - [Registrar.Register], [Registrar.Drop] : membership changes that keep both sides consistent
//   - [Registrar.DescribeStudent] : student with registered course titles in registration order
//   - [Registrar.Check] : verifies the enrollment invariants across the whole state
//
// # Consistency
//
// A course's enrollment count always equals the number of students holding its code, no student holds
// a code twice, and enrollment never leaves [0, capacity]. Every exported method takes the registrar's
// single mutex, so a register or drop is one critical section from lookup to mutation.
//
// # Errors
//
// Lookups fail with shared.ErrStudentNotFound or shared.ErrCourseNotFound (student is resolved first).
// Rejected operations wrap both the category (shared.ErrRegistrationFailed, shared.ErrDropFailed) and the
// cause (shared.ErrCourseFull, shared.ErrAlreadyRegistered, shared.ErrNotRegistered), so callers can match
// either with errors.Is.
//
// # Activity
//
// An optional [Recorder] receives every register/drop attempt after the lock is released. Recorder
// failures are logged and never change the operation's result.
package registrar
