package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Lookup errors
	ErrStudentNotFound = fmt.Errorf("student not found")
	ErrCourseNotFound  = fmt.Errorf("course not found")

	// Registration errors
	ErrRegistrationFailed = fmt.Errorf("registration failed")
	ErrCourseFull         = fmt.Errorf("course is full")
	ErrAlreadyRegistered  = fmt.Errorf("already registered")
	ErrDropFailed         = fmt.Errorf("drop failed")
	ErrNotRegistered      = fmt.Errorf("not registered")
	ErrNothingToDrop      = fmt.Errorf("no enrolled students to drop")

	// Seeding and consistency errors
	ErrDuplicateCourse   = fmt.Errorf("duplicate course code")
	ErrDuplicateStudent  = fmt.Errorf("duplicate student id")
	ErrInvariantViolated = fmt.Errorf("enrollment invariant violated")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
