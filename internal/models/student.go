package models

import (
	"fmt"
	"slices"

	"github.com/desertthunder/registrar/internal/shared"
)

// Student is a roster entry. Registered courses are kept as codes in registration order and
// resolved through the catalog by the caller.
type Student struct {
	id      string
	name    string
	courses []string
}

// NewStudent creates a [Student] with no registered courses.
func NewStudent(id, name string) *Student {
	return &Student{id: id, name: name}
}

func (s *Student) ID() string   { return s.id }
func (s *Student) Name() string { return s.name }

// Courses returns a copy of the registered course codes in registration order.
func (s *Student) Courses() []string {
	return slices.Clone(s.courses)
}

// HasCourse reports whether code is among the registered courses.
func (s *Student) HasCourse(code string) bool {
	return slices.Contains(s.courses, code)
}

// RegisterCourse adds c to the student's courses and takes a seat in it.
//
// Nothing is mutated when the student already holds the course or the course has no free slots.
func (s *Student) RegisterCourse(c *Course) error {
	if s.HasCourse(c.Code()) {
		return fmt.Errorf("%w: %s in %s", shared.ErrAlreadyRegistered, s.id, c.Code())
	}
	if c.AvailableSlots() <= 0 {
		return fmt.Errorf("%w: %s", shared.ErrCourseFull, c.Code())
	}

	if err := c.Enroll(); err != nil {
		return err
	}
	s.courses = append(s.courses, c.Code())
	return nil
}

// DropCourse removes c from the student's courses and releases its seat.
func (s *Student) DropCourse(c *Course) error {
	idx := slices.Index(s.courses, c.Code())
	if idx < 0 {
		return fmt.Errorf("%w: %s in %s", shared.ErrNotRegistered, s.id, c.Code())
	}

	if err := c.Drop(); err != nil {
		return err
	}
	s.courses = slices.Delete(s.courses, idx, idx+1)
	return nil
}

// Validate checks that the student can be placed on a roster.
func (s *Student) Validate() error {
	if s.id == "" {
		return fmt.Errorf("%w: student id is required", shared.ErrInvalidInput)
	}
	if s.name == "" {
		return fmt.Errorf("%w: student %s name is required", shared.ErrInvalidInput, s.id)
	}

	seen := make(map[string]bool, len(s.courses))
	for _, code := range s.courses {
		if seen[code] {
			return fmt.Errorf("%w: student %s holds %s twice", shared.ErrInvariantViolated, s.id, code)
		}
		seen[code] = true
	}
	return nil
}

// Clone returns an independent copy.
func (s *Student) Clone() Student {
	return Student{id: s.id, name: s.name, courses: slices.Clone(s.courses)}
}
