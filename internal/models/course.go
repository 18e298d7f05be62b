package models

import (
	"fmt"

	"github.com/desertthunder/registrar/internal/shared"
)

// Course is a catalog entry. Code and capacity are fixed at construction; the enrollment count only
// moves through [Course.Enroll] and [Course.Drop].
type Course struct {
	code        string
	title       string
	description string
	schedule    string
	capacity    int
	enrolled    int
}

// NewCourse creates a [Course] with no enrolled students.
func NewCourse(code, title, description, schedule string, capacity int) *Course {
	return &Course{
		code:        code,
		title:       title,
		description: description,
		schedule:    schedule,
		capacity:    capacity,
	}
}

func (c *Course) Code() string        { return c.code }
func (c *Course) Title() string       { return c.title }
func (c *Course) Description() string { return c.description }
func (c *Course) Schedule() string    { return c.schedule }
func (c *Course) Capacity() int       { return c.capacity }
func (c *Course) Enrolled() int       { return c.enrolled }

// AvailableSlots returns capacity minus current enrollment.
func (c *Course) AvailableSlots() int {
	return c.capacity - c.enrolled
}

// Enroll takes one seat, failing with [shared.ErrCourseFull] when none are left.
func (c *Course) Enroll() error {
	if c.enrolled >= c.capacity {
		return fmt.Errorf("%w: %s", shared.ErrCourseFull, c.code)
	}
	c.enrolled++
	return nil
}

// Drop releases one seat, failing with [shared.ErrNothingToDrop] when nobody is enrolled.
func (c *Course) Drop() error {
	if c.enrolled <= 0 {
		return fmt.Errorf("%w: %s", shared.ErrNothingToDrop, c.code)
	}
	c.enrolled--
	return nil
}

// Validate checks that the course can be placed in a catalog.
func (c *Course) Validate() error {
	if c.code == "" {
		return fmt.Errorf("%w: course code is required", shared.ErrInvalidInput)
	}
	if c.title == "" {
		return fmt.Errorf("%w: course %s title is required", shared.ErrInvalidInput, c.code)
	}
	if c.capacity <= 0 {
		return fmt.Errorf("%w: course %s capacity must be positive", shared.ErrInvalidInput, c.code)
	}
	if c.enrolled < 0 || c.enrolled > c.capacity {
		return fmt.Errorf("%w: course %s enrolled %d of %d", shared.ErrInvariantViolated, c.code, c.enrolled, c.capacity)
	}
	return nil
}

// Record returns the display snapshot of the course.
func (c *Course) Record() CourseRecord {
	return CourseRecord{
		Code:           c.code,
		Title:          c.title,
		Description:    c.description,
		Schedule:       c.schedule,
		AvailableSlots: c.AvailableSlots(),
		Capacity:       c.capacity,
	}
}

// Clone returns an independent copy.
func (c *Course) Clone() Course {
	return *c
}

func (c *Course) String() string {
	return fmt.Sprintf(
		"Course Code: %s\nTitle: %s\nDescription: %s\nSchedule: %s\nAvailable Slots: %d/%d\n",
		c.code, c.title, c.description, c.schedule, c.AvailableSlots(), c.capacity,
	)
}
