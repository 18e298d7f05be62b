package registrar

import (
	"fmt"
	"testing"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

func TestOutcome(t *testing.T) {
	tc := []struct {
		name   string
		action models.Action
		err    error
		want   string
	}{
		{"registered", models.ActionRegister, nil, "Course registered successfully!"},
		{"dropped", models.ActionDrop, nil, "Course dropped successfully!"},
		{"unknown student", models.ActionRegister, fmt.Errorf("%w: S999", shared.ErrStudentNotFound), "Student not found."},
		{"unknown course", models.ActionDrop, fmt.Errorf("%w: XYZ", shared.ErrCourseNotFound), "Course not found."},
		{
			"full",
			models.ActionRegister,
			fmt.Errorf("%w: %w", shared.ErrRegistrationFailed, shared.ErrCourseFull),
			"Failed to register for the course: course is full.",
		},
		{
			"duplicate",
			models.ActionRegister,
			fmt.Errorf("%w: %w", shared.ErrRegistrationFailed, shared.ErrAlreadyRegistered),
			"Failed to register for the course: already registered.",
		},
		{
			"not registered",
			models.ActionDrop,
			fmt.Errorf("%w: %w", shared.ErrDropFailed, shared.ErrNotRegistered),
			"Failed to drop the course: not registered.",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcome(tt.action, tt.err); got != tt.want {
				t.Errorf("Outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutcomeFromRegistrar(t *testing.T) {
	r := New(Options{})
	if err := r.AddCourse(models.NewCourse("CS101", "Intro", "", "", 1)); err != nil {
		t.Fatalf("AddCourse failed: %v", err)
	}
	if err := r.AddStudent(models.NewStudent("S001", "Alice")); err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}

	if got := Outcome(models.ActionDrop, r.Drop("S001", "CS101")); got != "Failed to drop the course: not registered." {
		t.Errorf("unexpected drop message %q", got)
	}
	if got := Outcome(models.ActionRegister, r.Register("S001", "CS101")); got != MsgRegistered {
		t.Errorf("unexpected register message %q", got)
	}
	if got := Outcome(models.ActionRegister, r.Register("S001", "CS101")); got != "Failed to register for the course: already registered." {
		t.Errorf("unexpected duplicate message %q", got)
	}
}
