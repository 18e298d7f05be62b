package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/registrar/internal/shared"
)

func TestCourse(t *testing.T) {
	t.Run("AvailableSlots", func(t *testing.T) {
		course := NewCourse("CS101", "Intro to Computer Science", "", "", 30)
		if got := course.AvailableSlots(); got != 30 {
			t.Errorf("expected 30 available slots, got %d", got)
		}

		if err := course.Enroll(); err != nil {
			t.Fatalf("failed to enroll: %v", err)
		}
		if got := course.AvailableSlots(); got != 29 {
			t.Errorf("expected 29 available slots, got %d", got)
		}
	})

	t.Run("Enroll at capacity", func(t *testing.T) {
		course := NewCourse("SEM900", "Seminar", "", "", 1)
		if err := course.Enroll(); err != nil {
			t.Fatalf("failed to enroll: %v", err)
		}

		err := course.Enroll()
		if !errors.Is(err, shared.ErrCourseFull) {
			t.Fatalf("expected ErrCourseFull, got %v", err)
		}
		if course.Enrolled() != 1 {
			t.Errorf("expected enrollment to stay at 1, got %d", course.Enrolled())
		}
	})

	t.Run("Drop with nobody enrolled", func(t *testing.T) {
		course := NewCourse("PHY111", "Physics Basics", "", "", 20)

		err := course.Drop()
		if !errors.Is(err, shared.ErrNothingToDrop) {
			t.Fatalf("expected ErrNothingToDrop, got %v", err)
		}
		if course.Enrolled() != 0 {
			t.Errorf("expected enrollment to stay at 0, got %d", course.Enrolled())
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name   string
			course *Course
			want   error
		}{
			{name: "valid", course: NewCourse("CS101", "Intro", "", "", 1)},
			{name: "missing code", course: NewCourse("", "Intro", "", "", 1), want: shared.ErrInvalidInput},
			{name: "missing title", course: NewCourse("CS101", "", "", "", 1), want: shared.ErrInvalidInput},
			{name: "zero capacity", course: NewCourse("CS101", "Intro", "", "", 0), want: shared.ErrInvalidInput},
			{name: "negative capacity", course: NewCourse("CS101", "Intro", "", "", -3), want: shared.ErrInvalidInput},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.course.Validate()
				if tt.want == nil && err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				if tt.want != nil && !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
			})
		}
	})

	t.Run("Record and String", func(t *testing.T) {
		course := NewCourse("MATH201", "Calculus I", "Introduction to calculus concepts.", "Tue & Thu 1-2 PM", 25)
		_ = course.Enroll()

		record := course.Record()
		if record.AvailableSlots != 24 || record.Capacity != 25 {
			t.Errorf("unexpected record slots: %+v", record)
		}
		if record.Schedule != "Tue & Thu 1-2 PM" {
			t.Errorf("unexpected schedule %q", record.Schedule)
		}

		if !strings.Contains(course.String(), "Available Slots: 24/25") {
			t.Errorf("expected slots in string form, got %q", course.String())
		}
	})

	t.Run("Clone is independent", func(t *testing.T) {
		course := NewCourse("CS101", "Intro", "", "", 2)
		clone := course.Clone()
		_ = course.Enroll()

		if clone.Enrolled() != 0 {
			t.Errorf("expected clone to keep enrollment 0, got %d", clone.Enrolled())
		}
	})
}
