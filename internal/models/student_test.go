package models

import (
	"errors"
	"slices"
	"testing"

	"github.com/desertthunder/registrar/internal/shared"
)

func TestStudent(t *testing.T) {
	t.Run("RegisterCourse", func(t *testing.T) {
		student := NewStudent("S001", "Alice")
		course := NewCourse("CS101", "Intro to Computer Science", "", "", 30)

		if err := student.RegisterCourse(course); err != nil {
			t.Fatalf("failed to register: %v", err)
		}

		if !student.HasCourse("CS101") {
			t.Error("expected student to hold CS101")
		}
		if course.Enrolled() != 1 {
			t.Errorf("expected 1 enrolled, got %d", course.Enrolled())
		}
	})

	t.Run("RegisterCourse twice", func(t *testing.T) {
		student := NewStudent("S001", "Alice")
		course := NewCourse("CS101", "Intro", "", "", 30)

		if err := student.RegisterCourse(course); err != nil {
			t.Fatalf("failed to register: %v", err)
		}

		err := student.RegisterCourse(course)
		if !errors.Is(err, shared.ErrAlreadyRegistered) {
			t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
		}
		if len(student.Courses()) != 1 {
			t.Errorf("expected 1 course, got %d", len(student.Courses()))
		}
		if course.Enrolled() != 1 {
			t.Errorf("expected 1 enrolled, got %d", course.Enrolled())
		}
	})

	t.Run("RegisterCourse when full", func(t *testing.T) {
		course := NewCourse("SEM900", "Seminar", "", "", 1)
		first := NewStudent("S001", "Alice")
		second := NewStudent("S002", "Bob")

		if err := first.RegisterCourse(course); err != nil {
			t.Fatalf("failed to register first student: %v", err)
		}

		err := second.RegisterCourse(course)
		if !errors.Is(err, shared.ErrCourseFull) {
			t.Fatalf("expected ErrCourseFull, got %v", err)
		}
		if second.HasCourse("SEM900") {
			t.Error("rejected student should not hold the course")
		}
		if course.Enrolled() != 1 {
			t.Errorf("expected enrollment to stay at 1, got %d", course.Enrolled())
		}
	})

	t.Run("DropCourse", func(t *testing.T) {
		student := NewStudent("S001", "Alice")
		course := NewCourse("CS101", "Intro", "", "", 30)
		before := course.AvailableSlots()

		if err := student.RegisterCourse(course); err != nil {
			t.Fatalf("failed to register: %v", err)
		}
		if err := student.DropCourse(course); err != nil {
			t.Fatalf("failed to drop: %v", err)
		}

		if student.HasCourse("CS101") {
			t.Error("expected course to be removed")
		}
		if course.AvailableSlots() != before {
			t.Errorf("expected %d available slots after drop, got %d", before, course.AvailableSlots())
		}
	})

	t.Run("DropCourse not registered", func(t *testing.T) {
		student := NewStudent("S001", "Alice")
		course := NewCourse("CS101", "Intro", "", "", 30)

		err := student.DropCourse(course)
		if !errors.Is(err, shared.ErrNotRegistered) {
			t.Fatalf("expected ErrNotRegistered, got %v", err)
		}
		if course.Enrolled() != 0 {
			t.Errorf("expected enrollment to stay at 0, got %d", course.Enrolled())
		}
	})

	t.Run("DropCourse keeps order of the rest", func(t *testing.T) {
		student := NewStudent("S001", "Alice")
		courses := []*Course{
			NewCourse("A", "A", "", "", 5),
			NewCourse("B", "B", "", "", 5),
			NewCourse("C", "C", "", "", 5),
		}
		for _, c := range courses {
			if err := student.RegisterCourse(c); err != nil {
				t.Fatalf("failed to register %s: %v", c.Code(), err)
			}
		}

		if err := student.DropCourse(courses[1]); err != nil {
			t.Fatalf("failed to drop: %v", err)
		}

		if got := student.Courses(); !slices.Equal(got, []string{"A", "C"}) {
			t.Errorf("expected [A C], got %v", got)
		}
	})

	t.Run("Courses returns a copy", func(t *testing.T) {
		student := NewStudent("S001", "Alice")
		_ = student.RegisterCourse(NewCourse("CS101", "Intro", "", "", 1))

		codes := student.Courses()
		codes[0] = "MUTATED"

		if !student.HasCourse("CS101") {
			t.Error("mutating the returned slice should not affect the student")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := NewStudent("", "Alice").Validate(); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for missing id, got %v", err)
		}
		if err := NewStudent("S001", "").Validate(); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for missing name, got %v", err)
		}
		if err := NewStudent("S001", "Alice").Validate(); err != nil {
			t.Errorf("expected valid student, got %v", err)
		}
	})
}

func TestActivity(t *testing.T) {
	t.Run("outcome from error", func(t *testing.T) {
		ok := NewActivity(1, ActionRegister, "S001", "CS101", nil)
		if !ok.Succeeded() || ok.Outcome() != OutcomeOK {
			t.Errorf("expected ok outcome, got %q", ok.Outcome())
		}

		failed := NewActivity(2, ActionDrop, "S001", "CS101", shared.ErrNotRegistered)
		if failed.Succeeded() {
			t.Error("expected failed activity")
		}
		if failed.Outcome() != shared.ErrNotRegistered.Error() {
			t.Errorf("expected outcome %q, got %q", shared.ErrNotRegistered.Error(), failed.Outcome())
		}
	})

	t.Run("SetOutcome", func(t *testing.T) {
		activity := NewActivity(1, ActionRegister, "S001", "CS101", nil)
		activity.SetOutcome(shared.ErrCourseFull.Error())

		if activity.Outcome() != shared.ErrCourseFull.Error() {
			t.Errorf("expected outcome %q, got %q", shared.ErrCourseFull.Error(), activity.Outcome())
		}
		if activity.Succeeded() {
			t.Error("expected failed activity after SetOutcome")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		activity := NewActivity(1, ActionRegister, "S001", "CS101", nil)
		if err := activity.Validate(); err == nil {
			t.Error("expected error without id")
		}

		activity.SetID(shared.GenerateID())
		if err := activity.Validate(); err != nil {
			t.Errorf("expected valid activity, got %v", err)
		}

		bad := NewActivity(1, Action("enroll"), "S001", "CS101", nil)
		bad.SetID(shared.GenerateID())
		if err := bad.Validate(); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for unknown action, got %v", err)
		}
	})
}
