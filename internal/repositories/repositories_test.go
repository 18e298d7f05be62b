package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.OpenActivityDatabase(shared.DatabaseConfig{Path: shared.InMemoryDatabase})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)

	for want := 1; want <= 3; want++ {
		got, err := NextSequence(db, "activities")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		if got != want {
			t.Errorf("expected sequence %d, got %d", want, got)
		}
	}

	if _, err := NextSequence(db, "missing"); err == nil {
		t.Error("expected error for table without a sequence")
	}
}

func TestActivityRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		repo := NewActivityRepository(setupTestDB(t))
		activity := models.NewActivity(0, models.ActionRegister, "S001", "CS101", nil)

		if err := repo.Create(activity); err != nil {
			t.Fatalf("failed to create activity: %v", err)
		}

		if activity.ID() == "" {
			t.Error("activity ID should be set after creation")
		}
		if activity.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", activity.Sequence())
		}
	})

	t.Run("Create rejects invalid action", func(t *testing.T) {
		repo := NewActivityRepository(setupTestDB(t))
		activity := models.NewActivity(0, models.Action("withdraw"), "S001", "CS101", nil)

		if err := repo.Create(activity); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Get", func(t *testing.T) {
		repo := NewActivityRepository(setupTestDB(t))
		activity := models.NewActivity(0, models.ActionDrop, "S002", "PHY111", shared.ErrNotRegistered)

		if err := repo.Create(activity); err != nil {
			t.Fatalf("failed to create activity: %v", err)
		}

		retrieved, err := repo.Get(activity.ID())
		if err != nil {
			t.Fatalf("failed to get activity: %v", err)
		}

		if retrieved.Action() != models.ActionDrop {
			t.Errorf("expected action drop, got %s", retrieved.Action())
		}
		if retrieved.Outcome() != shared.ErrNotRegistered.Error() {
			t.Errorf("expected outcome %q, got %q", shared.ErrNotRegistered.Error(), retrieved.Outcome())
		}
		if retrieved.Succeeded() {
			t.Error("expected failed activity")
		}
	})

	t.Run("Get unknown", func(t *testing.T) {
		repo := NewActivityRepository(setupTestDB(t))

		if _, err := repo.Get("nope"); !errors.Is(err, ErrActivityNotFound) {
			t.Errorf("expected ErrActivityNotFound, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		repo := NewActivityRepository(setupTestDB(t))

		entries := []*models.Activity{
			models.NewActivity(0, models.ActionRegister, "S001", "CS101", nil),
			models.NewActivity(0, models.ActionRegister, "S001", "MATH201", nil),
			models.NewActivity(0, models.ActionRegister, "S002", "CS101", nil),
			models.NewActivity(0, models.ActionDrop, "S001", "CS101", nil),
		}
		for _, a := range entries {
			if err := repo.Create(a); err != nil {
				t.Fatalf("failed to create activity: %v", err)
			}
		}

		tc := []struct {
			name     string
			criteria map[string]any
			want     []int
		}{
			{name: "all", criteria: map[string]any{}, want: []int{1, 2, 3, 4}},
			{name: "by student", criteria: map[string]any{"student_id": "S001"}, want: []int{1, 2, 4}},
			{name: "by course", criteria: map[string]any{"course_code": "CS101"}, want: []int{1, 3, 4}},
			{name: "by action", criteria: map[string]any{"action": models.ActionDrop}, want: []int{4}},
			{name: "limit keeps latest in order", criteria: map[string]any{"limit": 2}, want: []int{3, 4}},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, err := repo.List(tt.criteria)
				if err != nil {
					t.Fatalf("failed to list activities: %v", err)
				}

				sequences := make([]int, len(got))
				for i, a := range got {
					sequences[i] = a.Sequence()
				}
				if fmt.Sprint(sequences) != fmt.Sprint(tt.want) {
					t.Errorf("expected sequences %v, got %v", tt.want, sequences)
				}
			})
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != len(entries) {
			t.Errorf("expected %d activities, got %d", len(entries), count)
		}
	})
}

func TestActivityRecorder(t *testing.T) {
	recorder := NewActivityRecorder(NewActivityRepository(setupTestDB(t)))

	if err := recorder.Record(models.ActionRegister, "S001", "CS101", nil); err != nil {
		t.Fatalf("failed to record: %v", err)
	}
	if err := recorder.Record(models.ActionRegister, "S001", "CS101", shared.ErrAlreadyRegistered); err != nil {
		t.Fatalf("failed to record: %v", err)
	}

	recent, err := recorder.Recent(0)
	if err != nil {
		t.Fatalf("failed to list recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(recent))
	}
	if !recent[0].Succeeded() || recent[1].Succeeded() {
		t.Errorf("unexpected outcomes: %q, %q", recent[0].Outcome(), recent[1].Outcome())
	}
}

func TestActivityRecorderQuery(t *testing.T) {
	recorder := NewActivityRecorder(NewActivityRepository(setupTestDB(t)))

	attempts := []struct {
		action  models.Action
		student string
		course  string
	}{
		{models.ActionRegister, "S001", "CS101"},
		{models.ActionRegister, "S002", "CS101"},
		{models.ActionRegister, "S001", "MATH201"},
		{models.ActionDrop, "S001", "CS101"},
	}
	for _, a := range attempts {
		if err := recorder.Record(a.action, a.student, a.course, nil); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
	}

	tc := []struct {
		name    string
		student string
		course  string
		limit   int
		want    int
	}{
		{name: "all", want: 4},
		{name: "by student", student: "S001", want: 3},
		{name: "by course", course: "CS101", want: 3},
		{name: "by student and course", student: "S001", course: "CS101", want: 2},
		{name: "limited", student: "S001", limit: 1, want: 1},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recorder.Query(tt.student, tt.course, tt.limit)
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("expected %d activities, got %d", tt.want, len(got))
			}
		})
	}

	latest, err := recorder.Query("S001", "", 1)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if latest[0].Action() != models.ActionDrop {
		t.Errorf("limit should keep the most recent entry, got %s", latest[0].Action())
	}
}
