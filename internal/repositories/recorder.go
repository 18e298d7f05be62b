package repositories

import (
	"fmt"

	"github.com/desertthunder/registrar/internal/models"
)

// ActivityRecorder implements registrar.Recorder using [ActivityRepository].
type ActivityRecorder struct {
	repo *ActivityRepository
}

// NewActivityRecorder creates a new [ActivityRecorder] with the given repository
func NewActivityRecorder(repo *ActivityRepository) *ActivityRecorder {
	return &ActivityRecorder{repo: repo}
}

// Record logs one register/drop attempt. A nil opErr is stored as [models.OutcomeOK].
func (a *ActivityRecorder) Record(action models.Action, studentID, courseCode string, opErr error) error {
	activity := models.NewActivity(0, action, studentID, courseCode, opErr)
	if err := a.repo.Create(activity); err != nil {
		return fmt.Errorf("failed to record %s activity: %w", action, err)
	}
	return nil
}

// Recent returns up to limit of the latest activities, oldest first. A limit of 0 returns all.
func (a *ActivityRecorder) Recent(limit int) ([]*models.Activity, error) {
	return a.repo.List(map[string]any{"limit": limit})
}

// Query returns activities for studentID and courseCode, oldest first. Empty values match any.
func (a *ActivityRecorder) Query(studentID, courseCode string, limit int) ([]*models.Activity, error) {
	return a.repo.List(map[string]any{
		"student_id":  studentID,
		"course_code": courseCode,
		"limit":       limit,
	})
}
