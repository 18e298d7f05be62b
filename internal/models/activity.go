package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/registrar/internal/shared"
)

// Action names the registrar operation an [Activity] records.
type Action string

const (
	ActionRegister Action = "register"
	ActionDrop     Action = "drop"
)

// OutcomeOK is the outcome recorded for a successful operation.
const OutcomeOK = "ok"

// Activity is one register or drop attempt. Implements [Model].
type Activity struct {
	id         string
	sequence   int
	action     Action
	studentID  string
	courseCode string
	outcome    string
	createdAt  time.Time
}

// NewActivity creates an [Activity] stamped with the current time. A nil err records [OutcomeOK].
func NewActivity(sequence int, action Action, studentID, courseCode string, err error) *Activity {
	outcome := OutcomeOK
	if err != nil {
		outcome = err.Error()
	}
	return &Activity{
		sequence:   sequence,
		action:     action,
		studentID:  studentID,
		courseCode: courseCode,
		outcome:    outcome,
		createdAt:  time.Now(),
	}
}

func (a *Activity) ID() string           { return a.id }
func (a *Activity) Sequence() int        { return a.sequence }
func (a *Activity) Action() Action       { return a.action }
func (a *Activity) StudentID() string    { return a.studentID }
func (a *Activity) CourseCode() string   { return a.courseCode }
func (a *Activity) Outcome() string      { return a.outcome }
func (a *Activity) CreatedAt() time.Time { return a.createdAt }

// Succeeded reports whether the recorded operation went through.
func (a *Activity) Succeeded() bool { return a.outcome == OutcomeOK }

func (a *Activity) SetID(id string)           { a.id = id }
func (a *Activity) SetSequence(sequence int)  { a.sequence = sequence }
func (a *Activity) SetCreatedAt(at time.Time) { a.createdAt = at }
func (a *Activity) SetOutcome(outcome string) { a.outcome = outcome }

// Validate checks required fields and the action name.
func (a *Activity) Validate() error {
	if a.id == "" {
		return fmt.Errorf("%w: activity id is required", shared.ErrInvalidInput)
	}
	if a.action != ActionRegister && a.action != ActionDrop {
		return fmt.Errorf("%w: unknown action %q", shared.ErrInvalidInput, a.action)
	}
	if a.studentID == "" || a.courseCode == "" {
		return fmt.Errorf("%w: activity needs a student id and course code", shared.ErrInvalidInput)
	}
	if a.outcome == "" {
		return fmt.Errorf("%w: activity outcome is required", shared.ErrInvalidInput)
	}
	return nil
}

// ActivityRecord is the display form of an [Activity].
type ActivityRecord struct {
	Sequence   int       `json:"sequence" yaml:"sequence"`
	Action     Action    `json:"action" yaml:"action"`
	StudentID  string    `json:"student_id" yaml:"student_id"`
	CourseCode string    `json:"course_code" yaml:"course_code"`
	Outcome    string    `json:"outcome" yaml:"outcome"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Record returns the display snapshot of the activity.
func (a *Activity) Record() ActivityRecord {
	return ActivityRecord{
		Sequence:   a.sequence,
		Action:     a.action,
		StudentID:  a.studentID,
		CourseCode: a.courseCode,
		Outcome:    a.outcome,
		CreatedAt:  a.createdAt,
	}
}
