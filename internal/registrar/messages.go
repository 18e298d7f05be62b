package registrar

import (
	"errors"
	"fmt"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

const (
	MsgRegistered     = "Course registered successfully!"
	MsgDropped        = "Course dropped successfully!"
	MsgStudentMissing = "Student not found."
	MsgCourseMissing  = "Course not found."
)

// Outcome converts the result of [Registrar.Register] or [Registrar.Drop] into the operator-facing message.
func Outcome(action models.Action, err error) string {
	switch {
	case err == nil && action == models.ActionDrop:
		return MsgDropped
	case err == nil:
		return MsgRegistered
	case errors.Is(err, shared.ErrStudentNotFound):
		return MsgStudentMissing
	case errors.Is(err, shared.ErrCourseNotFound):
		return MsgCourseMissing
	case action == models.ActionDrop:
		return fmt.Sprintf("Failed to drop the course: %s.", cause(err))
	default:
		return fmt.Sprintf("Failed to register for the course: %s.", cause(err))
	}
}

// cause names the specific rejection reason wrapped under the generic failure category.
func cause(err error) string {
	for _, reason := range []error{shared.ErrCourseFull, shared.ErrAlreadyRegistered, shared.ErrNotRegistered, shared.ErrNothingToDrop} {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}
	return err.Error()
}
