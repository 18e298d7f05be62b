package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/registrar"
	"github.com/desertthunder/registrar/internal/shared"
	"github.com/urfave/cli/v3"
)

// Register registers --student for every --course and prints one outcome per course.
func (r *Runner) Register(ctx context.Context, cmd *cli.Command) error {
	return r.enroll(cmd, models.ActionRegister, r.registrar.Register, shared.ErrRegistrationFailed)
}

// Drop drops every --course for --student and prints one outcome per course.
func (r *Runner) Drop(ctx context.Context, cmd *cli.Command) error {
	return r.enroll(cmd, models.ActionDrop, r.registrar.Drop, shared.ErrDropFailed)
}

func (r *Runner) enroll(cmd *cli.Command, action models.Action, op func(string, string) error, failure error) error {
	studentID := cmd.String("student")
	courses := cmd.StringSlice("course")
	if studentID == "" {
		return fmt.Errorf("%w: --student", shared.ErrMissingArgument)
	}
	if len(courses) == 0 {
		return fmt.Errorf("%w: --course", shared.ErrMissingArgument)
	}

	failed := 0
	for _, code := range courses {
		err := op(studentID, code)
		if err != nil {
			failed++
		}
		r.writePlain("%s: %s\n", code, registrar.Outcome(action, err))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d courses", failure, failed, len(courses))
	}
	return nil
}
