package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/registrar/internal/formatter"
	"github.com/desertthunder/registrar/internal/shared"
	"github.com/urfave/cli/v3"
)

// Courses lists the catalog in the requested format.
func (r *Runner) Courses(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	records := r.registrar.ListCourses()
	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteCourses(records, format, path); err != nil {
			return err
		}
		r.logger.Info("courses exported", "format", format, "path", path, "count", len(records))
		return nil
	}

	data, err := formatter.RenderCourses(records, format)
	if err != nil {
		return err
	}
	return r.writeBytes(data)
}

// Student prints a student's details.
func (r *Runner) Student(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: student id", shared.ErrMissingArgument)
	}

	details, err := r.registrar.DescribeStudent(id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(details, true)
	}
	return r.writeBytes(formatter.StudentToText(details))
}
