package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Check verifies that every course's enrollment count matches the students holding it.
func (r *Runner) Check(ctx context.Context, cmd *cli.Command) error {
	if err := r.registrar.Check(); err != nil {
		return err
	}

	records := r.registrar.ListCourses()
	enrolled := 0
	for _, c := range records {
		enrolled += c.Capacity - c.AvailableSlots
	}

	r.writePlainHeader("Enrollment Check")
	for _, c := range records {
		r.writePlain("%-8s %d/%d enrolled\n", c.Code, c.Capacity-c.AvailableSlots, c.Capacity)
	}
	r.writePlain("✓ %d courses consistent (%d enrollments)\n", len(records), enrolled)
	return nil
}
