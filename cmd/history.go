package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/registrar/internal/formatter"
	"github.com/desertthunder/registrar/internal/models"
	"github.com/urfave/cli/v3"
)

// History prints the activity log.
//
// Each process seeds a fresh registrar, so outside the menu and TUI the log only holds this process's entries
// unless database.path points at a file.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	records, err := r.activityRecords(cmd.String("student"), cmd.String("course"), int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, true)
	}
	return r.writeBytes(formatter.ActivitiesToText(records))
}

func (r *Runner) activityRecords(studentID, courseCode string, limit int) ([]models.ActivityRecord, error) {
	if r.activity == nil {
		return nil, fmt.Errorf("activity log is not configured")
	}

	activities, err := r.activity.Query(studentID, courseCode, limit)
	if err != nil {
		return nil, err
	}

	records := make([]models.ActivityRecord, len(activities))
	for i, a := range activities {
		records[i] = a.Record()
	}
	return records, nil
}
