// submodule cmd contains command definitions
package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/registrar/internal/formatter"
	"github.com/urfave/cli/v3"
)

// menuCommand runs the numbered text menu. It is also the root action.
func menuCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "menu",
		Usage:  "Interactive numbered menu",
		Action: r.Menu,
	}
}

// coursesCommand lists the catalog
func coursesCommand(r *Runner) *cli.Command {
	formats := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		formats[i] = string(f)
	}

	return &cli.Command{
		Name:    "courses",
		Aliases: []string{"ls"},
		Usage:   "List available courses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("Output format (%s)", strings.Join(formats, ", ")),
				Value:   string(formatter.FormatText),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the listing to a file instead of stdout",
			},
		},
		Action: r.Courses,
	}
}

// studentCommand describes one student
func studentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "student",
		Usage: "Show a student's registered courses",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Student,
	}
}

func enrollmentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "student",
			Aliases:  []string{"s"},
			Usage:    "Student ID",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:     "course",
			Aliases:  []string{"C"},
			Usage:    "Course code (repeatable)",
			Required: true,
		},
	}
}

// registerCommand registers a student for one or more courses
func registerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "register",
		Usage:  "Register a student for one or more courses",
		Flags:  enrollmentFlags(),
		Action: r.Register,
	}
}

// dropCommand drops a student from one or more courses
func dropCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "drop",
		Usage:  "Drop one or more courses for a student",
		Flags:  enrollmentFlags(),
		Action: r.Drop,
	}
}

const historyDescription = "Every register and drop attempt that names a student and a course is logged.\n" +
	"The menu rejects an unknown student before asking for a course, so those attempts are not logged."

// historyCommand prints the activity log
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Usage:       "Show registration activity recorded by this process",
		Description: historyDescription,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries (0 for all)",
				Value: 0,
			},
			&cli.StringFlag{
				Name:  "student",
				Usage: "Only show entries for this student",
			},
			&cli.StringFlag{
				Name:  "course",
				Usage: "Only show entries for this course",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.History,
	}
}

// checkCommand verifies enrollment invariants
func checkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Verify enrollment counts against student registrations",
		Action: r.Check,
	}
}

// setupCommand handles setup operations for configuration and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write config.toml from the built-in example",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Destination path (defaults to --config)",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the activity database and run migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Roll back the most recent migration instead",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI",
		Action:  r.TUI,
	}
}
