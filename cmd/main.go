package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/registrar/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	env, err := shared.LoadEnv()
	if err != nil {
		logger.Fatalf("failed to read environment: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Env:    env,
		Logger: logger,
	})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrNotImplemented):
			logger.Warn("not implemented")
			os.Exit(0)
		case errors.Is(err, shared.ErrRegistrationFailed), errors.Is(err, shared.ErrDropFailed):
			logger.Error(err)
			os.Exit(1)
		default:
			logger.Fatalf("application error: %v", err)
		}
	}
}

// newApp builds the root command. Without a subcommand it runs the text menu.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "registrar",
		Usage:   "Register students for courses from a seeded catalog",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (env: REGISTRAR_CONFIG)",
				Value:   r.env.ConfigPath,
			},
		},
		Before:   r.Bootstrap,
		After:    r.Close,
		Action:   r.Menu,
		Commands: r.register(),
	}
}
