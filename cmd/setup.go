package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/desertthunder/registrar/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the built-in example config to --output (or --config).
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if path == "" {
		path = cmd.String("config")
	}
	if path == "" {
		return fmt.Errorf("%w: --output", shared.ErrMissingArgument)
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	r.writePlain("✓ Configuration written to %s\n", path)
	return nil
}

// SetupDatabase initializes the activity database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config := r.config.Database
	r.logger.Info("initializing database", "path", config.Path)

	db, err := shared.NewDatabase(config.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Path, config.MaxOpenConns, config.MaxIdleConns)

	if cmd.Bool("rollback") {
		r.logger.Info("rolling back latest migration")
		if err := shared.RollbackMigration(db); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
	} else {
		r.logger.Info("running database migrations")
		if err := shared.RunMigrations(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	applied, err := shared.AppliedMigrations(db)
	if err != nil {
		return err
	}
	versions := make([]int, 0, len(applied))
	for v := range applied {
		versions = append(versions, v)
	}
	sort.Ints(versions)

	r.logger.Infof("setup complete for database: %v", config.Path)
	r.writePlain("✓ Database %s at migrations %v\n", config.Path, versions)
	return nil
}
