package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/registrar/internal/registrar"
	"github.com/desertthunder/registrar/internal/repositories"
	"github.com/desertthunder/registrar/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	env       *shared.EnvOverrides
	registrar *registrar.Registrar
	activity  *repositories.ActivityRecorder
	db        *sql.DB
	logFiles  []io.Closer
	logger    *log.Logger
	output    io.Writer
	input     io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
//
// When Registrar is nil, [Runner.Bootstrap] builds one from the resolved config.
type RunnerOpts struct {
	Config    *shared.Config
	Env       *shared.EnvOverrides
	Registrar *registrar.Registrar
	Activity  *repositories.ActivityRecorder
	Logger    *log.Logger
	Output    io.Writer
	Input     io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Env == nil {
		opts.Env = &shared.EnvOverrides{ConfigPath: "config.toml"}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	return &Runner{
		config:    opts.Config,
		env:       opts.Env,
		registrar: opts.Registrar,
		activity:  opts.Activity,
		logger:    opts.Logger,
		output:    opts.Output,
		input:     opts.Input,
	}
}

// Bootstrap resolves the config named by --config, applies environment overrides,
// opens the activity database and seeds the registrar.
//
// It is a no-op when a registrar was injected through [RunnerOpts].
func (r *Runner) Bootstrap(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if r.registrar != nil {
		return ctx, nil
	}

	configPath := cmd.String("config")
	config, err := shared.ResolveConfig(configPath)
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", shared.ErrInvalidConfig, err)
	}
	r.env.Apply(config)
	if err := config.Validate(); err != nil {
		return ctx, err
	}
	r.config = config

	if err := r.configureLogger(); err != nil {
		return ctx, err
	}
	r.logger.Debug("config resolved", "path", configPath, "courses", len(config.Catalog.Courses),
		"students", len(config.Catalog.Students))

	db, err := shared.OpenActivityDatabase(config.Database)
	if err != nil {
		return ctx, fmt.Errorf("failed to open activity database: %w", err)
	}
	r.db = db
	r.activity = repositories.NewActivityRecorder(repositories.NewActivityRepository(db))

	reg, err := registrar.FromConfig(config.Catalog, registrar.Options{Logger: r.logger, Recorder: r.activity})
	if err != nil {
		return ctx, fmt.Errorf("failed to seed registrar: %w", err)
	}
	r.registrar = reg
	return ctx, nil
}

// Close releases the activity database and any log files opened by the runner.
func (r *Runner) Close(ctx context.Context, cmd *cli.Command) error {
	var errs []error
	if r.db != nil {
		errs = append(errs, r.db.Close())
		r.db = nil
	}
	for _, f := range r.logFiles {
		errs = append(errs, f.Close())
	}
	r.logFiles = nil
	return errors.Join(errs...)
}

// SetLogger replaces the runner's logger, e.g. to move output off the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) configureLogger() error {
	if r.config.Logging.File != "" {
		fileLogger, err := r.openFileLogger(r.config.Logging.File)
		if err != nil {
			return err
		}
		r.logger = fileLogger
		return nil
	}

	level, err := shared.ParseLogLevel(r.config.Logging.Level)
	if err != nil {
		return err
	}
	shared.SetLogLevel(r.logger, level)
	return nil
}

// openFileLogger opens a file logger at the configured level. The file is closed by [Runner.Close].
func (r *Runner) openFileLogger(path string) (*log.Logger, error) {
	level, err := shared.ParseLogLevel(r.config.Logging.Level)
	if err != nil {
		return nil, err
	}

	fileLogger, file, err := shared.NewFileLogger(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, level)
	r.logFiles = append(r.logFiles, file)
	return fileLogger, nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		menuCommand, coursesCommand, studentCommand, registerCommand, dropCommand,
		historyCommand, checkCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeBytes(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
