package shared

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment override, e.g. REGISTRAR_LOG_LEVEL.
const EnvPrefix = "REGISTRAR"

// EnvOverrides holds settings read from the process environment (and an optional .env file).
type EnvOverrides struct {
	ConfigPath   string `envconfig:"CONFIG" default:"config.toml"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
	LogFile      string `envconfig:"LOG_FILE"`
	DatabasePath string `envconfig:"DATABASE_PATH"`
}

// LoadEnv loads the given dotenv files (".env" when none are given) and reads REGISTRAR_* variables.
//
// Missing dotenv files are ignored. Variables already set in the environment win over the file.
func LoadEnv(files ...string) (*EnvOverrides, error) {
	_ = godotenv.Load(files...)

	var env EnvOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &env, nil
}

// Apply overlays non-empty overrides onto c.
func (e *EnvOverrides) Apply(c *Config) {
	if e == nil || c == nil {
		return
	}
	if e.LogLevel != "" {
		c.Logging.Level = e.LogLevel
	}
	if e.LogFile != "" {
		c.Logging.File = e.LogFile
	}
	if e.DatabasePath != "" {
		c.Database.Path = e.DatabasePath
	}
}
