package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
}

// CatalogConfig contains the seed data loaded into the registrar at start-up.
type CatalogConfig struct {
	Courses  []CourseSeed  `toml:"courses" validate:"required,min=1,dive"`
	Students []StudentSeed `toml:"students" validate:"dive"`
}

// CourseSeed describes one catalog entry.
type CourseSeed struct {
	Code        string `toml:"code" validate:"required"`
	Title       string `toml:"title" validate:"required"`
	Description string `toml:"description"`
	Schedule    string `toml:"schedule"`
	Capacity    int    `toml:"capacity" validate:"gt=0"`
}

// StudentSeed describes one roster entry.
type StudentSeed struct {
	ID   string `toml:"id" validate:"required"`
	Name string `toml:"name" validate:"required"`
}

// DatabaseConfig contains activity log database settings.
type DatabaseConfig struct {
	Path         string `toml:"path" validate:"required"`
	MaxOpenConns int    `toml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `toml:"max_idle_conns" validate:"gte=0"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error fatal"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// ResolveConfig loads the config at path when it exists and falls back to [DefaultConfig] otherwise.
//
// Only a missing file falls back. A file that cannot be read or parsed is an error.
func ResolveConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return LoadConfig(path)
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
