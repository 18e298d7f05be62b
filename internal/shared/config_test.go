package shared

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != ":memory:" {
			t.Errorf("expected database path :memory:, got %s", config.Database.Path)
		}

		if len(config.Catalog.Courses) != 3 {
			t.Fatalf("expected 3 seed courses, got %d", len(config.Catalog.Courses))
		}

		if config.Catalog.Courses[0].Code != "CS101" || config.Catalog.Courses[0].Capacity != 30 {
			t.Errorf("expected CS101 with capacity 30 first, got %+v", config.Catalog.Courses[0])
		}

		if len(config.Catalog.Students) != 2 {
			t.Fatalf("expected 2 seed students, got %d", len(config.Catalog.Students))
		}

		if config.Catalog.Students[1].Name != "Bob" {
			t.Errorf("expected second student Bob, got %s", config.Catalog.Students[1].Name)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should validate: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/activity.db"
max_open_conns = 4
max_idle_conns = 2

[logging]
level = "debug"

[[catalog.courses]]
code = "ART100"
title = "Drawing"
capacity = 1
schedule = "Sat 9-12"

[[catalog.students]]
id = "S100"
name = "Carol"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/activity.db" {
			t.Errorf("expected database path /custom/activity.db, got %s", config.Database.Path)
		}

		if config.Logging.Level != "debug" {
			t.Errorf("expected log level debug, got %s", config.Logging.Level)
		}

		if len(config.Catalog.Courses) != 1 || config.Catalog.Courses[0].Code != "ART100" {
			t.Errorf("expected single course ART100, got %+v", config.Catalog.Courses)
		}
	})

	t.Run("LoadConfig with malformed file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[catalog\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("ResolveConfig", func(t *testing.T) {
		t.Run("missing file falls back to defaults", func(t *testing.T) {
			config, err := ResolveConfig(filepath.Join(t.TempDir(), "nope.toml"))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(config.Catalog.Courses) != 3 {
				t.Errorf("expected default catalog, got %d courses", len(config.Catalog.Courses))
			}
		})

		t.Run("unreadable path is an error", func(t *testing.T) {
			notDir := filepath.Join(t.TempDir(), "file")
			if err := os.WriteFile(notDir, []byte("x"), 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}
			config, err := ResolveConfig(filepath.Join(notDir, "config.toml"))
			if err == nil {
				t.Fatal("expected error for a path through a regular file")
			}
			if config != nil {
				t.Error("expected no config on stat failure")
			}
			if !strings.Contains(err.Error(), "failed to stat config file") {
				t.Errorf("unexpected error %v", err)
			}
		})

		t.Run("malformed file is an error", func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte("capacity = = 3"), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if _, err := ResolveConfig(configPath); err == nil {
				t.Error("expected error for malformed config")
			}
		})
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name   string
			mutate func(*Config)
			valid  bool
		}{
			{name: "defaults", mutate: func(*Config) {}, valid: true},
			{name: "zero capacity", mutate: func(c *Config) { c.Catalog.Courses[0].Capacity = 0 }},
			{name: "missing course code", mutate: func(c *Config) { c.Catalog.Courses[1].Code = "" }},
			{name: "missing student name", mutate: func(c *Config) { c.Catalog.Students[0].Name = "" }},
			{name: "empty catalog", mutate: func(c *Config) { c.Catalog.Courses = nil }},
			{name: "empty roster", mutate: func(c *Config) { c.Catalog.Students = nil }, valid: true},
			{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "loud" }},
			{name: "missing database path", mutate: func(c *Config) { c.Database.Path = "" }},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)

				err := config.Validate()
				if tt.valid && err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				if !tt.valid {
					if err == nil {
						t.Fatal("expected validation error")
					}
					if !errors.Is(err, ErrInvalidConfig) {
						t.Errorf("expected ErrInvalidConfig, got %v", err)
					}
				}
			})
		}
	})
}
