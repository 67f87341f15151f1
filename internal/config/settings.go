package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the CLI's runtime configuration.
type Settings struct {
	ProfilePath    string        `yaml:"profile_path"`
	ProjectionDays int           `yaml:"projection_days"`
	Format         string        `yaml:"format"`
	LogLevel       string        `yaml:"log_level"`
	SnapshotMaxAge time.Duration `yaml:"snapshot_max_age"`
}

// LoadSettings reads settings from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, s); err != nil {
				return nil, fmt.Errorf("parse settings: %w", err)
			}
		}
	}

	if v := os.Getenv("NETWORTH_PROFILE"); v != "" {
		s.ProfilePath = v
	}
	if v := os.Getenv("NETWORTH_PROJECTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("NETWORTH_PROJECTION_DAYS: %w", err)
		}
		s.ProjectionDays = days
	}
	if v := os.Getenv("NETWORTH_FORMAT"); v != "" {
		s.Format = v
	}
	if v := os.Getenv("NETWORTH_LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv("NETWORTH_SNAPSHOT_MAX_AGE"); v != "" {
		age, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("NETWORTH_SNAPSHOT_MAX_AGE: %w", err)
		}
		s.SnapshotMaxAge = age
	}

	// Defaults
	if s.ProfilePath == "" {
		s.ProfilePath = "profile.yaml"
	}
	if s.ProjectionDays == 0 {
		s.ProjectionDays = 365
	}
	if s.Format == "" {
		s.Format = "console"
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.SnapshotMaxAge == 0 {
		s.SnapshotMaxAge = 24 * time.Hour
	}

	return s, nil
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	if s.ProjectionDays < 0 {
		return fmt.Errorf("projection_days cannot be negative")
	}
	if s.SnapshotMaxAge < 0 {
		return fmt.Errorf("snapshot_max_age cannot be negative")
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn or error")
	}
	return nil
}
