package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. Fields absent from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := validateLayout(&cfg.Layout); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output.Format)
	}

	return nil
}

func validateLayout(layout *LayoutConfig) error {
	names := map[string]string{
		"install_dir_name":  layout.InstallDirName,
		"logs_dir_name":     layout.LogsDirName,
		"versions_dir_name": layout.VersionsDirName,
		"current_log_name":  layout.CurrentLogName,
	}
	for field, name := range names {
		if name == "" {
			return fmt.Errorf("%s is required", field)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%s must be a single path component, got %q", field, name)
		}
		if name == "." || name == ".." {
			return errors.New(field + " must not be a relative pseudo-entry")
		}
	}
	return nil
}
