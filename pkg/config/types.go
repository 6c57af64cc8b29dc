// Package config provides configuration loading and validation for
// mc-playtime.
package config

// Config is the root configuration structure loaded from YAML. Every
// field has a default, so an absent config file means stock behavior.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Output OutputConfig `yaml:"output"`
}

// LayoutConfig names the well-known files and directories of an
// installation. Overriding these lets the tool scan launchers that
// relocate or rename the stock layout (MultiMC instances, server roots).
type LayoutConfig struct {
	// InstallDirName is the base name that marks an installation root.
	InstallDirName string `yaml:"install_dir_name"`

	// LogsDirName is the log directory inside a root and inside each
	// version directory.
	LogsDirName string `yaml:"logs_dir_name"`

	// VersionsDirName is the per-version directory under a root.
	VersionsDirName string `yaml:"versions_dir_name"`

	// CurrentLogName is the log of the most recent run, checked in
	// every scanned directory.
	CurrentLogName string `yaml:"current_log_name"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Format is the default output format (text or json). The --output
	// flag overrides it.
	Format string `yaml:"format"`
}
