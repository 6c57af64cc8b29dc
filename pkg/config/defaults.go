package config

// Default values for configuration.
const (
	DefaultInstallDirName  = ".minecraft"
	DefaultLogsDirName     = "logs"
	DefaultVersionsDirName = "versions"
	DefaultCurrentLogName  = "latest.log"
	DefaultOutputFormat    = "text"
)

// DefaultConfig returns the configuration for a stock launcher layout.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			InstallDirName:  DefaultInstallDirName,
			LogsDirName:     DefaultLogsDirName,
			VersionsDirName: DefaultVersionsDirName,
			CurrentLogName:  DefaultCurrentLogName,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}
