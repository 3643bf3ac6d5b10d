// Package config provides configuration types and defaults for gitplay.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// PlaygroundConfig controls the simulated repository.
type PlaygroundConfig struct {
	Tool       string   `mapstructure:"tool"`        // command prefix, default "git"
	BranchName string   `mapstructure:"branch_name"` // the single fixed branch
	WorkingDir string   `mapstructure:"working_dir"` // cosmetic path in init output
	SeedFiles  []string `mapstructure:"seed_files"`  // initial tracked universe
	Prompt     string   `mapstructure:"prompt"`      // prompt label, e.g. "$ "
	DemoScript bool     `mapstructure:"demo_script"` // play the scripted intro on start
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "dark", "light", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Keys use dot notation: "text.primary", "status.error", etc.
	Colors map[string]string `mapstructure:"colors"`
}

// LogConfig holds logging options. The TUI owns stdout, so logs go to a file.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // empty disables logging
}

// TelemetryConfig holds optional OpenTelemetry tracing options.
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Exporter string `mapstructure:"exporter"` // "stdout" or "otlp"
	Endpoint string `mapstructure:"endpoint"` // OTLP gRPC endpoint, host:port
	File     string `mapstructure:"file"`     // stdout exporter target file
}

// Config holds all configuration options for gitplay.
type Config struct {
	DataDir    string           `mapstructure:"data_dir"` // progress DB location
	Playground PlaygroundConfig `mapstructure:"playground"`
	Theme      ThemeConfig      `mapstructure:"theme"`
	Log        LogConfig        `mapstructure:"log"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// DefaultSeedFiles returns the default tracked-file universe.
func DefaultSeedFiles() []string {
	return []string{"README.md", "index.html", "style.css"}
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		DataDir: defaultDataDir(),
		Playground: PlaygroundConfig{
			Tool:       "git",
			BranchName: "main",
			WorkingDir: "/home/student/project",
			SeedFiles:  DefaultSeedFiles(),
			Prompt:     "$ ",
			DemoScript: false,
		},
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			Exporter: "stdout",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gitplay"
	}
	return filepath.Join(home, ".gitplay")
}

// DatabasePath returns the progress database location under DataDir.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "progress.db")
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Playground.Tool == "" {
		return fmt.Errorf("playground.tool is required")
	}
	if c.Playground.BranchName == "" {
		return fmt.Errorf("playground.branch_name is required")
	}
	if len(c.Playground.SeedFiles) == 0 {
		return fmt.Errorf("playground.seed_files must list at least one file")
	}
	seen := make(map[string]bool, len(c.Playground.SeedFiles))
	for _, f := range c.Playground.SeedFiles {
		if f == "" {
			return fmt.Errorf("playground.seed_files: empty file name")
		}
		if f == "." {
			return fmt.Errorf("playground.seed_files: '.' is reserved for stage-everything")
		}
		if seen[f] {
			return fmt.Errorf("playground.seed_files: duplicate entry %q", f)
		}
		seen[f] = true
	}

	switch c.Theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", c.Theme.Mode)
	}

	if c.Telemetry.Enabled {
		switch c.Telemetry.Exporter {
		case "stdout":
		case "otlp":
			if c.Telemetry.Endpoint == "" {
				return fmt.Errorf("telemetry.endpoint is required for the otlp exporter")
			}
		default:
			return fmt.Errorf("telemetry.exporter must be \"stdout\" or \"otlp\", got %q", c.Telemetry.Exporter)
		}
	}
	return nil
}
