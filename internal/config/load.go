package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/zjrosen/gitplay/internal/log"
)

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "gitplay")
}

// Load reads config.yaml from path (or the default config dir when path is
// empty), layered over Default(). A missing file is not an error: defaults
// are returned unchanged.
func Load(path string) (Config, *viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(DefaultConfigDir())
	}

	cfg := Default()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, v, nil
}

// Watch re-reads the config file on change and calls onChange with the new
// configuration. Invalid edits are logged and skipped; the previous
// configuration stays in effect. Used for live theme reload.
func Watch(v *viper.Viper, onChange func(Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Debug(log.CatConfig, "Config file changed", "file", e.Name, "op", e.Op.String())

		cfg := Default()
		if err := v.Unmarshal(&cfg); err != nil {
			log.ErrorErr(log.CatConfig, "Ignoring config change: parse failed", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			log.ErrorErr(log.CatConfig, "Ignoring config change: validation failed", err)
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("playground.tool", cfg.Playground.Tool)
	v.SetDefault("playground.branch_name", cfg.Playground.BranchName)
	v.SetDefault("playground.working_dir", cfg.Playground.WorkingDir)
	v.SetDefault("playground.seed_files", cfg.Playground.SeedFiles)
	v.SetDefault("playground.prompt", cfg.Playground.Prompt)
	v.SetDefault("playground.demo_script", cfg.Playground.DemoScript)
	v.SetDefault("theme.preset", cfg.Theme.Preset)
	v.SetDefault("theme.mode", cfg.Theme.Mode)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("telemetry.enabled", cfg.Telemetry.Enabled)
	v.SetDefault("telemetry.exporter", cfg.Telemetry.Exporter)
	v.SetDefault("telemetry.endpoint", cfg.Telemetry.Endpoint)
	v.SetDefault("telemetry.file", cfg.Telemetry.File)
}
