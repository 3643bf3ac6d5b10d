// Package cmd wires the gitplay CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/gitplay/internal/config"
	"github.com/zjrosen/gitplay/internal/infrastructure/sqlite"
	"github.com/zjrosen/gitplay/internal/lessons"
	"github.com/zjrosen/gitplay/internal/log"
	"github.com/zjrosen/gitplay/internal/playground"
	"github.com/zjrosen/gitplay/internal/progress"
	"github.com/zjrosen/gitplay/internal/telemetry"
	"github.com/zjrosen/gitplay/internal/ui/app"
	"github.com/zjrosen/gitplay/internal/ui/styles"
	"github.com/zjrosen/gitplay/internal/ui/terminal"
)

var (
	cfgFile string
	cfg     config.Config
	cfgView *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "gitplay",
	Short: "A safe terminal playground for learning git",
	Long: `Gitplay simulates a tiny git workflow against an in-memory repository.
Nothing touches your real filesystem or git installation, so every command
is safe to try, break, and reset.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/gitplay/config.yaml)")
	cobra.OnInitialize(initConfig)
}

// initConfig loads configuration before any command runs. Load errors are
// surfaced late, from RunE, so --help keeps working on a broken config.
func initConfig() {
	path := cfgFile
	if path == "" {
		path = filepath.Join(config.DefaultConfigDir(), "config.yaml")
	}
	loaded, v, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
		return
	}
	cfg = loaded
	cfgView = v
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Log.File != "" {
		if err := log.Init(cfg.Log.File, cfg.Log.Level); err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer log.Close()
	}
	log.Info(log.CatApp, "Starting gitplay")

	if err := styles.ApplyTheme(themeConfig()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	ctx := context.Background()
	tel, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.ErrorErr(log.CatTelemetry, "Telemetry shutdown failed", err)
		}
	}()

	db, err := sqlite.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer func() { _ = db.Close() }()

	svc := progress.NewService(db.CompletionRepository(), db.SessionRepository())
	guid, err := svc.StartSession()
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	log.Info(log.CatApp, "Session started", "guid", guid)

	catalog, err := lessons.Catalog()
	if err != nil {
		return fmt.Errorf("loading lessons: %w", err)
	}

	interp := playground.New(playground.Config{
		Tool:       cfg.Playground.Tool,
		BranchName: cfg.Playground.BranchName,
		WorkingDir: cfg.Playground.WorkingDir,
		SeedFiles:  cfg.Playground.SeedFiles,
	})

	term := terminal.New(terminal.Config{
		Interpreter: interp,
		Prompt:      cfg.Playground.Prompt,
		Banner:      banner(cfg.Playground.Tool),
		Tracer:      tel.Tracer(),
	})

	var demo []string
	if cfg.Playground.DemoScript {
		demo = terminal.DefaultDemoScript(cfg.Playground.Tool)
	}

	model := app.New(app.Config{
		Terminal:   term,
		Catalog:    catalog,
		Progress:   svc,
		DemoScript: demo,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	if cfgView != nil {
		config.Watch(cfgView, func(next config.Config) {
			cfg = next
			if err := styles.ApplyTheme(themeConfig()); err != nil {
				log.ErrorErr(log.CatConfig, "Theme reload failed", err)
				return
			}
			program.Send(app.ConfigReloadedMsg{})
		})
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if err := svc.EndSession(); err != nil {
		log.ErrorErr(log.CatDB, "Failed to end session", err)
	}
	log.Info(log.CatApp, "Shutting down")
	return nil
}

func themeConfig() styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.Colors,
	}
}

func banner(tool string) string {
	return fmt.Sprintf("Welcome to the %s playground. Commands run against a simulated repository, so nothing here touches your real files. Type 'help' to see what is available, or press ctrl+b to open the lessons.", tool)
}
