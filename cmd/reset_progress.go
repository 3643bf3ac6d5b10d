package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gitplay/internal/infrastructure/sqlite"
	"github.com/zjrosen/gitplay/internal/progress"
)

var resetProgressYes bool

var resetProgressCmd = &cobra.Command{
	Use:   "reset-progress",
	Short: "Clear all lesson completions",
	Long:  `Delete every recorded lesson completion so the lesson list starts fresh. Session history is kept.`,
	RunE:  runResetProgress,
}

func init() {
	resetProgressCmd.Flags().BoolVar(&resetProgressYes, "yes", false, "confirm clearing all lesson completions")
	rootCmd.AddCommand(resetProgressCmd)
}

func runResetProgress(cmd *cobra.Command, args []string) error {
	if !resetProgressYes {
		return fmt.Errorf("this deletes every lesson completion; re-run with --yes to confirm")
	}

	db, err := sqlite.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer func() { _ = db.Close() }()

	svc := progress.NewService(db.CompletionRepository(), db.SessionRepository())
	if err := svc.ResetAll(); err != nil {
		return fmt.Errorf("clearing completions: %w", err)
	}

	fmt.Println("Lesson progress cleared.")
	return nil
}
