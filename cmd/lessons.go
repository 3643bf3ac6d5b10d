package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gitplay/internal/infrastructure/sqlite"
	"github.com/zjrosen/gitplay/internal/lessons"
	"github.com/zjrosen/gitplay/internal/progress"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List lessons and completion status",
	Long:  `Display every built-in lesson with its completion mark, without starting the interactive playground.`,
	RunE:  runLessons,
}

func init() {
	rootCmd.AddCommand(lessonsCmd)
}

func runLessons(cmd *cobra.Command, args []string) error {
	catalog, err := lessons.Catalog()
	if err != nil {
		return fmt.Errorf("loading lessons: %w", err)
	}

	db, err := sqlite.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer func() { _ = db.Close() }()

	svc := progress.NewService(db.CompletionRepository(), db.SessionRepository())

	maxLen := 0
	for _, lesson := range catalog {
		if len(lesson.ID) > maxLen {
			maxLen = len(lesson.ID)
		}
	}

	completed := 0
	for _, lesson := range catalog {
		mark := " "
		if svc.IsCompleted(lesson.ID) {
			mark = "✓"
			completed++
		}
		fmt.Printf("  %s %-*s  %s\n", mark, maxLen, lesson.ID, lesson.Title)
	}

	fmt.Println()
	fmt.Printf("%d of %d lessons complete\n", completed, len(catalog))
	return nil
}
