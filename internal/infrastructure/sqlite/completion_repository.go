package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/zjrosen/gitplay/internal/progress/domain"
)

// completionRepository implements domain.CompletionRepository using SQLite.
type completionRepository struct {
	db *sql.DB
}

func newCompletionRepository(db *sql.DB) *completionRepository {
	return &completionRepository{db: db}
}

// Ensure completionRepository implements domain.CompletionRepository.
var _ domain.CompletionRepository = (*completionRepository)(nil)

// MarkCompleted records a completion. Re-marking keeps the original
// completion time.
func (r *completionRepository) MarkCompleted(lessonID string, at time.Time) error {
	_, err := r.db.Exec(
		`INSERT INTO lesson_completions (lesson_id, completed_at) VALUES (?, ?)
		 ON CONFLICT (lesson_id) DO NOTHING`,
		lessonID, at.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to mark lesson completed: %w", err)
	}
	return nil
}

func (r *completionRepository) IsCompleted(lessonID string) (bool, error) {
	var one int
	err := r.db.QueryRow(
		`SELECT 1 FROM lesson_completions WHERE lesson_id = ?`, lessonID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query completion: %w", err)
	}
	return true, nil
}

func (r *completionRepository) ListCompleted() ([]domain.Completion, error) {
	rows, err := r.db.Query(
		`SELECT lesson_id, completed_at FROM lesson_completions ORDER BY lesson_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Completion
	for rows.Next() {
		var (
			id string
			at int64
		)
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		out = append(out, domain.Completion{LessonID: id, CompletedAt: time.Unix(at, 0).UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completions: %w", err)
	}
	return out, nil
}

func (r *completionRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM lesson_completions`); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	return nil
}
