// Package domain provides the lesson-progress types for gitplay. Only
// lesson completion and session records persist; the simulated repository
// itself is always session-only.
package domain

import "time"

// Completion marks a lesson as finished.
type Completion struct {
	LessonID    string
	CompletedAt time.Time
}

// Session is one playground run: created at startup, closed on quit.
type Session struct {
	ID          int64
	GUID        string // uuid, stable across the row's lifetime
	StartedAt   time.Time
	EndedAt     *time.Time
	CommandsRun int
}

// CompletionRepository persists the flat set of completed lesson identifiers.
type CompletionRepository interface {
	// MarkCompleted records lesson completion; marking an already-completed
	// lesson keeps the original completion time.
	MarkCompleted(lessonID string, at time.Time) error
	// IsCompleted reports whether the lesson has been completed.
	IsCompleted(lessonID string) (bool, error)
	// ListCompleted returns all completions ordered by lesson id.
	ListCompleted() ([]Completion, error)
	// Clear removes every completion.
	Clear() error
}

// SessionRepository persists playground session records.
type SessionRepository interface {
	// Save inserts a new session (ID == 0, setting ID) or updates an
	// existing one.
	Save(session *Session) error
	// Find returns the session with the given GUID.
	Find(guid string) (*Session, error)
}
