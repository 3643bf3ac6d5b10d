// Package progress tracks lesson completion and playground sessions. It
// fronts the SQLite repositories with a short-lived cache so views can ask
// "is this lesson done?" on every frame without touching the database.
package progress

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/google/uuid"

	"github.com/zjrosen/gitplay/internal/log"
	"github.com/zjrosen/gitplay/internal/progress/domain"
)

const (
	cacheTTL     = 30 * time.Second
	cacheCleanup = time.Minute
)

// Service is the application-level progress API.
type Service struct {
	completions domain.CompletionRepository
	sessions    domain.SessionRepository
	cache       *gocache.Cache
	session     *domain.Session
	now         func() time.Time
}

// NewService creates a progress service over the given repositories.
func NewService(completions domain.CompletionRepository, sessions domain.SessionRepository) *Service {
	return &Service{
		completions: completions,
		sessions:    sessions,
		cache:       gocache.New(cacheTTL, cacheCleanup),
		now:         time.Now,
	}
}

// StartSession records a new playground session and returns its GUID.
func (s *Service) StartSession() (string, error) {
	session := &domain.Session{
		GUID:      uuid.NewString(),
		StartedAt: s.now().UTC(),
	}
	if err := s.sessions.Save(session); err != nil {
		return "", fmt.Errorf("starting session: %w", err)
	}
	s.session = session
	log.Debug(log.CatDB, "Session started", "guid", session.GUID)
	return session.GUID, nil
}

// CommandExecuted bumps the running session's command counter. Counts are
// flushed on EndSession, not per command.
func (s *Service) CommandExecuted() {
	if s.session != nil {
		s.session.CommandsRun++
	}
}

// EndSession stamps the end time and flushes the session row. Safe to call
// without a started session.
func (s *Service) EndSession() error {
	if s.session == nil {
		return nil
	}
	ended := s.now().UTC()
	s.session.EndedAt = &ended
	if err := s.sessions.Save(s.session); err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	log.Debug(log.CatDB, "Session ended", "guid", s.session.GUID, "commands", s.session.CommandsRun)
	s.session = nil
	return nil
}

// MarkCompleted flags a lesson as done.
func (s *Service) MarkCompleted(lessonID string) error {
	if err := s.completions.MarkCompleted(lessonID, s.now().UTC()); err != nil {
		return err
	}
	s.cache.Set(lessonID, true, gocache.DefaultExpiration)
	log.Info(log.CatLessons, "Lesson completed", "lesson", lessonID)
	return nil
}

// IsCompleted reports whether a lesson is done, serving repeated lookups
// from the cache.
func (s *Service) IsCompleted(lessonID string) bool {
	if v, ok := s.cache.Get(lessonID); ok {
		return v.(bool)
	}
	done, err := s.completions.IsCompleted(lessonID)
	if err != nil {
		log.ErrorErr(log.CatDB, "Completion lookup failed", err, "lesson", lessonID)
		return false
	}
	s.cache.Set(lessonID, done, gocache.DefaultExpiration)
	return done
}

// ListCompleted returns all completions ordered by lesson id.
func (s *Service) ListCompleted() ([]domain.Completion, error) {
	return s.completions.ListCompleted()
}

// ResetAll wipes every completion flag.
func (s *Service) ResetAll() error {
	if err := s.completions.Clear(); err != nil {
		return err
	}
	s.cache.Flush()
	log.Info(log.CatLessons, "Progress reset")
	return nil
}
