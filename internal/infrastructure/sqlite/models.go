package sqlite

import (
	"time"

	"github.com/zjrosen/gitplay/internal/progress/domain"
)

// sessionModel is the database row for the sessions table. Time values are
// Unix timestamps.
type sessionModel struct {
	ID          int64
	GUID        string
	StartedAt   int64
	EndedAt     *int64 // nullable
	CommandsRun int64
}

func toSessionModel(s *domain.Session) *sessionModel {
	m := &sessionModel{
		ID:          s.ID,
		GUID:        s.GUID,
		StartedAt:   s.StartedAt.Unix(),
		CommandsRun: int64(s.CommandsRun),
	}
	if s.EndedAt != nil {
		v := s.EndedAt.Unix()
		m.EndedAt = &v
	}
	return m
}

func (m *sessionModel) toDomain() *domain.Session {
	s := &domain.Session{
		ID:          m.ID,
		GUID:        m.GUID,
		StartedAt:   time.Unix(m.StartedAt, 0).UTC(),
		CommandsRun: int(m.CommandsRun),
	}
	if m.EndedAt != nil {
		v := time.Unix(*m.EndedAt, 0).UTC()
		s.EndedAt = &v
	}
	return s
}
