package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/zjrosen/gitplay/internal/progress/domain"
)

// sessionRepository implements domain.SessionRepository using SQLite.
type sessionRepository struct {
	db *sql.DB
}

func newSessionRepository(db *sql.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

// Ensure sessionRepository implements domain.SessionRepository.
var _ domain.SessionRepository = (*sessionRepository)(nil)

// Save inserts a new session (ID == 0) and sets its ID, or updates the
// existing row.
func (r *sessionRepository) Save(session *domain.Session) error {
	m := toSessionModel(session)

	if session.ID == 0 {
		result, err := r.db.Exec(
			`INSERT INTO sessions (guid, started_at, ended_at, commands_run) VALUES (?, ?, ?, ?)`,
			m.GUID, m.StartedAt, m.EndedAt, m.CommandsRun,
		)
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		session.ID = id
		return nil
	}

	_, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ?, commands_run = ? WHERE id = ?`,
		m.EndedAt, m.CommandsRun, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// Find returns the session with the given GUID.
func (r *sessionRepository) Find(guid string) (*domain.Session, error) {
	var m sessionModel
	err := r.db.QueryRow(
		`SELECT id, guid, started_at, ended_at, commands_run FROM sessions WHERE guid = ?`,
		guid,
	).Scan(&m.ID, &m.GUID, &m.StartedAt, &m.EndedAt, &m.CommandsRun)
	if err == sql.ErrNoRows {
		return nil, &domain.SessionNotFoundError{GUID: guid}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return m.toDomain(), nil
}
