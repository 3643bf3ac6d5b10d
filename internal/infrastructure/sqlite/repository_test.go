package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitplay/internal/progress/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCompletionRepository_MarkAndQuery(t *testing.T) {
	repo := openTestDB(t).CompletionRepository()

	done, err := repo.IsCompleted("basics-01")
	require.NoError(t, err)
	require.False(t, done)

	first := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkCompleted("basics-01", first))

	done, err = repo.IsCompleted("basics-01")
	require.NoError(t, err)
	require.True(t, done)

	// Re-marking keeps the original completion time.
	require.NoError(t, repo.MarkCompleted("basics-01", first.Add(time.Hour)))

	list, err := repo.ListCompleted()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "basics-01", list[0].LessonID)
	require.Equal(t, first, list[0].CompletedAt)
}

func TestCompletionRepository_ListOrderedByLessonID(t *testing.T) {
	repo := openTestDB(t).CompletionRepository()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.MarkCompleted("basics-02", now))
	require.NoError(t, repo.MarkCompleted("basics-01", now))
	require.NoError(t, repo.MarkCompleted("commits-01", now))

	list, err := repo.ListCompleted()
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "basics-01", list[0].LessonID)
	require.Equal(t, "basics-02", list[1].LessonID)
	require.Equal(t, "commits-01", list[2].LessonID)
}

func TestCompletionRepository_Clear(t *testing.T) {
	repo := openTestDB(t).CompletionRepository()
	require.NoError(t, repo.MarkCompleted("basics-01", time.Now()))
	require.NoError(t, repo.Clear())

	list, err := repo.ListCompleted()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSessionRepository_SaveAndFind(t *testing.T) {
	repo := openTestDB(t).SessionRepository()

	session := &domain.Session{
		GUID:      uuid.NewString(),
		StartedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(session))
	require.NotZero(t, session.ID)

	ended := session.StartedAt.Add(20 * time.Minute)
	session.EndedAt = &ended
	session.CommandsRun = 17
	require.NoError(t, repo.Save(session))

	got, err := repo.Find(session.GUID)
	require.NoError(t, err)
	require.Equal(t, session.ID, got.ID)
	require.Equal(t, 17, got.CommandsRun)
	require.NotNil(t, got.EndedAt)
	require.Equal(t, ended, *got.EndedAt)
}

func TestSessionRepository_FindMissing(t *testing.T) {
	repo := openTestDB(t).SessionRepository()

	_, err := repo.Find("no-such-guid")
	var notFound *domain.SessionNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "no-such-guid", notFound.GUID)
}

// TestTimestampColumns_StoreUnixIntegers pins the storage format: time
// columns are INTEGER and hold Unix seconds, so reads scan cleanly into
// int64 without any driver-side TIMESTAMP conversion.
func TestTimestampColumns_StoreUnixIntegers(t *testing.T) {
	db := openTestDB(t)
	at := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.CompletionRepository().MarkCompleted("basics-01", at))

	var raw int64
	err := db.Connection().QueryRow(
		`SELECT completed_at FROM lesson_completions WHERE lesson_id = ?`, "basics-01",
	).Scan(&raw)
	require.NoError(t, err)
	require.Equal(t, at.Unix(), raw)
}
