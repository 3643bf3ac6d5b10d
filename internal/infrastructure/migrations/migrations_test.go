package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRun_CreatesSchema(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))

	for _, table := range []string{"lesson_completions", "sessions", DefaultMigrationsTable} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))
	require.NoError(t, Run(db))
}

func TestWithInstance_RequiresConfig(t *testing.T) {
	db := openTestDB(t)
	_, err := WithInstance(db, nil)
	require.ErrorIs(t, err, ErrNilConfig)
}

func TestDriver_VersionRoundTrip(t *testing.T) {
	db := openTestDB(t)
	driver, err := WithInstance(db, &Config{})
	require.NoError(t, err)

	require.NoError(t, driver.SetVersion(3, false))
	version, dirty, err := driver.Version()
	require.NoError(t, err)
	require.Equal(t, 3, version)
	require.False(t, dirty)

	require.NoError(t, driver.SetVersion(4, true))
	version, dirty, err = driver.Version()
	require.NoError(t, err)
	require.Equal(t, 4, version)
	require.True(t, dirty)
}
