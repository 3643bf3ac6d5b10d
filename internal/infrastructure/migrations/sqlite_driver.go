package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/golang-migrate/migrate/v4/database"
)

// DefaultMigrationsTable tracks applied migration versions.
const DefaultMigrationsTable = "schema_migrations"

// ErrNilConfig indicates no driver config was provided.
var ErrNilConfig = errors.New("no config")

// Config holds options for the sqlite migration driver.
type Config struct {
	MigrationsTable string
}

// sqliteDriver implements database.Driver against a sql.DB opened with the
// ncruces/go-sqlite3 driver. Locking is in-process only: the progress DB is
// owned by a single gitplay process.
type sqliteDriver struct {
	db     *sql.DB
	locked atomic.Bool
	config *Config
}

// WithInstance wraps an existing connection in a migration driver and
// ensures the version-tracking table exists.
func WithInstance(instance *sql.DB, config *Config) (database.Driver, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if err := instance.Ping(); err != nil {
		return nil, err
	}
	if config.MigrationsTable == "" {
		config.MigrationsTable = DefaultMigrationsTable
	}

	d := &sqliteDriver{db: instance, config: config}
	if err := d.ensureVersionTable(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *sqliteDriver) ensureVersionTable() (err error) {
	if err = d.Lock(); err != nil {
		return err
	}
	defer func() {
		if e := d.Unlock(); e != nil {
			err = errors.Join(err, e)
		}
	}()

	query := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (version uint64, dirty bool);
	CREATE UNIQUE INDEX IF NOT EXISTS version_unique ON %s (version);
	`, d.config.MigrationsTable, d.config.MigrationsTable)
	_, err = d.db.Exec(query)
	return err
}

// Open satisfies database.Driver; connections always arrive via WithInstance.
func (d *sqliteDriver) Open(_ string) (database.Driver, error) {
	return nil, errors.New("Open not supported; use WithInstance")
}

func (d *sqliteDriver) Close() error {
	return d.db.Close()
}

func (d *sqliteDriver) Lock() error {
	if !d.locked.CompareAndSwap(false, true) {
		return database.ErrLocked
	}
	return nil
}

func (d *sqliteDriver) Unlock() error {
	if !d.locked.CompareAndSwap(true, false) {
		return database.ErrNotLocked
	}
	return nil
}

// Run executes one migration inside a transaction.
func (d *sqliteDriver) Run(migration io.Reader) error {
	body, err := io.ReadAll(migration)
	if err != nil {
		return err
	}
	return d.inTx(string(body), nil)
}

// SetVersion replaces the recorded migration version.
func (d *sqliteDriver) SetVersion(version int, dirty bool) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &database.Error{OrigErr: err, Err: "transaction start failed"}
	}

	del := "DELETE FROM " + d.config.MigrationsTable //nolint:gosec // table name comes from trusted config
	if _, err := tx.Exec(del); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
		return &database.Error{OrigErr: err, Query: []byte(del)}
	}

	// A dirty nil version is still recorded so a failed down migration of
	// the first migration doesn't leave an empty version table.
	if version >= 0 || (version == database.NilVersion && dirty) {
		ins := fmt.Sprintf("INSERT INTO %s (version, dirty) VALUES (?, ?)", d.config.MigrationsTable) //nolint:gosec // table name comes from trusted config
		if _, err := tx.Exec(ins, version, dirty); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = errors.Join(err, rbErr)
			}
			return &database.Error{OrigErr: err, Query: []byte(ins)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &database.Error{OrigErr: err, Err: "transaction commit failed"}
	}
	return nil
}

// Version reports the recorded migration version; a missing row means no
// migration has run yet.
func (d *sqliteDriver) Version() (version int, dirty bool, err error) {
	query := "SELECT version, dirty FROM " + d.config.MigrationsTable + " LIMIT 1"
	if err := d.db.QueryRow(query).Scan(&version, &dirty); err != nil {
		return database.NilVersion, false, nil
	}
	return version, dirty, nil
}

// Drop removes every table in the database.
func (d *sqliteDriver) Drop() (err error) {
	rows, err := d.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return &database.Error{OrigErr: err, Err: "listing tables failed"}
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		if name != "" {
			tables = append(tables, name)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, t := range tables {
		if err := d.inTx("DROP TABLE "+t, nil); err != nil {
			return err
		}
	}
	if len(tables) > 0 {
		if _, err := d.db.Exec("VACUUM"); err != nil {
			return &database.Error{OrigErr: err, Err: "vacuum failed"}
		}
	}
	return nil
}

// inTx runs query inside a transaction with optional args.
func (d *sqliteDriver) inTx(query string, args []any) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &database.Error{OrigErr: err, Err: "transaction start failed"}
	}
	if _, err := tx.Exec(query, args...); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
		return &database.Error{OrigErr: err, Query: []byte(query)}
	}
	if err := tx.Commit(); err != nil {
		return &database.Error{OrigErr: err, Err: "transaction commit failed"}
	}
	return nil
}
