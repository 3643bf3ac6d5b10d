// Package migrations provides schema migration support for the gitplay
// progress database.
//
// It carries a small golang-migrate driver compatible with
// ncruces/go-sqlite3 (CGO-free). The stock golang-migrate sqlite3 driver
// imports mattn/go-sqlite3, which registers the same "sqlite3" driver name
// and collides with the ncruces registration, so it cannot be used here.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var embeddedFS embed.FS

// FS returns the embedded migration SQL files.
func FS() fs.FS {
	return embeddedFS
}

// Run applies all pending migrations to db. A database that is already up
// to date is not an error.
func Run(db *sql.DB) error {
	source, err := iofs.New(embeddedFS, ".")
	if err != nil {
		return err
	}

	driver, err := WithInstance(db, &Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
