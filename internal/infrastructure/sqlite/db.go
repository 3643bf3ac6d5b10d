// Package sqlite provides the SQLite persistence layer for gitplay's lesson
// progress. It handles connection lifecycle, migrations, and repository
// implementations.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/gitplay/internal/infrastructure/migrations"
	"github.com/zjrosen/gitplay/internal/log"
	"github.com/zjrosen/gitplay/internal/progress/domain"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB manages the progress database connection. The playground repository
// state never lands here; only lesson completions and session records do.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the database at path, configures pragmas, and runs migrations.
// The parent directory is created when missing.
func Open(path string) (*DB, error) {
	log.Debug(log.CatDB, "Opening progress database", "path", path)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.ErrorErr(log.CatDB, "Failed to create database directory", err, "path", filepath.Dir(path))
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to open database", err, "path", path)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to ping database", err, "path", path)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			log.ErrorErr(log.CatDB, "Failed to apply pragma", err, "pragma", pragma)
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	if err := migrations.Run(conn); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to run migrations", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info(log.CatDB, "Progress database ready", "path", path)
	return &DB{conn: conn, path: path}, nil
}

// Close releases database resources.
func (db *DB) Close() error {
	if db.conn != nil {
		log.Debug(log.CatDB, "Closing progress database", "path", db.path)
		return db.conn.Close()
	}
	return nil
}

// CompletionRepository returns the lesson-completion repository backed by
// this connection.
func (db *DB) CompletionRepository() domain.CompletionRepository {
	return newCompletionRepository(db.conn)
}

// SessionRepository returns the session repository backed by this connection.
func (db *DB) SessionRepository() domain.SessionRepository {
	return newSessionRepository(db.conn)
}

// Connection returns the underlying *sql.DB for testing purposes.
func (db *DB) Connection() *sql.DB {
	return db.conn
}
