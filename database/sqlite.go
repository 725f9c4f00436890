package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// busyTimeoutMs is how long a writer waits for the SQLite write lock
const busyTimeoutMs = 5000

var db *sql.DB

// DataSourceName appends the connection options the forms store relies on
// (foreign keys, busy timeout, WAL journal) to a database path
func DataSourceName(path string) string {
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d&_journal_mode=WAL", path, busyTimeoutMs)
}

// OpenDB opens the forms database and checks that it is reachable
func OpenDB(path string) error {
	conn, err := sql.Open("sqlite3", DataSourceName(path))
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}
	// SQLite allows a single writer; the pool serializes record and audit inserts
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database %s: %w", path, err)
	}

	var fk int
	if err := conn.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil || fk != 1 {
		if _, err := conn.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	db = conn
	return nil
}

// InitializeDatabase opens the forms database and applies pending migrations
func InitializeDatabase(path string) error {
	if err := OpenDB(path); err != nil {
		return err
	}

	if err := RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Str("database", path).Msg("Forms database initialized")
	return nil
}

// GetDB returns the shared connection pool
func GetDB() *sql.DB {
	return db
}

// CloseDB closes the shared connection pool
func CloseDB() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}
