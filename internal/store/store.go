// Package store provides the sqlite-backed durable store for collections,
// review cards, quiz sessions, and settings.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// Sentinel errors. Use errors.Is to check.
var (
	// ErrNotFound means the referenced record does not exist. Read paths
	// may treat it as "nothing to show"; update paths must not.
	ErrNotFound = errors.New("store: record not found")
	// ErrValidation means an input document failed structural validation.
	ErrValidation = errors.New("store: invalid document")
)

// settingsKey is the fixed primary key of the singleton settings row.
const settingsKey = "app-settings"

// Store wraps the SQL database connection. Open once, share the handle,
// close on shutdown.
type Store struct {
	conn    *sql.DB
	entropy *rand.Rand
}

// Open creates the database file if needed and ensures the schema is up
// to date.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{
		conn:    db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// NewID returns a fresh ULID for session and item records.
func (s *Store) NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}
