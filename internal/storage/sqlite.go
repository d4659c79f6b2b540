package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "daykeep.db"

// SQLiteStore keeps blobs in a single-table SQLite database. Unlike the file
// backend there is one file to copy or back up, and writes are durable
// through SQLite's journal rather than a rename.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the database in dataDir and
// ensures the schema exists.
func OpenSQLiteStore(dataDir string) (*SQLiteStore, error) {
	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get reads the blob row. A missing row means the blob was never written.
func (s *SQLiteStore) Get(name string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow("SELECT content FROM blobs WHERE name = ?", name).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, true, nil
}

// Put upserts the blob row.
func (s *SQLiteStore) Put(name string, data []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO blobs (name, content, updated_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at",
		name, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Close closes the database. Idempotent: closing a closed DB returns nil.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
