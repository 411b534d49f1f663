// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger records processed submission ids so re-runs skip
// submissions that already produced content files.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store manages the processed-submission SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one processed submission.
type Entry struct {
	ID          string
	Title       string
	GrantPath   string
	ProcessedAt time.Time
}

// Open opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		title TEXT,
		grant_path TEXT,
		processed_at TEXT
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Seen reports whether the submission id has already been processed.
func (s *Store) Seen(id string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM submissions WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying ledger: %w", err)
	}
	return true, nil
}

// Record marks a submission as processed, with the grant file it
// produced. Recording the same id twice keeps the first entry.
func (s *Store) Record(id, title, grantPath string) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO submissions (id, title, grant_path, processed_at) VALUES (?, ?, ?, ?)`,
		id, title, grantPath, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording submission %s: %w", id, err)
	}
	return nil
}

// List returns all entries, oldest first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, title, grant_path, processed_at FROM submissions ORDER BY processed_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing ledger: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var processedAt string
		if err := rows.Scan(&e.ID, &e.Title, &e.GrantPath, &processedAt); err != nil {
			return nil, fmt.Errorf("scanning ledger row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, processedAt); parseErr == nil {
			e.ProcessedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
