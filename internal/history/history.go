// Package history persists a ledger of clip extraction outcomes backed by
// SQLite, so operators can audit what a run produced, skipped, or failed on.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Status classifies the outcome of one extraction.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Record is one ledger entry.
type Record struct {
	ID            int64
	RunID         string
	Source        string
	Destination   string
	StartSeconds  float64
	LengthSeconds float64
	Status        Status
	Detail        string
	CreatedAt     time.Time
}

// Store manages ledger persistence.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS extractions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    source TEXT NOT NULL,
    destination TEXT NOT NULL,
    start_seconds REAL NOT NULL,
    length_seconds REAL NOT NULL,
    status TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extractions_created_at ON extractions(created_at);
`

// Open initializes or connects to the ledger database at path, creating
// parent directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string { return s.path }

// Append inserts a record and returns its id. A zero CreatedAt is stamped
// with the current time.
func (s *Store) Append(ctx context.Context, rec Record) (int64, error) {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO extractions (
            run_id, source, destination, start_seconds, length_seconds,
            status, detail, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.Source,
		rec.Destination,
		rec.StartSeconds,
		rec.LengthSeconds,
		string(rec.Status),
		rec.Detail,
		created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("append history record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("history record id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, source, destination, start_seconds, length_seconds,
            status, detail, created_at
        FROM extractions ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var status, created string
		if err := rows.Scan(
			&rec.ID, &rec.RunID, &rec.Source, &rec.Destination,
			&rec.StartSeconds, &rec.LengthSeconds, &status, &rec.Detail, &created,
		); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		rec.Status = Status(status)
		if ts, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return records, nil
}
