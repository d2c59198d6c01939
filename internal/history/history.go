// Package history persists one row per completed build in a local SQLite
// database. History is best-effort: a failure here warns and never fails a
// build.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one completed build.
type Record struct {
	BuildID       string
	ScriptPath    string
	Title         string
	Voice         string
	Language      string
	SegmentCount  int
	CachedCount   int
	TotalDuration float64
	Mock          bool
	CreatedAt     time.Time
}

// Store manages build history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS builds (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    build_id TEXT NOT NULL UNIQUE,
    script_path TEXT NOT NULL,
    title TEXT NOT NULL,
    voice TEXT NOT NULL,
    language TEXT NOT NULL,
    segment_count INTEGER NOT NULL,
    cached_count INTEGER NOT NULL,
    total_duration REAL NOT NULL,
    mock INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_builds_created_at ON builds(created_at DESC);
`

// Open initializes or connects to the history database under dataDir.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
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
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts one completed build.
func (s *Store) Record(ctx context.Context, rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO builds (build_id, script_path, title, voice, language,
    segment_count, cached_count, total_duration, mock, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.BuildID, rec.ScriptPath, rec.Title, rec.Voice, rec.Language,
		rec.SegmentCount, rec.CachedCount, rec.TotalDuration, boolToInt(rec.Mock),
		rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record build: %w", err)
	}
	return nil
}

// List returns up to limit builds, most recent first. limit <= 0 means a
// default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT build_id, script_path, title, voice, language,
    segment_count, cached_count, total_duration, mock, created_at
FROM builds ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var mock int
		var createdAt string
		if err := rows.Scan(&rec.BuildID, &rec.ScriptPath, &rec.Title, &rec.Voice,
			&rec.Language, &rec.SegmentCount, &rec.CachedCount, &rec.TotalDuration,
			&mock, &createdAt); err != nil {
			return nil, fmt.Errorf("scan build row: %w", err)
		}
		rec.Mock = mock != 0
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			rec.CreatedAt = parsed
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
