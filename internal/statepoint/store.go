// Package statepoint persists run metadata alongside the binary statepoint
// files the engine writes. Restart runs use it to locate the most recent
// run in an output directory and to confirm the settings they resume with.
package statepoint

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"fermi/internal/settings"
)

// ErrNoRuns reports an output directory with no recorded runs.
var ErrNoRuns = errors.New("no runs recorded")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL UNIQUE,
    run_mode TEXT NOT NULL,
    seed INTEGER NOT NULL,
    source_count INTEGER NOT NULL,
    settings_json TEXT NOT NULL,
    started_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Run is one recorded simulation run. RunID names the run in statepoint
// filenames and restart lookups; ID is the database row key.
type Run struct {
	ID          int64
	RunID       string
	Mode        settings.RunMode
	Seed        int64
	SourceCount int
	StartedAt   time.Time
}

// Store manages run metadata backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the run database inside outputDir.
func Open(outputDir string) (*Store, error) {
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	dbPath := filepath.Join(outputDir, "runs.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
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

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
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

// RecordRun stores the metadata of a run that is about to start. The
// registry snapshot is serialized so a later restart can confirm it resumes
// with compatible settings.
func (s *Store) RecordRun(ctx context.Context, cfg *settings.Settings, seed int64) (*Run, error) {
	if cfg == nil {
		return nil, errors.New("settings registry is required")
	}

	snapshot, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("serialize settings snapshot: %w", err)
	}

	runID := uuid.NewString()
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, run_mode, seed, source_count, settings_json, started_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		runID,
		string(cfg.RunMode),
		seed,
		len(cfg.ExternalSources),
		string(snapshot),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read run id: %w", err)
	}

	return &Run{
		ID:          id,
		RunID:       runID,
		Mode:        cfg.RunMode,
		Seed:        seed,
		SourceCount: len(cfg.ExternalSources),
		StartedAt:   now,
	}, nil
}

// LatestRun returns the most recently recorded run, or ErrNoRuns. Ordering
// follows the row id: RFC3339Nano strings drop trailing fractional zeros,
// so they do not sort chronologically.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, run_id, run_mode, seed, source_count, started_at
         FROM runs ORDER BY id DESC LIMIT 1`)
	return scanRun(row)
}

// Runs returns every recorded run, oldest first.
func (s *Store) Runs(ctx context.Context) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, run_mode, seed, source_count, started_at
         FROM runs ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var mode string
	var startedAt string
	if err := row.Scan(&run.ID, &run.RunID, &mode, &run.Seed, &run.SourceCount, &startedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRuns
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}
	run.Mode = settings.RunMode(mode)
	parsed, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse run timestamp: %w", err)
	}
	run.StartedAt = parsed
	return &run, nil
}
