// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history records ptatools runs in a local SQLite ledger.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotFound  = errors.New("run not found")
	ErrAmbiguous = errors.New("run id prefix matches more than one run")
)

// =============================================================================
// SCHEMA
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	command     TEXT NOT NULL,
	term        TEXT NOT NULL DEFAULT '',
	version     TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'running',
	error       TEXT NOT NULL DEFAULT '',
	started_at  INTEGER NOT NULL,
	finished_at INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_outputs (
	run_id   TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	path     TEXT NOT NULL,
	PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
`

// Run statuses.
const (
	StatusRunning = "running"
	StatusOK      = "ok"
	StatusFailed  = "failed"
)

// =============================================================================
// STORE
// =============================================================================

// Run is one recorded suite run.
type Run struct {
	ID       string
	Command  string
	Term     string
	Version  string
	Status   string
	Error    string
	Outputs  []string
	Started  time.Time
	Finished time.Time
}

// Store is the run-history ledger.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Begin records the start of a run and returns it with a fresh id.
func (s *Store) Begin(command, term, version string) (*Run, error) {
	run := &Run{
		ID:      uuid.NewString(),
		Command: command,
		Term:    term,
		Version: version,
		Status:  StatusRunning,
		Started: time.Now(),
	}
	_, err := s.db.Exec(`
		INSERT INTO runs (id, command, term, version, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Command, run.Term, run.Version, run.Status, run.Started.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}
	return run, nil
}

// Finish records a run's outcome: its output files and its final status.
// A nil runErr marks the run ok.
func (s *Store) Finish(run *Run, outputs []string, runErr error) error {
	run.Outputs = outputs
	run.Finished = time.Now()
	run.Status = StatusOK
	if runErr != nil {
		run.Status = StatusFailed
		run.Error = runErr.Error()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to record run outcome: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE runs SET status = ?, error = ?, finished_at = ? WHERE id = ?
	`, run.Status, run.Error, run.Finished.Unix(), run.ID)
	if err != nil {
		return fmt.Errorf("failed to record run outcome: %w", err)
	}

	for i, path := range outputs {
		if _, err := tx.Exec(`
			INSERT INTO run_outputs (run_id, position, path) VALUES (?, ?, ?)
		`, run.ID, i, path); err != nil {
			return fmt.Errorf("failed to record run output: %w", err)
		}
	}

	return tx.Commit()
}

// Recent returns the most recent runs, newest first. A limit of 0 means 20.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, command, term, version, status, error, started_at, finished_at
		FROM runs ORDER BY started_at DESC, id LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns the run whose id starts with idPrefix, outputs included.
// A prefix matching multiple runs is ErrAmbiguous.
func (s *Store) Get(idPrefix string) (*Run, error) {
	rows, err := s.db.Query(`
		SELECT id, command, term, version, status, error, started_at, finished_at
		FROM runs WHERE id LIKE ? ESCAPE '\' ORDER BY started_at DESC LIMIT 2
	`, escapeLike(idPrefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to look up run: %w", err)
	}
	defer rows.Close()

	var matches []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idPrefix)
	case 1:
		// fall through
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, idPrefix)
	}

	run := matches[0]
	outRows, err := s.db.Query(`
		SELECT path FROM run_outputs WHERE run_id = ? ORDER BY position
	`, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run outputs: %w", err)
	}
	defer outRows.Close()

	for outRows.Next() {
		var path string
		if err := outRows.Scan(&path); err != nil {
			return nil, err
		}
		run.Outputs = append(run.Outputs, path)
	}
	return &run, outRows.Err()
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var started, finished int64
	err := rows.Scan(&run.ID, &run.Command, &run.Term, &run.Version,
		&run.Status, &run.Error, &started, &finished)
	if err != nil {
		return run, fmt.Errorf("failed to scan run: %w", err)
	}
	run.Started = time.Unix(started, 0)
	if finished > 0 {
		run.Finished = time.Unix(finished, 0)
	}
	return run, nil
}

// escapeLike escapes LIKE metacharacters so an id prefix matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
