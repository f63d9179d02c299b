// Package history keeps an optional SQLite record of catalog build runs.
// It is observability only: the catalog itself is recomputed from scratch
// on every run and never reads this store.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded catalog build.
type Run struct {
	RunID     string
	Started   time.Time
	Finished  time.Time
	Tools     int
	Explicit  int
	Generated int
	Fallback  int
	Output    string
}

// Store persists build runs. Use ":memory:" for an in-memory database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the run history database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		started INTEGER NOT NULL,
		finished INTEGER NOT NULL,
		tools INTEGER NOT NULL,
		tier_explicit INTEGER NOT NULL,
		tier_generated INTEGER NOT NULL,
		tier_fallback INTEGER NOT NULL,
		output TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record appends one build run.
func (s *Store) Record(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (run_id, started, finished, tools, tier_explicit, tier_generated, tier_fallback, output) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		run.RunID, run.Started.Unix(), run.Finished.Unix(), run.Tools, run.Explicit, run.Generated, run.Fallback, run.Output,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT run_id, started, finished, tools, tier_explicit, tier_generated, tier_fallback, output FROM runs ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished int64
		if err := rows.Scan(&r.RunID, &started, &finished, &r.Tools, &r.Explicit, &r.Generated, &r.Fallback, &r.Output); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Started = time.Unix(started, 0)
		r.Finished = time.Unix(finished, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
