// Package report records per-slot reconciliation outcomes so runs can be
// reviewed after the fact.
package report

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// ErrNoRuns is returned when the store holds no completed or in-progress runs.
var ErrNoRuns = errors.New("no runs recorded")

// Result is one reconciled (item, slot) outcome.
type Result struct {
	Library string
	Title   string
	Slot    string
	Outcome string
	Detail  string
}

// Run is a recorded reconciliation pass.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time // zero while the run is still open
	Results    []Result
}

// Store persists run history in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the run history database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open report db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply report schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// StartRun records a new run and returns its ID.
func (s *Store) StartRun(ctx context.Context) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, started_at) VALUES (?, ?)", runID, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}
	return runID, nil
}

// FinishRun stamps the run's completion time.
func (s *Store) FinishRun(ctx context.Context, runID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE runs SET finished_at = ? WHERE id = ?", time.Now().UTC(), runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Record appends one outcome to a run.
func (s *Store) Record(ctx context.Context, runID string, res Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (run_id, library, title, slot, outcome, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, res.Library, res.Title, res.Slot, res.Outcome, res.Detail, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// LastRun returns the most recently started run and its results.
func (s *Store) LastRun(ctx context.Context) (*Run, error) {
	var run Run
	var finished sql.NullTime
	err := s.db.QueryRowContext(ctx,
		"SELECT id, started_at, finished_at FROM runs ORDER BY started_at DESC LIMIT 1",
	).Scan(&run.ID, &run.StartedAt, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("query last run: %w", err)
	}
	if finished.Valid {
		run.FinishedAt = finished.Time
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT library, title, slot, outcome, detail FROM results WHERE run_id = ? ORDER BY id",
		run.ID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res Result
		if err := rows.Scan(&res.Library, &res.Title, &res.Slot, &res.Outcome, &res.Detail); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		run.Results = append(run.Results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	return &run, nil
}

// Summary tallies outcomes per tag for a run.
func (r *Run) Summary() map[string]int {
	counts := make(map[string]int)
	for _, res := range r.Results {
		counts[res.Outcome]++
	}
	return counts
}
