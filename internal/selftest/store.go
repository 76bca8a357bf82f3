// Package selftest is the CLI/web-facing wrapper around
// internal/thistlethwaite's deterministic self-test harness: it tags each
// run with a uuid, optionally persists run history to a local SQLite
// database, and is the thing internal/cli's selftest command and
// internal/web's /api/selftest endpoint both call into.
package selftest

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure-Go sqlite driver, no cgo

	"github.com/ehrlich-b/cube/internal/thistlethwaite"
)

// Store persists self-test run summaries to a SQLite database. A nil
// *Store is valid and simply disables persistence, matching the flag's
// "empty path -> feature off" convention used elsewhere in the CLI.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) the SQLite database at path. An
// empty path returns a nil *Store and a nil error.
func OpenStore(path string) (*Store, error) {
	if path == "" {
		return nil, nil
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("selftest: opening store: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	scramble_count INTEGER NOT NULL,
	best_moves INTEGER NOT NULL,
	worst_moves INTEGER NOT NULL,
	avg_moves REAL NOT NULL,
	best_time_ns INTEGER NOT NULL,
	worst_time_ns INTEGER NOT NULL,
	avg_time_ns INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("selftest: creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle. It is a no-op on a nil
// *Store.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records one self-test run's aggregate report under runID. It is
// a no-op on a nil *Store.
func (s *Store) SaveRun(runID string, startedAt time.Time, rep thistlethwaite.Report) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, started_at, scramble_count, best_moves, worst_moves, avg_moves, best_time_ns, worst_time_ns, avg_time_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, startedAt.UTC().Format(time.RFC3339Nano), len(rep.Results),
		rep.BestMoves, rep.WorstMoves, rep.AvgMoves,
		rep.BestTime.Nanoseconds(), rep.WorstTime.Nanoseconds(), rep.AvgTime.Nanoseconds(),
	)
	if err != nil {
		return fmt.Errorf("selftest: saving run %s: %w", runID, err)
	}
	return nil
}
