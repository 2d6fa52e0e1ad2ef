// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Open (and create if missing) the database file with safe defaults
//     (WAL journaling, busy timeout, foreign keys).
//   - Bootstrap the schema idempotently on open.
//   - Insert a run plus its outcomes in one transaction and read them back.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordle-solver/internal/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS sim_runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TEXT    NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	sessions   INTEGER NOT NULL,
	solved     INTEGER NOT NULL,
	failed     INTEGER NOT NULL,
	mean_turns REAL    NOT NULL,
	max_turns  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sim_outcomes (
	run_id INTEGER NOT NULL REFERENCES sim_runs(id),
	word   TEXT    NOT NULL,
	turns  INTEGER NOT NULL,
	solved INTEGER NOT NULL,
	PRIMARY KEY (run_id, word)
);
`

// SQLite implements Store on a local SQLite file.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if missing) the database at dsn.
// The parent directory is created for relative paths like ./data/runs.db.
func Open(dsn string) (*SQLite, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dsn, err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: bootstrap schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// SaveRun inserts the aggregate row and every outcome in one transaction.
func (s *SQLite) SaveRun(ctx context.Context, res *sim.Result) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	r, err := tx.ExecContext(ctx,
		`INSERT INTO sim_runs (started_at, elapsed_ms, sessions, solved, failed, mean_turns, max_turns)
		 VALUES (?,?,?,?,?,?,?)`,
		res.StartedAt.UTC().Format(time.RFC3339),
		res.Elapsed.Milliseconds(),
		res.Sessions, res.Solved, res.Failed,
		res.MeanTurns(), res.MaxTurns,
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: run id: %w", err)
	}

	ins, err := tx.PrepareContext(ctx,
		`INSERT INTO sim_outcomes (run_id, word, turns, solved) VALUES (?,?,?,?)`)
	if err != nil {
		return 0, fmt.Errorf("store: prepare outcomes: %w", err)
	}
	defer ins.Close()
	for _, o := range res.Outcomes {
		if _, err := ins.ExecContext(ctx, id, o.Word, o.Turns, boolToInt(o.Solved)); err != nil {
			return 0, fmt.Errorf("store: insert outcome %q: %w", o.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}
	return id, nil
}

// Runs returns up to limit run summaries, newest first.
func (s *SQLite) Runs(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, elapsed_ms, sessions, solved, failed, mean_turns, max_turns
		 FROM sim_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var started string
		var elapsedMs int64
		if err := rows.Scan(&r.ID, &started, &elapsedMs, &r.Sessions, &r.Solved, &r.Failed, &r.MeanTurns, &r.MaxTurns); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = t
		}
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// RunOutcomes returns the per-word outcomes of one run, ordered by word.
func (s *SQLite) RunOutcomes(ctx context.Context, runID int64) ([]OutcomeRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, turns, solved FROM sim_outcomes WHERE run_id = ? ORDER BY word`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeRow
	for rows.Next() {
		var o OutcomeRow
		var solved int
		if err := rows.Scan(&o.Word, &o.Turns, &solved); err != nil {
			return nil, fmt.Errorf("store: scan outcome: %w", err)
		}
		o.Solved = solved != 0
		out = append(out, o)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
