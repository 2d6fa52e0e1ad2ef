// internal/store/store.go
//
// Persistence interface for batch simulation runs. Implementations may
// be backed by SQLite (this package) or anything else; the harness does
// not depend on storage at all, callers persist a finished Result when
// they want history.

package store

import (
	"context"
	"time"

	"github.com/robalobadob/wordle-solver/internal/sim"
)

// RunSummary is the aggregate row of one persisted run.
type RunSummary struct {
	ID        int64
	StartedAt time.Time
	Elapsed   time.Duration
	Sessions  int
	Solved    int
	Failed    int
	MeanTurns float64
	MaxTurns  int
}

// OutcomeRow is one per-word result of a persisted run.
type OutcomeRow struct {
	Word   string
	Turns  int
	Solved bool
}

// Store persists simulation runs and their per-word outcomes.
type Store interface {
	// SaveRun persists a finished result and returns its run ID.
	SaveRun(ctx context.Context, res *sim.Result) (int64, error)

	// Runs returns the most recent run summaries, newest first.
	Runs(ctx context.Context, limit int) ([]RunSummary, error)

	// RunOutcomes returns the per-word outcomes of a run, by word.
	RunOutcomes(ctx context.Context, runID int64) ([]OutcomeRow, error)

	Close() error
}
