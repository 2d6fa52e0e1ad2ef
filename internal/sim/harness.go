// internal/sim/harness.go
//
// Batch simulation harness: one solver session per solution word,
// fanned out over a fixed-size worker pool and merged into aggregate
// statistics.
//
// Sessions are fully independent (each engine copies its candidate
// set), so the aggregate never depends on completion order and needs no
// locking: workers send Outcome values to a single reducing loop.
// Cancellation is coarse-grained, between sessions; already-completed
// outcomes are kept and returned alongside the context error.

package sim

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Options configures a batch run.
type Options struct {
	Workers  int  // pool size; <= 0 means runtime.NumCPU()
	Limit    int  // cap on words simulated; <= 0 means all
	MaxTurns int  // per-session budget; <= 0 means solver.DefaultMaxTurns
	Progress bool // render a progress bar on stderr
}

// Run simulates one session per word in solutions, each seeded with the
// full solutions slice as its candidate set and guessing from allowed.
// A session-fatal error (an inconsistent candidate set) is recorded as
// that word's failure; the batch always completes unless the context is
// cancelled.
func Run(ctx context.Context, solutions, allowed []string, opts Options) (*Result, error) {
	words := solutions
	if opts.Limit > 0 && opts.Limit < len(words) {
		words = words[:opts.Limit]
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = solver.DefaultMaxTurns
	}

	res := newResult(maxTurns)
	if len(words) == 0 {
		return res, nil
	}

	log.Debug().
		Int("words", len(words)).
		Int("workers", workers).
		Int("max_turns", maxTurns).
		Msg("starting batch simulation")

	jobs := make(chan string)
	outcomes := make(chan Outcome)

	// Feed jobs until done or cancelled. Cancellation stops new
	// sessions; in-flight ones run to completion.
	go func() {
		defer close(jobs)
		for _, w := range words {
			select {
			case jobs <- w:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range jobs {
				outcomes <- simulate(w, solutions, allowed, maxTurns)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(words)), "simulating")
	}

	start := time.Now()
	for o := range outcomes {
		res.add(o)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	res.finish(start)

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// simulate runs a single session with a simulated oracle fixed to
// answer and reduces it to an Outcome.
func simulate(answer string, solutions, allowed []string, maxTurns int) Outcome {
	oracle, err := solver.NewSimulatedOracle(answer)
	if err != nil {
		return Outcome{Word: answer, Err: err}
	}

	eng := solver.NewEngine(solutions, allowed, maxTurns)
	transcript, err := eng.Solve(context.Background(), oracle)
	if err != nil {
		// Session-fatal; becomes this word's failure entry.
		log.Debug().Err(err).Str("word", answer).Msg("session failed")
		return Outcome{Word: answer, Turns: len(transcript), Err: err}
	}

	o := Outcome{Word: answer, Turns: len(transcript)}
	if eng.State() == solver.Solved {
		o.Solved = true
	}
	return o
}

// sortOutcomes orders outcomes by word so results are reproducible
// regardless of completion order.
func sortOutcomes(outcomes []Outcome) {
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Word < outcomes[j].Word })
}
