// internal/sim/result.go
//
// Aggregate statistics for a batch simulation. Built incrementally by
// the harness's reducing loop, immutable once the batch completes.
// Formatting for humans lives with the callers.

package sim

import (
	"sort"
	"time"
)

// Outcome is the result of one session.
type Outcome struct {
	Word   string
	Turns  int   // guesses submitted (meaningful when Solved)
	Solved bool
	Err    error // session-fatal error, recorded rather than propagated
}

// Result aggregates a batch of sessions. Aggregation is commutative, so
// the values are independent of the order sessions completed in.
type Result struct {
	Sessions int
	Solved   int
	Failed   int
	MaxTurns int

	// Histogram[n] counts sessions solved in exactly n turns, for
	// n in 1..MaxTurns. Index 0 is unused.
	Histogram []int

	// FailedWords lists the words not solved within the budget (or
	// whose session errored), sorted.
	FailedWords []string

	// Outcomes holds every per-word result, sorted by word.
	Outcomes []Outcome

	StartedAt time.Time
	Elapsed   time.Duration
}

func newResult(maxTurns int) *Result {
	return &Result{
		MaxTurns:  maxTurns,
		Histogram: make([]int, maxTurns+1),
		StartedAt: time.Now().UTC(),
	}
}

// add folds one outcome into the aggregate.
func (r *Result) add(o Outcome) {
	r.Sessions++
	r.Outcomes = append(r.Outcomes, o)
	if o.Solved && o.Turns >= 1 && o.Turns <= r.MaxTurns {
		r.Solved++
		r.Histogram[o.Turns]++
		return
	}
	r.Failed++
	r.FailedWords = append(r.FailedWords, o.Word)
}

// finish freezes the aggregate: sorts the per-word data and stamps the
// elapsed time.
func (r *Result) finish(start time.Time) {
	sortOutcomes(r.Outcomes)
	sort.Strings(r.FailedWords)
	r.Elapsed = time.Since(start)
}

// MeanTurns is the average number of turns over solved sessions.
// Zero when nothing was solved.
func (r *Result) MeanTurns() float64 {
	if r.Solved == 0 {
		return 0
	}
	total := 0
	for turns, count := range r.Histogram {
		total += turns * count
	}
	return float64(total) / float64(r.Solved)
}
