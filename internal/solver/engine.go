// internal/solver/engine.go
//
// Solve-loop state machine for a single session.
//
// States: Active → Solved | Failed. An engine owns its own copy of the
// candidate set, so concurrent sessions never share mutable state; the
// allowed list is read-only and shared. Engines are single-use: one
// session per instance.
//
// Feedback is injected through the Oracle seam, so the identical engine
// drives both interactive play (a human relaying the real game's tiles)
// and batch simulation (a SimulatedOracle holding a fixed answer).

package solver

import (
	"context"

	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// DefaultMaxTurns is the standard guess budget.
const DefaultMaxTurns = 6

// State is the session lifecycle state.
type State int

const (
	Active State = iota
	Solved
	Failed
)

func (s State) String() string {
	switch s {
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	default:
		return "active"
	}
}

// Step is one (guess, feedback) pair of a session.
type Step struct {
	Guess   string
	Pattern feedback.Pattern
}

// Transcript is the ordered record of a session, terminated by an
// all-correct pattern or by exhausting the turn budget.
type Transcript []Step

// Engine runs one solve session.
type Engine struct {
	candidates []string
	allowed    []string
	maxTurns   int
	transcript Transcript
	state      State
}

// NewEngine starts a session over the given solution candidates and
// allowed guesses. The candidate slice is copied; the allowed slice is
// shared read-only. maxTurns <= 0 selects DefaultMaxTurns.
func NewEngine(candidates, allowed []string, maxTurns int) *Engine {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Engine{
		candidates: append([]string(nil), candidates...),
		allowed:    allowed,
		maxTurns:   maxTurns,
		state:      Active,
	}
}

// State reports the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Turn reports the number of guesses submitted so far.
func (e *Engine) Turn() int { return len(e.transcript) }

// Candidates returns a copy of the remaining candidate set.
func (e *Engine) Candidates() []string {
	return append([]string(nil), e.candidates...)
}

// Transcript returns a copy of the session record so far.
func (e *Engine) Transcript() Transcript {
	return append(Transcript(nil), e.transcript...)
}

// NextGuess picks the best guess for the current candidate set.
// Only valid while the session is Active.
func (e *Engine) NextGuess() (string, error) {
	if e.state != Active {
		return "", ErrSessionOver
	}
	s, err := Select(e.candidates, e.allowed)
	if err != nil {
		return "", err
	}
	return s.Word, nil
}

// SubmitFeedback records the pattern observed for guess and advances
// the state machine:
//   - all-correct pattern:        Active → Solved
//   - empty filtered candidates:  Active → Failed, ErrNoCandidates
//   - turn budget exhausted:      Active → Failed
//   - otherwise:                  Active → Active with fewer candidates
func (e *Engine) SubmitFeedback(guess string, p feedback.Pattern) error {
	if e.state != Active {
		return ErrSessionOver
	}
	if err := feedback.Validate(guess); err != nil {
		return err
	}

	e.transcript = append(e.transcript, Step{Guess: guess, Pattern: p})

	if p.AllCorrect() {
		e.state = Solved
		return nil
	}

	next, err := Filter(e.candidates, guess, p)
	if err != nil {
		return err
	}
	if len(next) == 0 {
		e.state = Failed
		return ErrNoCandidates
	}
	e.candidates = next

	if len(e.transcript) >= e.maxTurns {
		e.state = Failed
	}
	return nil
}

// Solve drives the session to a terminal state against the given
// oracle, returning the transcript. The context is checked between
// turns; a session interrupted mid-flight returns what it has.
func (e *Engine) Solve(ctx context.Context, o Oracle) (Transcript, error) {
	for e.state == Active {
		if err := ctx.Err(); err != nil {
			return e.Transcript(), err
		}
		guess, err := e.NextGuess()
		if err != nil {
			return e.Transcript(), err
		}
		p, err := o.FeedbackFor(guess)
		if err != nil {
			return e.Transcript(), err
		}
		if err := e.SubmitFeedback(guess, p); err != nil {
			return e.Transcript(), err
		}
	}
	return e.Transcript(), nil
}
