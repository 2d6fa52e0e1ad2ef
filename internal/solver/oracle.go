// internal/solver/oracle.go
//
// The oracle seam: where feedback patterns come from. Interactive play
// and batch simulation differ only in the Oracle implementation, so
// benchmarked behavior is exactly the behavior of real play.

package solver

import (
	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// Oracle produces the feedback pattern for a guess. Implementations are
// a simulated game holding a fixed answer, or a front end relaying the
// tiles a real game displayed.
type Oracle interface {
	FeedbackFor(guess string) (feedback.Pattern, error)
}

// SimulatedOracle scores guesses against a fixed secret answer.
type SimulatedOracle struct {
	answer string
}

// NewSimulatedOracle validates the secret and returns an oracle for it.
func NewSimulatedOracle(answer string) (*SimulatedOracle, error) {
	if err := feedback.Validate(answer); err != nil {
		return nil, err
	}
	return &SimulatedOracle{answer: answer}, nil
}

// Answer returns the fixed secret.
func (o *SimulatedOracle) Answer() string { return o.answer }

// FeedbackFor scores guess against the secret.
func (o *SimulatedOracle) FeedbackFor(guess string) (feedback.Pattern, error) {
	return feedback.Score(guess, o.answer)
}
