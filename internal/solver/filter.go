// internal/solver/filter.go
//
// Candidate pruning: keep only the words consistent with an observed
// feedback pattern.

package solver

import (
	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// Filter returns the candidates whose pattern against guess equals p.
// A candidate survives exactly when scoring the guess against it would
// have produced the observed pattern, so the true answer is never
// eliminated by the pattern it itself produced.
//
// The input slice is never mutated; the result is a fresh subset.
func Filter(candidates []string, guess string, p feedback.Pattern) ([]string, error) {
	if err := feedback.Validate(guess); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if len(c) != len(guess) {
			return nil, &feedback.LengthError{Word: c}
		}
		if feedback.ScoreUnchecked(guess, c) == p {
			out = append(out, c)
		}
	}
	return out, nil
}
