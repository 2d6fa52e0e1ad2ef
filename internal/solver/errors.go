// internal/solver/errors.go
//
// Sentinel errors shared by the solver components.

package solver

import "errors"

var (
	// ErrNoCandidates means the candidate set is (or became) empty: the
	// feedback history is inconsistent with every word in the solution
	// list. Fatal for the session; a batch records it as a failure.
	ErrNoCandidates = errors.New("solver: no candidates remain")

	// ErrSessionOver is returned when a terminal-state engine is asked
	// to continue.
	ErrSessionOver = errors.New("solver: session already finished")
)
