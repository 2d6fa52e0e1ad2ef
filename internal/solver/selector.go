// internal/solver/selector.go
//
// Guess selection by expected information gain.
//
// Every allowed guess partitions the current candidate set by the
// pattern it would produce against each candidate; the guess whose
// partition has the highest Shannon entropy (in bits) is the one that,
// in expectation, tells us the most about the hidden word. This scan is
// O(|allowed| × |candidates|) and dominates the cost of the whole
// solver; it is why the full-dictionary benchmark is long-running.
//
// Scores are defined relative to the current candidate set and are
// never cached across different candidate sets.

package solver

import (
	"math"
	"sort"

	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// entropyTolerance bounds the floating-point slack inside which two
// entropies are considered tied.
const entropyTolerance = 1e-9

// Suggestion pairs a guess with its expected information gain.
type Suggestion struct {
	Word         string
	Entropy      float64 // bits
	InCandidates bool    // the guess could itself be the answer
}

// Select returns the best next guess for the current candidate set.
//
// Tie-break policy, fixed for reproducibility: entropies within
// entropyTolerance are equal; a guess inside the candidate set beats one
// outside it; the lexicographically smallest word wins what remains.
//
// When a single candidate is left it is returned directly: every guess
// has zero entropy then, and guessing the candidate ends the game.
func Select(candidates, allowed []string) (Suggestion, error) {
	switch len(candidates) {
	case 0:
		return Suggestion{}, ErrNoCandidates
	case 1:
		return Suggestion{Word: candidates[0], InCandidates: true}, nil
	}

	inCand := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		inCand[c] = struct{}{}
	}

	// Scanning in sorted order realizes the lexicographic tie-break:
	// the first guess reaching the best entropy keeps it.
	guesses := allowed
	if !sort.StringsAreSorted(guesses) {
		guesses = append([]string(nil), allowed...)
		sort.Strings(guesses)
	}

	var best Suggestion
	haveBest := false
	for _, g := range guesses {
		s := Suggestion{Word: g, Entropy: entropy(g, candidates)}
		_, s.InCandidates = inCand[g]
		if !haveBest || better(s, best) {
			best = s
			haveBest = true
		}
	}
	if !haveBest {
		return Suggestion{}, ErrNoCandidates
	}
	return best, nil
}

// Rank scores every allowed guess and returns the top n suggestions,
// ordered by the same policy Select uses.
func Rank(candidates, allowed []string, n int) ([]Suggestion, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	inCand := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		inCand[c] = struct{}{}
	}

	all := make([]Suggestion, 0, len(allowed))
	for _, g := range allowed {
		s := Suggestion{Word: g, Entropy: entropy(g, candidates)}
		_, s.InCandidates = inCand[g]
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return better(all[i], all[j]) })

	if n > 0 && n < len(all) {
		all = all[:n]
	}
	return all, nil
}

// better reports whether s should be preferred over cur.
func better(s, cur Suggestion) bool {
	if s.Entropy > cur.Entropy+entropyTolerance {
		return true
	}
	if s.Entropy < cur.Entropy-entropyTolerance {
		return false
	}
	if s.InCandidates != cur.InCandidates {
		return s.InCandidates
	}
	return s.Word < cur.Word
}

// entropy computes the Shannon entropy, in bits, of the pattern
// distribution guess induces over candidates. Candidates are grouped by
// the base-3 pattern rank so each word is scored exactly once.
func entropy(guess string, candidates []string) float64 {
	var counts [feedback.NumPatterns]int
	for _, a := range candidates {
		counts[feedback.ScoreUnchecked(guess, a).Rank()]++
	}

	n := float64(len(candidates))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
