// internal/feedback/feedback.go
//
// Feedback pattern model: the per-letter marks a Wordle-style game
// returns for a (guess, answer) pair.
//
// Responsibilities:
//   - Score guesses with the classic two-pass, count-consuming algorithm,
//     which handles repeated letters correctly.
//   - Encode a pattern as a compact base-3 rank for use as a map key.
//   - Parse and render the letter form ("g"=correct, "y"=present,
//     "b"=absent) used on the CLI and over HTTP, plus emoji tiles.
//
// Scoring is pure and deterministic; the only failure mode is a word
// that is not exactly Length lowercase letters.

package feedback

import (
	"fmt"
	"strings"
)

// Length is the fixed word length.
const Length = 5

// NumPatterns is the number of distinct patterns (3^Length).
const NumPatterns = 243

// Mark is the evaluation result for a single letter of a guess.
type Mark uint8

const (
	// Absent: the letter does not occur in the answer (or every
	// occurrence is already consumed by other marks).
	Absent Mark = iota
	// Present: the letter occurs in the answer at a different position.
	Present
	// Correct: the letter is in the correct position.
	Correct
)

// Pattern is the ordered per-position feedback for one guess.
type Pattern [Length]Mark

// LengthError reports a word that is not scoreable.
type LengthError struct {
	Word string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("feedback: %q is not %d lowercase letters a-z", e.Word, Length)
}

// Score evaluates guess against answer using the two-pass algorithm.
//
// Pass 1 marks exact matches Correct and counts the remaining answer
// letters. Pass 2 resolves the rest: a letter with remaining count is
// Present (consuming one occurrence), otherwise Absent. The count table
// is what keeps repeated letters honest: a letter is never credited
// more times than it occurs in the answer.
func Score(guess, answer string) (Pattern, error) {
	if !valid(guess) {
		return Pattern{}, &LengthError{Word: guess}
	}
	if !valid(answer) {
		return Pattern{}, &LengthError{Word: answer}
	}
	return ScoreUnchecked(guess, answer), nil
}

// ScoreUnchecked is Score without validation. Both inputs must be known
// valid, e.g. drawn from a loaded word list; it is the hot path of the
// selector loop.
func ScoreUnchecked(guess, answer string) Pattern {
	var p Pattern
	var counts [26]int

	for i := 0; i < Length; i++ {
		if guess[i] == answer[i] {
			p[i] = Correct
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < Length; i++ {
		if p[i] == Correct {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			p[i] = Present
			counts[j]--
		}
	}
	return p
}

// Validate returns a LengthError unless w is scoreable.
func Validate(w string) error {
	if !valid(w) {
		return &LengthError{Word: w}
	}
	return nil
}

// valid reports whether w is exactly Length lowercase ASCII letters.
func valid(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Rank encodes the pattern as a base-3 number in [0, NumPatterns),
// most significant position first.
func (p Pattern) Rank() uint8 {
	var r uint8
	for _, m := range p {
		r = r*3 + uint8(m)
	}
	return r
}

// AllCorrect reports whether every position is Correct (a solved game).
func (p Pattern) AllCorrect() bool {
	for _, m := range p {
		if m != Correct {
			return false
		}
	}
	return true
}

// Letters renders the pattern in its compact letter form, e.g. "bygyb".
func (p Pattern) Letters() string {
	b := make([]byte, Length)
	for i, m := range p {
		switch m {
		case Correct:
			b[i] = 'g'
		case Present:
			b[i] = 'y'
		default:
			b[i] = 'b'
		}
	}
	return string(b)
}

// String renders the pattern as emoji tiles, e.g. "⬛🟨🟩🟨⬛".
func (p Pattern) String() string {
	var sb strings.Builder
	for _, m := range p {
		switch m {
		case Correct:
			sb.WriteString("🟩")
		case Present:
			sb.WriteString("🟨")
		default:
			sb.WriteString("⬛")
		}
	}
	return sb.String()
}

// Parse reads the letter form produced by Letters. It is
// case-insensitive and accepts exactly Length characters of g/y/b.
func Parse(s string) (Pattern, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Length {
		return Pattern{}, fmt.Errorf("feedback: pattern %q must be %d characters of g/y/b", s, Length)
	}
	var p Pattern
	for i := 0; i < Length; i++ {
		switch s[i] {
		case 'g':
			p[i] = Correct
		case 'y':
			p[i] = Present
		case 'b':
			p[i] = Absent
		default:
			return Pattern{}, fmt.Errorf("feedback: pattern %q must contain only g, y or b", s)
		}
	}
	return p, nil
}
