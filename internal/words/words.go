// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load the answer and allowed-guess lists from files or fall back to
//     small embedded defaults.
//   - Validate every line strictly (exactly 5 lowercase letters a–z);
//     malformed lines are an error, never skipped.
//   - Expose an immutable Lists value with sorted slices and lookup sets.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Environment variables (LoadFromEnv):
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// There is no package-level state: a Lists value is built once at startup
// and passed to every component that needs it. After construction it is
// read-only and safe to share across goroutines.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Length is the fixed word length for both lists.
const Length = 5

// --- embedded tiny defaults (solver runs even if no files configured) ---

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_allowed.txt
var embeddedAllowed string

// InvalidWordError reports a word that failed validation, with enough
// context to locate it in the source file when loaded from disk.
type InvalidWordError struct {
	File string // source file, empty when constructed from a slice
	Line int    // 1-based line number, 0 when unknown
	Word string
}

func (e *InvalidWordError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("words: %s:%d: %q is not %d lowercase letters a-z", e.File, e.Line, e.Word, Length)
	}
	return fmt.Sprintf("words: %q is not %d lowercase letters a-z", e.Word, Length)
}

// Lists holds the two word lists. Both slices are sorted and
// length-uniform; the allowed list is a superset of the answers.
type Lists struct {
	answers    []string
	allowed    []string
	answerSet  map[string]struct{}
	allowedSet map[string]struct{}
}

// New builds a Lists value from in-memory slices. Words are trimmed and
// lowercased, then validated; the allowed list is extended with every
// answer and both lists are deduplicated and sorted.
func New(answers, allowed []string) (*Lists, error) {
	ans, err := normalize(answers)
	if err != nil {
		return nil, err
	}
	all, err := normalize(allowed)
	if err != nil {
		return nil, err
	}
	if len(ans) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	l := &Lists{
		answerSet:  toSet(ans),
		allowedSet: toSet(all),
	}
	for w := range l.answerSet {
		l.allowedSet[w] = struct{}{}
	}
	l.answers = sortedKeys(l.answerSet)
	l.allowed = sortedKeys(l.allowedSet)
	return l, nil
}

// Load reads both lists from files. Every line must be a valid word.
func Load(answersPath, allowedPath string) (*Lists, error) {
	ans, err := readWordFile(answersPath)
	if err != nil {
		return nil, err
	}
	all, err := readWordFile(allowedPath)
	if err != nil {
		return nil, err
	}
	return New(ans, all)
}

// LoadFromEnv resolves the lists from the environment:
//  1. Both WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE set: load both.
//  2. Only WORDS_ALLOWED_FILE set: use it for answers and guesses alike.
//  3. Neither set: fall back to the embedded default lists.
func LoadFromEnv() (*Lists, error) {
	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

	switch {
	case answersPath != "" && allowedPath != "":
		return Load(answersPath, allowedPath)

	case answersPath == "" && allowedPath != "":
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(all, all)

	default:
		return New(strings.Split(embeddedAnswers, "\n"), strings.Split(embeddedAllowed, "\n"))
	}
}

// readWordFile loads one word per line, trimming and lowercasing.
// A line that is not a valid word fails the whole load so that the
// resulting lists are guaranteed length-uniform.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" {
			continue
		}
		if !Valid(w) {
			return nil, &InvalidWordError{File: path, Line: line, Word: w}
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// normalize trims, lowercases and validates a raw slice, dropping blanks.
func normalize(raw []string) ([]string, error) {
	var out []string
	for _, s := range raw {
		w := strings.TrimSpace(strings.ToLower(s))
		if w == "" {
			continue
		}
		if !Valid(w) {
			return nil, &InvalidWordError{Word: w}
		}
		out = append(out, w)
	}
	return out, nil
}

// Valid reports whether w is exactly Length lowercase ASCII letters.
func Valid(w string) bool {
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

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Answers returns the sorted answer list. Callers must not modify it.
func (l *Lists) Answers() []string { return l.answers }

// Allowed returns the sorted allowed-guess list. Callers must not modify it.
func (l *Lists) Allowed() []string { return l.allowed }

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lists) IsAnswer(w string) bool {
	_, ok := l.answerSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount, allowedCount int) {
	return len(l.answers), len(l.allowed)
}
