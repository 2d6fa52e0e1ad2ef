package words

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeList(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	answers := writeList(t, "answers.txt", "crane\nAPPLE\n  dough  \n\nberry\n")
	allowed := writeList(t, "allowed.txt", "eager\nslate\n")

	l, err := Load(answers, allowed)
	if err != nil {
		t.Fatal(err)
	}

	a, g := l.Stats()
	if a != 4 {
		t.Errorf("answers = %d, expected 4", a)
	}
	// Allowed always includes the answers.
	if g != 6 {
		t.Errorf("allowed = %d, expected 6", g)
	}
	if !sort.StringsAreSorted(l.Answers()) || !sort.StringsAreSorted(l.Allowed()) {
		t.Error("lists must be sorted")
	}
	if !l.IsAnswer("apple") || !l.IsAnswer("APPLE") {
		t.Error("case-normalized answer lookup failed")
	}
	if !l.IsAllowed("slate") || !l.IsAllowed("crane") {
		t.Error("allowed lookup failed")
	}
	if l.IsAnswer("slate") {
		t.Error("slate is allowed but not an answer")
	}
}

func TestLoadRejectsMalformedLines(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		badWord string
		badLine int
	}{
		{"short", "crane\ncat\n", "cat", 2},
		{"long", "toolong\n", "toolong", 1},
		{"digits", "crane\nc4ane\nberry\n", "c4ane", 2},
		{"punct", "cra-e\n", "cra-e", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeList(t, "bad.txt", tc.content)
			_, err := Load(path, path)
			if err == nil {
				t.Fatal("expected error for malformed list")
			}
			var iwe *InvalidWordError
			if !errors.As(err, &iwe) {
				t.Fatalf("error type %T, expected *InvalidWordError", err)
			}
			if iwe.Word != tc.badWord || iwe.Line != tc.badLine {
				t.Errorf("error located %q at line %d, expected %q at line %d", iwe.Word, iwe.Line, tc.badWord, tc.badLine)
			}
		})
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Error("empty answers must be rejected")
	}
	if _, err := New([]string{"crane", "bad"}, nil); err == nil {
		t.Error("short word must be rejected")
	}

	l, err := New([]string{"CRANE", "crane", "apple"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Deduplicated after normalization.
	if a, _ := l.Stats(); a != 2 {
		t.Errorf("answers = %d, expected 2 after dedup", a)
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", "")

	l, err := LoadFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	a, g := l.Stats()
	if a == 0 || g < a {
		t.Errorf("embedded defaults: answers=%d allowed=%d", a, g)
	}
	for _, w := range l.Allowed() {
		if !Valid(w) {
			t.Errorf("embedded word %q is invalid", w)
		}
	}
}

func TestLoadFromEnvAllowedOnly(t *testing.T) {
	allowed := writeList(t, "allowed.txt", "crane\nberry\n")
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", allowed)

	l, err := LoadFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	a, g := l.Stats()
	if a != 2 || g != 2 {
		t.Errorf("answers=%d allowed=%d, expected both lists to be the allowed file", a, g)
	}
}

func TestValid(t *testing.T) {
	testCases := []struct {
		w        string
		expected bool
	}{
		{"crane", true},
		{"zzzzz", true},
		{"", false},
		{"cran", false},
		{"cranes", false},
		{"CRANE", false},
		{"cr4ne", false},
	}
	for _, tc := range testCases {
		if got := Valid(tc.w); got != tc.expected {
			t.Errorf("Valid(%q) = %t, expected %t", tc.w, got, tc.expected)
		}
	}
}
