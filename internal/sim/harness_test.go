package sim

import (
	"context"
	"sort"
	"testing"
)

var toyWords = []string{"apple", "berry", "crane", "dough", "eager"}

func TestRunSolvesToyList(t *testing.T) {
	res, err := Run(context.Background(), toyWords, toyWords, Options{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	if res.Sessions != len(toyWords) {
		t.Errorf("Sessions = %d, expected %d", res.Sessions, len(toyWords))
	}
	if res.Solved+res.Failed != res.Sessions {
		t.Errorf("Solved(%d) + Failed(%d) != Sessions(%d)", res.Solved, res.Failed, res.Sessions)
	}
	if res.Failed != 0 {
		t.Errorf("Failed = %d (%v), expected every toy word solved", res.Failed, res.FailedWords)
	}

	histTotal := 0
	for _, c := range res.Histogram {
		histTotal += c
	}
	if histTotal != res.Solved {
		t.Errorf("histogram sums to %d, expected %d solved", histTotal, res.Solved)
	}

	if mean := res.MeanTurns(); mean < 1 || mean > float64(res.MaxTurns) {
		t.Errorf("MeanTurns = %f out of range", mean)
	}

	// Per-word outcomes are sorted and complete.
	if len(res.Outcomes) != len(toyWords) {
		t.Fatalf("Outcomes has %d entries, expected %d", len(res.Outcomes), len(toyWords))
	}
	if !sort.SliceIsSorted(res.Outcomes, func(i, j int) bool { return res.Outcomes[i].Word < res.Outcomes[j].Word }) {
		t.Error("Outcomes not sorted by word")
	}
}

func TestRunEmptySolutions(t *testing.T) {
	res, err := Run(context.Background(), nil, toyWords, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Sessions != 0 || res.Solved != 0 || res.Failed != 0 {
		t.Errorf("empty batch produced %+v", res)
	}
	if res.MeanTurns() != 0 {
		t.Errorf("MeanTurns on empty batch = %f", res.MeanTurns())
	}
}

func TestRunLimit(t *testing.T) {
	res, err := Run(context.Background(), toyWords, toyWords, Options{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Sessions != 2 {
		t.Errorf("Sessions = %d, expected limit of 2", res.Sessions)
	}
}

func TestRunRecordsFailures(t *testing.T) {
	// With a one-turn budget every session opens with the same guess
	// (apple), so only apple itself can be solved.
	res, err := Run(context.Background(), toyWords, toyWords, Options{MaxTurns: 1})
	if err != nil {
		t.Fatal(err)
	}

	if res.Solved != 1 {
		t.Errorf("Solved = %d, expected 1", res.Solved)
	}
	if res.Failed != 4 {
		t.Errorf("Failed = %d, expected 4", res.Failed)
	}
	expected := []string{"berry", "crane", "dough", "eager"}
	if len(res.FailedWords) != len(expected) {
		t.Fatalf("FailedWords = %v", res.FailedWords)
	}
	for i, w := range expected {
		if res.FailedWords[i] != w {
			t.Errorf("FailedWords[%d] = %q, expected %q", i, res.FailedWords[i], w)
		}
	}
}

func TestRunResultIndependentOfWorkerCount(t *testing.T) {
	// Sessions share nothing, so the aggregate must not depend on how
	// the batch was scheduled.
	serial, err := Run(context.Background(), toyWords, toyWords, Options{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Run(context.Background(), toyWords, toyWords, Options{Workers: 4})
	if err != nil {
		t.Fatal(err)
	}

	if serial.Solved != parallel.Solved || serial.Failed != parallel.Failed {
		t.Errorf("worker count changed the aggregate: %+v vs %+v", serial, parallel)
	}
	for turns := range serial.Histogram {
		if serial.Histogram[turns] != parallel.Histogram[turns] {
			t.Errorf("histogram[%d]: %d vs %d", turns, serial.Histogram[turns], parallel.Histogram[turns])
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, toyWords, toyWords, Options{Workers: 1})
	if err == nil {
		t.Fatal("expected a context error from a cancelled run")
	}
	if res == nil {
		t.Fatal("cancelled run must still return its partial aggregate")
	}
	if res.Sessions > len(toyWords) {
		t.Errorf("Sessions = %d out of range", res.Sessions)
	}
}
