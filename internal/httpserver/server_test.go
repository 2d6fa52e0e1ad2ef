package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/robalobadob/wordle-solver/internal/words"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	toy := []string{"apple", "berry", "crane", "dough", "eager"}
	lists, err := words.New(toy, toy)
	if err != nil {
		t.Fatal(err)
	}
	return New(lists)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDebugWords(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/debug/words", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var counts map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatal(err)
	}
	if counts["answers"] != 5 || counts["allowed"] != 5 {
		t.Errorf("counts = %v", counts)
	}
}

func TestSuggestEmptyHistory(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/solve/suggest", `{"history":[]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res suggestRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Guess != "apple" {
		t.Errorf("guess = %q, expected the deterministic opener apple", res.Guess)
	}
	if res.Candidates != 5 {
		t.Errorf("candidates = %d, expected 5", res.Candidates)
	}
	if res.State != "active" {
		t.Errorf("state = %q", res.State)
	}
	if len(res.Alternatives) == 0 {
		t.Error("expected ranked alternatives")
	}
}

func TestSuggestAfterOneGuess(t *testing.T) {
	// apple vs secret crane yields ybbbg; only crane remains.
	body := `{"history":[{"guess":"apple","pattern":"ybbbg"}]}`
	rec := doJSON(t, testServer(t), http.MethodPost, "/solve/suggest", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res suggestRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Guess != "crane" {
		t.Errorf("guess = %q, expected crane", res.Guess)
	}
	if res.Candidates != 1 {
		t.Errorf("candidates = %d, expected 1", res.Candidates)
	}
}

func TestSuggestSolvedHistory(t *testing.T) {
	body := `{"history":[{"guess":"crane","pattern":"ggggg"}]}`
	rec := doJSON(t, testServer(t), http.MethodPost, "/solve/suggest", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res suggestRes
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.State != "solved" {
		t.Errorf("state = %q, expected solved", res.State)
	}
}

func TestSuggestBadRequests(t *testing.T) {
	testCases := []struct {
		name string
		body string
		code int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"bad pattern", `{"history":[{"guess":"apple","pattern":"zzzzz"}]}`, http.StatusBadRequest},
		{"short pattern", `{"history":[{"guess":"apple","pattern":"gyb"}]}`, http.StatusBadRequest},
		{"bad guess", `{"history":[{"guess":"toolong","pattern":"bbbbb"}]}`, http.StatusBadRequest},
		// apple nearly-all-correct matches no toy word.
		{"inconsistent", `{"history":[{"guess":"apple","pattern":"ggggb"}]}`, http.StatusUnprocessableEntity},
	}

	s := testServer(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, "/solve/suggest", tc.body)
			if rec.Code != tc.code {
				t.Errorf("status = %d, expected %d (body %s)", rec.Code, tc.code, rec.Body.String())
			}
		})
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not_found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
