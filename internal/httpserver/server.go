// internal/httpserver/server.go
//
// HTTP surface for the solver.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON
//     content type, zerolog request logging).
//   - Diagnostics: "/", "/health", "/debug/words".
//   - POST /solve/suggest: stateless next-guess suggestion for a
//     submitted feedback history.
//
// Notes:
//   - Requests carry their whole (guess, pattern) history, so there is
//     no session store; handlers share only the read-only word lists.
//   - Patterns travel in the compact letter form, e.g. "bygyb".

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// maxAlternatives bounds the ranked alternatives returned with a
// suggestion.
const maxAlternatives = 5

// Server bundles the router and the read-only word lists.
type Server struct {
	r     *chi.Mux
	lists *words.Lists
}

// New constructs a Server, installs middleware, and registers routes.
func New(lists *words.Lists) *Server {
	s := &Server{r: chi.NewRouter(), lists: lists}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(requestLogger)                   // zerolog access log

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/debug/words","POST /solve/suggest"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.lists.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	s.r.Post("/solve/suggest", s.handleSuggest)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one structured log line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", chimw.GetReqID(r.Context())).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ----------------------------- suggest -------------------------------------

// historyStep is one played (guess, pattern) pair.
type historyStep struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"` // letter form, e.g. "bygyb"
}

type suggestReq struct {
	History []historyStep `json:"history"`
}

type suggestionJSON struct {
	Guess        string  `json:"guess"`
	Entropy      float64 `json:"entropy"`
	InCandidates bool    `json:"inCandidates"`
}

type suggestRes struct {
	Guess        string           `json:"guess"`
	Entropy      float64          `json:"entropy"`
	Candidates   int              `json:"candidates"`
	State        string           `json:"state"`
	Alternatives []suggestionJSON `json:"alternatives,omitempty"`
}

// handleSuggest replays the submitted history against the full solution
// list, then ranks the allowed guesses for what remains.
//
// Status codes:
//   - 400: malformed JSON, guess, or pattern
//   - 422: history is inconsistent with the word lists
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}

	candidates := s.lists.Answers()
	for _, step := range req.History {
		guess := strings.ToLower(strings.TrimSpace(step.Guess))
		if err := feedback.Validate(guess); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_guess")
			return
		}
		p, err := feedback.Parse(step.Pattern)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_pattern")
			return
		}
		if p.AllCorrect() {
			_ = json.NewEncoder(w).Encode(suggestRes{
				Guess:      guess,
				Candidates: 1,
				State:      solver.Solved.String(),
			})
			return
		}
		candidates, err = solver.Filter(candidates, guess, p)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_guess")
			return
		}
		if len(candidates) == 0 {
			httpError(w, http.StatusUnprocessableEntity, "inconsistent_history")
			return
		}
	}

	ranked, err := solver.Rank(candidates, s.lists.Allowed(), maxAlternatives+1)
	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			httpError(w, http.StatusUnprocessableEntity, "inconsistent_history")
			return
		}
		log.Error().Err(err).Msg("rank guesses")
		httpError(w, http.StatusInternalServerError, "internal")
		return
	}

	res := suggestRes{
		Guess:      ranked[0].Word,
		Entropy:    ranked[0].Entropy,
		Candidates: len(candidates),
		State:      solver.Active.String(),
	}
	for _, alt := range ranked[1:] {
		res.Alternatives = append(res.Alternatives, suggestionJSON{
			Guess:        alt.Word,
			Entropy:      alt.Entropy,
			InCandidates: alt.InCandidates,
		})
	}
	_ = json.NewEncoder(w).Encode(res)
}

// httpError writes a small JSON error body with the given status.
func httpError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + code + `"}`))
}
