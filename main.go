// main.go
//
// Command-line entry point for the solver.
//
// Modes (-mode flag):
//   play  — interactive: prints the suggested guess, reads the observed
//           feedback in g/y/b form (e.g. "bygyb"), repeats until solved
//           or out of turns. "q" quits.
//   sim   — batch benchmark: simulates one game per answer word,
//           prints aggregate statistics, optionally persists the run
//           to SQLite when SIM_DB is set. Long-running on full lists.
//   serve — HTTP suggestion API on PORT.
//
// The -answer flag runs a single simulated session against a fixed
// secret and prints the transcript (handy for spot checks).
//
// Configuration is environment-driven (loaded from .env when present):
//   WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE — word list files
//   LOG_LEVEL   — zerolog level (default "info")
//   PORT        — serve mode listen port (default 5180)
//   SIM_DB      — SQLite path for persisting sim runs (off when empty)
//   SIM_WORKERS — sim worker pool size (default NumCPU)
//   SIM_LIMIT   — cap on words simulated (default all)

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/sim"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	mode := flag.String("mode", "play", "play | sim | serve")
	answer := flag.String("answer", "", "run one simulated session against this secret word")
	flag.Parse()

	lists, err := words.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g := lists.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	if *answer != "" {
		if err := runAnswer(lists, *answer); err != nil {
			log.Fatal().Err(err).Msg("simulated session failed")
		}
		return
	}

	switch *mode {
	case "play":
		if err := runPlay(lists); err != nil {
			log.Fatal().Err(err).Msg("interactive session failed")
		}
	case "sim":
		if err := runSim(lists); err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
	case "serve":
		port := getEnv("PORT", "5180")
		log.Info().Str("port", port).Msg("starting suggestion API")
		if err := httpserver.New(lists).Start(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

// runPlay drives one interactive session: the user is the oracle,
// relaying the tiles the real game displayed.
func runPlay(lists *words.Lists) error {
	eng := solver.NewEngine(lists.Answers(), lists.Allowed(), solver.DefaultMaxTurns)
	in := bufio.NewScanner(os.Stdin)

	for eng.State() == solver.Active {
		guess, err := eng.NextGuess()
		if err != nil {
			return err
		}
		fmt.Printf("guess #%d: %s  (%d candidates remain)\n", eng.Turn()+1, strings.ToUpper(guess), len(eng.Candidates()))

		p, quit := promptPattern(in)
		if quit {
			return nil
		}
		if err := eng.SubmitFeedback(guess, p); err != nil {
			if errors.Is(err, solver.ErrNoCandidates) {
				return fmt.Errorf("feedback history is inconsistent with the word lists: %w", err)
			}
			return err
		}
	}

	switch eng.State() {
	case solver.Solved:
		fmt.Printf("solved in %d turns\n", eng.Turn())
	default:
		fmt.Printf("out of turns after %d guesses\n", eng.Turn())
	}
	return nil
}

// promptPattern reads one feedback line, re-prompting on parse errors.
// Returns quit=true on EOF or "q".
func promptPattern(in *bufio.Scanner) (feedback.Pattern, bool) {
	for {
		fmt.Print("feedback (g=green, y=yellow, b=black, e.g. bygyb; q to quit): ")
		if !in.Scan() {
			return feedback.Pattern{}, true
		}
		line := strings.TrimSpace(in.Text())
		if strings.EqualFold(line, "q") {
			return feedback.Pattern{}, true
		}
		p, err := feedback.Parse(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return p, false
	}
}

// runAnswer simulates one session against a fixed secret and prints the
// transcript.
func runAnswer(lists *words.Lists, secret string) error {
	oracle, err := solver.NewSimulatedOracle(strings.ToLower(secret))
	if err != nil {
		return err
	}
	eng := solver.NewEngine(lists.Answers(), lists.Allowed(), solver.DefaultMaxTurns)
	transcript, err := eng.Solve(context.Background(), oracle)
	for _, step := range transcript {
		fmt.Printf("%s %s\n", strings.ToUpper(step.Guess), step.Pattern)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s in %d turns\n", eng.State(), len(transcript))
	return nil
}

// runSim runs the batch benchmark over the whole answer list and prints
// the aggregate report. Ctrl-C stops cleanly between sessions.
func runSim(lists *words.Lists) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := sim.Options{
		Workers:  getEnvInt("SIM_WORKERS", 0),
		Limit:    getEnvInt("SIM_LIMIT", 0),
		Progress: true,
	}
	res, err := sim.Run(ctx, lists.Answers(), lists.Allowed(), opts)
	if res != nil {
		printReport(res)
		if dsn := os.Getenv("SIM_DB"); dsn != "" && res.Sessions > 0 {
			if saveErr := saveRun(res, dsn); saveErr != nil && err == nil {
				err = saveErr
			}
		}
	}
	return err
}

// printReport renders the aggregate statistics for humans.
func printReport(res *sim.Result) {
	fmt.Printf("sessions: %d  solved: %d  failed: %d  elapsed: %s\n",
		res.Sessions, res.Solved, res.Failed, res.Elapsed.Round(time.Millisecond))
	if res.Solved > 0 {
		fmt.Printf("mean turns (solved): %.3f\n", res.MeanTurns())
	}
	for turns := 1; turns < len(res.Histogram); turns++ {
		fmt.Printf("  %d turns: %d\n", turns, res.Histogram[turns])
	}
	if len(res.FailedWords) > 0 {
		fmt.Printf("failed words: %s\n", strings.Join(res.FailedWords, ", "))
	}
}

// saveRun persists a finished run to the SQLite history database.
func saveRun(res *sim.Result, dsn string) error {
	st, err := store.Open(dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveRun(context.Background(), res)
	if err != nil {
		return err
	}
	log.Info().Int64("run_id", id).Str("db", dsn).Msg("simulation run saved")
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
