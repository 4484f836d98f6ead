// internal/bench/bench.go
//
// Benchmark harness: plays the solver against many solutions and
// aggregates how it did.
// Responsibilities:
//   - Sample the solution list (--limit, every-Nth) deterministically.
//   - Play games concurrently across a bounded worker pool.
//   - Aggregate wins, guess histogram, mean/max guesses, durations.
//   - Compare two parameter sets over the identical sample.
//
// Each game is independent and deterministic, so parallel runs aggregate
// to the same summary as serial runs.

package bench

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Joeltronics/wordlebot/internal/solver"
	"github.com/Joeltronics/wordlebot/internal/wordle"
	"github.com/Joeltronics/wordlebot/internal/words"
)

// turnCap bounds a single game. A solver that has not found the answer by
// then is stuck, and the game is recorded as not found.
const turnCap = 10

// winTurns is the classic turn limit a game must finish within to count
// as solved.
const winTurns = 6

// Options control a benchmark run.
type Options struct {
	Limit       int  // play only the first N sampled solutions (0 = all)
	SampleEvery int  // play every Nth solution (0 or 1 = all)
	Workers     int  // concurrent games (0 = GOMAXPROCS)
	Agnostic    bool // treat every allowed word as a possible answer
	Progress    bool // draw a progress bar on stderr
}

// GameResult is the outcome of one played solution.
type GameResult struct {
	Solution wordle.Word
	Guesses  int  // turns used; turnCap if the answer was not found
	Found    bool // answer found within turnCap
	Duration time.Duration
}

// Solved reports whether the game counts as a win.
func (g GameResult) Solved() bool { return g.Found && g.Guesses <= winTurns }

// Summary aggregates a benchmark run.
type Summary struct {
	Label     string
	Params    solver.Params
	Games     int
	Solved    int     // games won within six guesses
	Mean      float64 // mean guesses across games that found the answer
	Max       int     // most guesses any found game needed
	Histogram [7]int  // index i = games finishing in i+1 guesses; last bucket is 7+
	Failures  []wordle.Word
	Duration  time.Duration
	Results   []GameResult // solution sample order
}

// Run plays the sampled solutions with the given parameters.
func Run(ctx context.Context, lists *words.Lists, params solver.Params, opts Options) (*Summary, error) {
	solutions := Sample(lists.Solutions, opts)
	if len(solutions) == 0 {
		return nil, fmt.Errorf("bench: no solutions to play")
	}

	solutionSeed := lists.Solutions
	if opts.Agnostic {
		solutionSeed = lists.All
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(solutions),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("playing"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionClearOnFinish(),
		)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	results := make([]GameResult, len(solutions))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, solution := range solutions {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := playOne(solution, lists.All, solutionSeed, params)
			if err != nil {
				return fmt.Errorf("bench: %s: %w", solution, err)
			}
			results[i] = res
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return summarize(params, results, time.Since(start)), nil
}

// Compare runs a baseline and a variant parameter set over the same
// solution sample.
func Compare(ctx context.Context, lists *words.Lists, base, variant solver.Params, opts Options) (*Summary, *Summary, error) {
	a, err := Run(ctx, lists, base, opts)
	if err != nil {
		return nil, nil, err
	}
	a.Label = "baseline"
	b, err := Run(ctx, lists, variant, opts)
	if err != nil {
		return nil, nil, err
	}
	b.Label = "variant"
	return a, b, nil
}

// Sample reduces the solution list per the options: every-Nth stride
// first, then the head limit. The result preserves list order.
func Sample(solutions []wordle.Word, opts Options) []wordle.Word {
	out := solutions
	if opts.SampleEvery > 1 {
		sampled := make([]wordle.Word, 0, (len(out)+opts.SampleEvery-1)/opts.SampleEvery)
		for i := 0; i < len(out); i += opts.SampleEvery {
			sampled = append(sampled, out[i])
		}
		out = sampled
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out
}

// playOne drives a full game: ask the solver, score against the known
// solution, feed the result back.
func playOne(solution wordle.Word, guessSeed, solutionSeed []wordle.Word, params solver.Params) (GameResult, error) {
	start := time.Now()
	s := solver.New(guessSeed, solutionSeed, params)

	for turn := 1; turn <= turnCap; turn++ {
		best, err := s.Best()
		if err != nil {
			return GameResult{}, err
		}
		fb := wordle.Evaluate(best.Word, solution)
		if fb.AllExact() {
			return GameResult{Solution: solution, Guesses: turn, Found: true, Duration: time.Since(start)}, nil
		}
		if err := s.AddGuess(wordle.Guess{Word: best.Word, Feedback: fb}); err != nil {
			return GameResult{}, err
		}
	}
	return GameResult{Solution: solution, Guesses: turnCap, Duration: time.Since(start)}, nil
}

// summarize folds game results into a Summary.
func summarize(params solver.Params, results []GameResult, took time.Duration) *Summary {
	sum := &Summary{
		Params:   params,
		Games:    len(results),
		Duration: took,
		Results:  results,
	}

	var totalGuesses, found int
	for _, r := range results {
		if !r.Found {
			sum.Histogram[len(sum.Histogram)-1]++
			sum.Failures = append(sum.Failures, r.Solution)
			continue
		}
		found++
		totalGuesses += r.Guesses
		if r.Guesses > sum.Max {
			sum.Max = r.Guesses
		}
		if r.Solved() {
			sum.Solved++
			sum.Histogram[r.Guesses-1]++
		} else {
			sum.Histogram[len(sum.Histogram)-1]++
		}
	}
	if found > 0 {
		sum.Mean = float64(totalGuesses) / float64(found)
	}
	return sum
}

// Format renders a summary as a text block for the terminal.
func (s *Summary) Format() string {
	var b strings.Builder
	if s.Label != "" {
		fmt.Fprintf(&b, "%s\n", s.Label)
	}
	fmt.Fprintf(&b, "games:  %d\n", s.Games)
	fmt.Fprintf(&b, "solved: %d (%.1f%%)\n", s.Solved, percent(s.Solved, s.Games))
	fmt.Fprintf(&b, "mean:   %.2f guesses\n", s.Mean)
	fmt.Fprintf(&b, "max:    %d guesses\n", s.Max)
	fmt.Fprintf(&b, "time:   %s\n", s.Duration.Round(time.Millisecond))

	scale := maxBucket(s.Histogram)
	for i, n := range s.Histogram {
		label := fmt.Sprintf("%d", i+1)
		if i == len(s.Histogram)-1 {
			label = "7+"
		}
		fmt.Fprintf(&b, "%2s: %-30s %d\n", label, histBar(n, scale), n)
	}
	if len(s.Failures) > 0 {
		fmt.Fprintf(&b, "unsolved: %v\n", s.Failures)
	}
	return b.String()
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

func maxBucket(hist [7]int) int {
	most := 1
	for _, n := range hist {
		if n > most {
			most = n
		}
	}
	return most
}

// histBar scales a bucket count onto a 30-column bar.
func histBar(n, scale int) string {
	width := n * 30 / scale
	if n > 0 && width == 0 {
		width = 1
	}
	return strings.Repeat("#", width)
}
