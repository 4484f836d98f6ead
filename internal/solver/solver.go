// internal/solver/solver.go
//
// The guess selector. Solver carries the candidate pools for one puzzle:
// feed it each (guess, feedback) pair as the game reveals them, ask Best
// for the next word to play. SelectGuess is the stateless wrapper that
// replays a whole history in one call.
//
// Per turn the selector decides the path: a lone surviving solution is
// returned as-is, the opening guess comes from letter frequency, small
// pools get recursive look-ahead, everything else the heuristic scan.
// Scores from different paths are in different units; Result.Method names
// the path so nothing downstream compares across them.

package solver

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// Method identifies which scoring path produced a Result.
type Method string

const (
	// MethodOnlyOption: a single solution remained; no scoring ran.
	MethodOnlyOption Method = "only-option"
	// MethodFrequency: opening-guess letter coverage ranking.
	MethodFrequency Method = "frequency"
	// MethodHeuristic: feedback-partition blend of worst case and average.
	MethodHeuristic Method = "heuristic"
	// MethodRecursive: bounded look-ahead in expected-guess units.
	MethodRecursive Method = "recursive"
)

// Result is a recommended guess with its diagnostic trail. Lower Score is
// better within a single Method; scores from different Methods are not
// comparable (the frequency path negates its coverage points so that lower
// stays better there too).
type Result struct {
	Word      wordle.Word `json:"word"`
	Score     float64     `json:"score"`
	Method    Method      `json:"method"`
	Evaluated int         `json:"evaluated"` // guess candidates scored this turn
	Remaining int         `json:"remaining"` // solutions consistent with the history
}

// Solver tracks one puzzle's remaining pools under accumulated feedback.
type Solver struct {
	params    Params
	guesses   []wordle.Word // playable words, minus those already played
	solutions []wordle.Word // solutions consistent with the history
	history   []wordle.Guess
}

// New builds a solver over the given pools. guessSeed is every word the
// engine may recommend; solutionSeed the words that may be the answer
// (pass the same list for both in agnostic mode). The seeds are never
// mutated.
func New(guessSeed, solutionSeed []wordle.Word, p Params) *Solver {
	return &Solver{
		params:    p,
		guesses:   guessSeed,
		solutions: solutionSeed,
	}
}

// AddGuess narrows the solution pool by one observed (guess, feedback)
// pair. Returns wordle.ErrWordLength for a malformed word and
// ErrInconsistentFeedback when no candidate survives the pattern; the
// solver state is unchanged on error.
func (s *Solver) AddGuess(g wordle.Guess) error {
	if len(g.Word) != wordle.WordLen {
		return wordle.ErrWordLength
	}
	next := wordle.Filter(s.solutions, g.Word, g.Feedback)
	if len(next) == 0 {
		return ErrInconsistentFeedback
	}
	s.solutions = next
	s.guesses = without(s.guesses, g.Word)
	s.history = append(s.history, g)
	return nil
}

// Remaining returns the solutions still consistent with the history.
// Callers must not modify the returned slice.
func (s *Solver) Remaining() []wordle.Word { return s.solutions }

// History returns the (guess, feedback) pairs applied so far.
func (s *Solver) History() []wordle.Guess { return s.history }

// Best recommends the next guess for the current pools.
func (s *Solver) Best() (Result, error) {
	start := time.Now()
	res, err := s.selectGuess()
	if err != nil {
		return Result{}, err
	}
	res.Remaining = len(s.solutions)
	log.Debug().
		Str("word", string(res.Word)).
		Str("method", string(res.Method)).
		Float64("score", res.Score).
		Int("evaluated", res.Evaluated).
		Int("remaining", res.Remaining).
		Dur("took", time.Since(start)).
		Msg("selected guess")
	return res, nil
}

// selectGuess picks the scoring path.
func (s *Solver) selectGuess() (Result, error) {
	switch len(s.solutions) {
	case 0:
		return Result{}, ErrInconsistentFeedback
	case 1:
		// Nothing to weigh: playing the survivor ends the puzzle.
		return Result{Word: s.solutions[0], Score: 0, Method: MethodOnlyOption}, nil
	}

	if len(s.history) == 0 {
		return s.openingGuess()
	}

	guesses := pruneGuesses(s.guesses, s.solutions, s.params)
	if len(guesses) == 0 {
		return Result{}, ErrNoCandidates
	}
	solutions := pruneSolutions(s.solutions, s.params)
	members := wordSet(solutions)

	if len(solutions) <= s.params.RecursionLimit {
		return searchBest(guesses, solutions, members, s.params.MaxDepth, s.params.MaxDepth, s.params)
	}
	return bestHeuristic(guesses, solutions, members, s.params)
}

// openingGuess ranks the full guess pool by letter coverage of the
// solution pool. The coverage score is points-higher-is-better, so it is
// negated into the Result to keep lower-is-better uniform.
func (s *Solver) openingGuess() (Result, error) {
	if len(s.guesses) == 0 {
		return Result{}, ErrNoCandidates
	}
	t := newFreqTable(s.solutions)
	ranked := t.rank(s.guesses)
	top := ranked[0]
	return Result{
		Word:      top,
		Score:     -float64(t.scoreWord(top)),
		Method:    MethodFrequency,
		Evaluated: len(ranked),
	}, nil
}

// SelectGuess replays history over fresh pools and recommends the next
// guess. Errors surface the same sentinels as Solver: a malformed history
// word fails before any scoring work, a pattern no candidate can satisfy
// is ErrInconsistentFeedback.
func SelectGuess(history []wordle.Guess, guessSeed, solutionSeed []wordle.Word, p Params) (Result, error) {
	s := New(guessSeed, solutionSeed, p)
	for _, g := range history {
		if err := s.AddGuess(g); err != nil {
			return Result{}, err
		}
	}
	return s.Best()
}
