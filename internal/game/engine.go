// internal/game/engine.go
//
// Session engine for play and assist modes.
// Responsibilities:
//   - Create sessions with a known answer (play) or none (assist).
//   - Validate and apply guesses (parse, allowed list, turn limit).
//   - Track state transitions: playing → won/lost.
//   - Maintain the derived views: possible pool, keyboard, solved positions.
//
// Notes:
//   - Word lists are provided by the words package.
//   - Scoring lives in the wordle package; this package never reimplements it.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/Joeltronics/wordlebot/internal/wordle"
	"github.com/Joeltronics/wordlebot/internal/words"
)

// DefaultMaxTurns is the classic turn limit.
const DefaultMaxTurns = 6

var (
	ErrFinished           = errors.New("game: session is finished")
	ErrNotAllowed         = errors.New("game: word is not in the allowed list")
	ErrNoAnswer           = errors.New("game: session has no answer; use ApplyFeedback")
	ErrImpossibleFeedback = errors.New("game: feedback leaves no possible solution")
)

// New constructs a session that knows its answer. An empty Options.Answer
// picks a random solution. A non-solution (but allowed) answer widens the
// tracked pool to the full allowed list so the possible view stays honest.
func New(lists *words.Lists, opts Options) (*Game, error) {
	answer := opts.Answer
	if answer == "" {
		answer = lists.RandomSolution()
	} else {
		parsed, err := wordle.ParseWord(string(answer))
		if err != nil {
			return nil, fmt.Errorf("game: answer: %w", err)
		}
		if !lists.IsAllowed(parsed) {
			return nil, fmt.Errorf("%w: %q", ErrNotAllowed, parsed)
		}
		answer = parsed
	}

	agnostic := opts.Agnostic || !lists.IsSolution(answer)
	g := newGame(lists, opts, agnostic)
	g.Answer = answer
	return g, nil
}

// NewAssist constructs a session for relaying an external game: the answer
// is unknown and guesses are scored elsewhere, fed in via ApplyFeedback.
func NewAssist(lists *words.Lists, opts Options) *Game {
	return newGame(lists, opts, opts.Agnostic)
}

func newGame(lists *words.Lists, opts Options, agnostic bool) *Game {
	pool := lists.Solutions
	if agnostic {
		pool = lists.All
	}
	possible := make([]wordle.Word, len(pool))
	copy(possible, pool)

	maxTurns := opts.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}
	if opts.Endless {
		maxTurns = 0
	}

	return &Game{
		ID:       randomID(),
		MaxTurns: maxTurns,
		Guesses:  []wordle.Guess{},
		lists:    lists,
		possible: possible,
	}
}

// ApplyGuess validates and scores a guess against the session's answer.
// Returns the scored guess and the resulting status.
//
// Validation rules:
//   - The session must not be finished and must know its answer.
//   - The guess must parse as a word and be in the allowed list.
func (g *Game) ApplyGuess(raw string) (wordle.Guess, Status, error) {
	if g.Finished {
		return wordle.Guess{}, g.Status(), ErrFinished
	}
	if g.Answer == "" {
		return wordle.Guess{}, g.Status(), ErrNoAnswer
	}
	w, err := wordle.ParseWord(raw)
	if err != nil {
		return wordle.Guess{}, g.Status(), err
	}
	if !g.lists.IsAllowed(w) {
		return wordle.Guess{}, g.Status(), fmt.Errorf("%w: %q", ErrNotAllowed, w)
	}

	scored := wordle.Guess{Word: w, Feedback: wordle.Evaluate(w, g.Answer)}
	g.record(scored)
	g.advance(scored.Feedback)
	return scored, g.Status(), nil
}

// ApplyFeedback records an externally scored guess (assist mode). The
// session state is unchanged when the feedback is impossible, so the
// caller can re-prompt for a mistyped pattern.
func (g *Game) ApplyFeedback(raw string, fb wordle.Feedback) (Status, error) {
	if g.Finished {
		return g.Status(), ErrFinished
	}
	w, err := wordle.ParseWord(raw)
	if err != nil {
		return g.Status(), err
	}
	if !g.lists.IsAllowed(w) {
		return g.Status(), fmt.Errorf("%w: %q", ErrNotAllowed, w)
	}
	if len(wordle.Filter(g.possible, w, fb)) == 0 && !fb.AllExact() {
		return g.Status(), fmt.Errorf("%w: %s on %q", ErrImpossibleFeedback, fb, w)
	}

	g.record(wordle.Guess{Word: w, Feedback: fb})
	g.advance(fb)
	return g.Status(), nil
}

// record appends the guess and refreshes the derived views.
func (g *Game) record(scored wordle.Guess) {
	g.Guesses = append(g.Guesses, scored)
	g.possible = wordle.Filter(g.possible, scored.Word, scored.Feedback)
	for i := 0; i < wordle.WordLen; i++ {
		st := scored.Feedback[i]
		if st == wordle.StatusExact {
			g.solved[i] = true
		}
		if j := scored.Word[i] - 'a'; st > g.keyboard[j] {
			g.keyboard[j] = st
		}
	}
}

// advance applies the win/loss transition after a recorded guess.
func (g *Game) advance(fb wordle.Feedback) {
	if fb.AllExact() {
		g.Finished, g.Won = true, true
	} else if g.MaxTurns > 0 && len(g.Guesses) >= g.MaxTurns {
		g.Finished = true
	}
}

// Status reports the coarse state of the session.
func (g *Game) Status() Status {
	if g.Finished {
		if g.Won {
			return StatusWon
		}
		return StatusLost
	}
	return StatusPlaying
}

// Turn reports the 1-based number of the next guess.
func (g *Game) Turn() int { return len(g.Guesses) + 1 }

// Possible returns the remaining possible solutions. The slice is shared;
// callers must not mutate it.
func (g *Game) Possible() []wordle.Word { return g.possible }

// Remaining reports how many possible solutions are left.
func (g *Game) Remaining() int { return len(g.possible) }

// Keyboard returns the best status seen per letter, indexed a to z.
func (g *Game) Keyboard() [26]wordle.LetterStatus { return g.keyboard }

// Lists returns the word lists the session was built on.
func (g *Game) Lists() *words.Lists { return g.lists }

// LetterCounts reports, per position, how many distinct letters remain
// possible there, plus the count of distinct letters across the whole
// possible pool. Solved positions report one.
func (g *Game) LetterCounts() (perPos [wordle.WordLen]int, total int) {
	var posSeen [wordle.WordLen][26]bool
	var seen [26]bool
	for _, w := range g.possible {
		for i := 0; i < wordle.WordLen; i++ {
			j := w[i] - 'a'
			if !posSeen[i][j] {
				posSeen[i][j] = true
				perPos[i]++
			}
			if !seen[j] {
				seen[j] = true
				total++
			}
		}
	}
	return perPos, total
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
