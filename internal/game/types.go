// internal/game/types.go
//
// Core type definitions for a single game session.
// Defines:
//   - Status: coarse lifecycle of a session (playing/won/lost).
//   - Options: knobs for constructing a session.
//   - Game: state for one in-progress or finished session.

package game

import (
	"github.com/Joeltronics/wordlebot/internal/wordle"
	"github.com/Joeltronics/wordlebot/internal/words"
)

// Status reports where a session is in its lifecycle.
// Possible values:
//   - "playing": turns remain and the answer has not been found.
//   - "won":     a guess matched the answer exactly.
//   - "lost":    the turn limit was reached without a win.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Options configure a new session.
type Options struct {
	Answer   wordle.Word // empty picks a random solution
	MaxTurns int         // 0 means the classic six
	Endless  bool        // no turn limit; the session only ends on a win
	Agnostic bool        // track every allowed word as possible, not just solutions
}

// Game holds the state of a single session.
//
// The possible pool starts as the solution list (or the full allowed list
// in agnostic mode) and narrows after every scored guess. The keyboard
// records the best status seen per letter; a letter never downgrades.
type Game struct {
	ID       string         // unique session identifier (random hex string)
	Answer   wordle.Word    // the solution; empty in assist sessions
	MaxTurns int            // guesses allowed; 0 means unlimited
	Guesses  []wordle.Guess // scored guesses so far
	Finished bool           // true once the session is over
	Won      bool           // true if the session finished with a win

	lists    *words.Lists
	possible []wordle.Word
	keyboard [26]wordle.LetterStatus
	solved   [wordle.WordLen]bool
}
