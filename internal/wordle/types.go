// internal/wordle/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Word: a five-letter lowercase puzzle word.
//   - LetterStatus: per-letter knowledge about a guess (unknown/absent/present/exact).
//   - Feedback: the per-position statuses one guess earns against one solution.
//   - Guess: a played word together with the feedback it received.
//
// Feedback is a fixed-size array so it is comparable and can key maps
// directly; partitioning candidates by feedback pattern relies on this.
// LetterStatus values are ordered: display code upgrades a keyboard
// letter to the highest status seen and never downgrades it.

package wordle

import (
	"errors"
	"strings"
)

// WordLen is the puzzle word length.
const WordLen = 5

// Word is a lowercase ASCII word of exactly WordLen letters.
// Construct through ParseWord; engine code assumes validated input.
type Word string

// LetterStatus describes what is known about one letter.
type LetterStatus uint8

const (
	// StatusUnknown: the letter has not appeared in any guess yet.
	// Never produced by Evaluate; used by keyboard displays.
	StatusUnknown LetterStatus = iota
	// StatusAbsent: the letter does not occur (or no occurrences remain)
	// in the solution.
	StatusAbsent
	// StatusPresent: the letter occurs in the solution at a different position.
	StatusPresent
	// StatusExact: the letter is in the correct position.
	StatusExact
)

// Feedback is the per-position result of evaluating a guess.
type Feedback [WordLen]LetterStatus

// Guess pairs a played word with the feedback it received.
type Guess struct {
	Word     Word     `json:"word"`
	Feedback Feedback `json:"feedback"`
}

var (
	// ErrWordLength is returned for words that are not exactly WordLen letters.
	ErrWordLength = errors.New("wordle: word must be exactly 5 letters")
	// ErrWordChar is returned for words containing anything but ASCII letters.
	ErrWordChar = errors.New("wordle: word must contain only letters a-z")
	// ErrFeedbackSyntax is returned for feedback strings that cannot be parsed.
	ErrFeedbackSyntax = errors.New("wordle: unrecognized feedback pattern")
)

// ParseWord normalizes and validates a raw word:
// trims whitespace, lowercases, checks length and character set.
func ParseWord(s string) (Word, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) != WordLen {
		return "", ErrWordLength
	}
	if !isAlpha(w) {
		return "", ErrWordChar
	}
	return Word(w), nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// AllExact reports whether every position is StatusExact (a winning guess).
func (f Feedback) AllExact() bool {
	for _, st := range f {
		if st != StatusExact {
			return false
		}
	}
	return true
}

// String renders the pattern with one letter per position:
// 'g' exact (green), 'y' present (yellow), '-' absent, '?' unknown.
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(WordLen)
	for _, st := range f {
		switch st {
		case StatusExact:
			b.WriteByte('g')
		case StatusPresent:
			b.WriteByte('y')
		case StatusAbsent:
			b.WriteByte('-')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// ParseFeedback parses a five-symbol pattern string.
// Accepted per position (case-insensitive):
//   - 'g' or '2': exact
//   - 'y' or '1': present
//   - 'b', 'x', '.', '-' or '0': absent
func ParseFeedback(s string) (Feedback, error) {
	var f Feedback
	p := strings.ToLower(strings.TrimSpace(s))
	if len(p) != WordLen {
		return f, ErrFeedbackSyntax
	}
	for i := 0; i < WordLen; i++ {
		switch p[i] {
		case 'g', '2':
			f[i] = StatusExact
		case 'y', '1':
			f[i] = StatusPresent
		case 'b', 'x', '.', '-', '0':
			f[i] = StatusAbsent
		default:
			return Feedback{}, ErrFeedbackSyntax
		}
	}
	return f, nil
}

// MarshalText implements encoding.TextMarshaler using the String form,
// so JSON payloads carry patterns like "gy--g" instead of status arrays.
func (f Feedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseFeedback.
func (f *Feedback) UnmarshalText(text []byte) error {
	parsed, err := ParseFeedback(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
