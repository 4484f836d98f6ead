// internal/solver/errors.go
//
// Sentinel errors surfaced by the engine. Callers dispatch with errors.Is;
// see also wordle.ErrWordLength for malformed input words.

package solver

import "errors"

var (
	// ErrInconsistentFeedback: the accumulated feedback eliminates every
	// candidate solution. Usually a mistyped pattern in assist mode, or a
	// solution that is not on the loaded list.
	ErrInconsistentFeedback = errors.New("solver: feedback is inconsistent with every candidate solution")

	// ErrNoCandidates: the guess pool is empty after setup or pruning.
	// This signals a configuration bug (empty seed list, zero prune target),
	// not a normal puzzle outcome.
	ErrNoCandidates = errors.New("solver: no guess candidates remain")
)
