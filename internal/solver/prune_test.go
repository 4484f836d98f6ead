// internal/solver/prune_test.go

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// TestPruneGuesses_NoOpBelowThreshold verifies small pools pass through.
func TestPruneGuesses_NoOpBelowThreshold(t *testing.T) {
	p := Params{MaxGuessPool: 10, GuessPoolTarget: 2}
	guesses := []wordle.Word{"crane", "slate", "crate"}
	got := pruneGuesses(guesses, []wordle.Word{"crane"}, p)
	assert.Equal(t, guesses, got)
}

// TestPruneGuesses_KeepsTopRankedPlusSolutions verifies ranking order and
// that remaining solutions survive pruning even when ranked below target.
func TestPruneGuesses_KeepsTopRankedPlusSolutions(t *testing.T) {
	p := Params{MaxGuessPool: 4, GuessPoolTarget: 2}
	solutions := []wordle.Word{"aabba", "ccdda"}

	// Coverage scores against the solutions: ccdda and cdbda tie at 8
	// (lexicographic order breaks the tie), aabba and cdaba tie at 6,
	// the rest score zero.
	guesses := []wordle.Word{"cdbda", "ccdda", "aabba", "cdaba", "eeeee", "fffff"}

	got := pruneGuesses(guesses, solutions, p)
	assert.Equal(t, []wordle.Word{"ccdda", "cdbda", "aabba"}, got,
		"top two by rank, plus the solution ranked below target")
}

// TestPruneSolutions_NoOpBelowThreshold verifies small pools pass through
// unsorted.
func TestPruneSolutions_NoOpBelowThreshold(t *testing.T) {
	p := Params{MaxSolutionPool: 5, SolutionPoolTarget: 3}
	solutions := []wordle.Word{"jolly", "apple", "eager"}
	got := pruneSolutions(solutions, p)
	assert.Equal(t, solutions, got)
}

// TestPruneSolutions_StrideSamplesSortedPool verifies every-Nth retention
// over lexicographic order.
func TestPruneSolutions_StrideSamplesSortedPool(t *testing.T) {
	p := Params{MaxSolutionPool: 5, SolutionPoolTarget: 3}
	solutions := []wordle.Word{
		"jolly", "chill", "apple", "haste", "dingo",
		"berry", "input", "fable", "eager", "gamer",
	}

	// Sorted: apple berry chill dingo eager fable gamer haste input jolly.
	// Stride ceil(10/3)=4 keeps indexes 0, 4, 8.
	got := pruneSolutions(solutions, p)
	assert.Equal(t, []wordle.Word{"apple", "eager", "input"}, got)
}

// TestPruneSolutions_DoesNotMutateInput verifies the pool is sampled from a
// copy.
func TestPruneSolutions_DoesNotMutateInput(t *testing.T) {
	p := Params{MaxSolutionPool: 2, SolutionPoolTarget: 2}
	solutions := []wordle.Word{"jolly", "apple", "eager", "berry"}
	orig := append([]wordle.Word(nil), solutions...)
	_ = pruneSolutions(solutions, p)
	assert.Equal(t, orig, solutions)
}
