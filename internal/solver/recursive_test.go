// internal/solver/recursive_test.go

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// TestSearchBest_TwoSolutions verifies the degenerate look-ahead: with two
// candidates left, guessing either resolves both branches in one more
// guess, and the first such guess in scan order wins.
func TestSearchBest_TwoSolutions(t *testing.T) {
	solutions := []wordle.Word{"aaaaa", "bbbbb"}
	guesses := []wordle.Word{"aaaaa", "bbbbb"}

	p := DefaultParams()
	res, err := searchBest(guesses, solutions, wordSet(solutions), p.MaxDepth, p.MaxDepth, p)
	require.NoError(t, err)
	assert.Equal(t, wordle.Word("aaaaa"), res.Word)
	assert.Equal(t, MethodRecursive, res.Method)

	// Both branches are singletons costing one guess each, so worst case
	// and expectation are both 1 under the outer (swapped) weights.
	assert.InDelta(t, p.AverageWeight*1+p.MinimaxWeight*1, res.Score, 1e-9)
}

// TestSearchBest_TieBreakPrefersSolutionGuess verifies that a perfectly
// splitting non-solution loses the tie to a perfectly splitting solution.
func TestSearchBest_TieBreakPrefersSolutionGuess(t *testing.T) {
	solutions := []wordle.Word{"crane", "slate", "bloke"}
	// "carts" splits the pool into three singletons, same as "slate", but
	// only "slate" can win the puzzle on this turn.
	guesses := []wordle.Word{"carts", "slate", "crane", "bloke"}

	p := DefaultParams()
	res, err := searchBest(guesses, solutions, wordSet(solutions), p.MaxDepth, p.MaxDepth, p)
	require.NoError(t, err)
	assert.Equal(t, wordle.Word("slate"), res.Word)
}

// TestBranchCost_SingletonIsOneGuess verifies the base case.
func TestBranchCost_SingletonIsOneGuess(t *testing.T) {
	cost, err := branchCost([]wordle.Word{"crane"}, []wordle.Word{"crane", "slate"}, 3, 3, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)
}

// TestBranchCost_DepthZeroFallsBackToHeuristic verifies the fallback path
// prices a branch as one guess plus the best in-group heuristic score.
func TestBranchCost_DepthZeroFallsBackToHeuristic(t *testing.T) {
	group := []wordle.Word{"crane", "slate", "bloke"}
	p := DefaultParams()

	cost, err := branchCost(group, group, 0, 3, p)
	require.NoError(t, err)
	assert.InDelta(t, 1+bestGroupHeuristic(group, p), cost, 1e-9)

	// "slate" splits its own group into singletons, so the in-group
	// heuristic floor is the perfect score.
	assert.InDelta(t, p.MinimaxWeight*1+p.AverageWeight*1, bestGroupHeuristic(group, p), 1e-9)
}

// TestInformativeFor_DropsUselessGuesses verifies the sub-pool guess
// restriction, including that a guess is never informative for its own
// feedback group.
func TestInformativeFor_DropsUselessGuesses(t *testing.T) {
	// The "--ggg" group of guess "crate": both members earn the same
	// pattern, so "crate" itself teaches nothing here.
	group := []wordle.Word{"slate", "plate"}

	assert.False(t, informative("crate", group))
	assert.True(t, informative("slate", group))

	got := informativeFor([]wordle.Word{"crate", "slate", "plate", "zzzzz"}, group)
	assert.Equal(t, []wordle.Word{"slate", "plate"}, got)
}

// TestSearchBest_DeterministicAcrossRuns guards against map iteration order
// leaking into the recommendation.
func TestSearchBest_DeterministicAcrossRuns(t *testing.T) {
	solutions := []wordle.Word{"crane", "slate", "plate", "grate", "crate", "bloke", "mount"}
	guesses := append([]wordle.Word{"carts", "tubes", "zesty"}, solutions...)
	p := DefaultParams()

	first, err := searchBest(guesses, solutions, wordSet(solutions), p.MaxDepth, p.MaxDepth, p)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := searchBest(guesses, solutions, wordSet(solutions), p.MaxDepth, p.MaxDepth, p)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
