// internal/solver/params.go
//
// Tunable knobs for the guess engine. Params is plain immutable data:
// it is passed by value into every scoring call, never mutated, and
// serializes to JSON so benchmark runs can record the exact
// configuration they measured.

package solver

import "runtime"

// Params configures pruning, score blending, recursion, and parallelism.
// The zero value is not useful; start from DefaultParams.
type Params struct {
	// MaxGuessPool is the guess-pool size above which guess pruning kicks in.
	MaxGuessPool int `json:"maxGuessPool"`
	// GuessPoolTarget is how many top-ranked guesses pruning retains
	// (remaining solutions are always retained on top of this).
	GuessPoolTarget int `json:"guessPoolTarget"`
	// MaxSolutionPool is the solutions-pool size above which solution
	// pruning kicks in. This is the heavier compromise, so the threshold
	// is stricter than the guess one.
	MaxSolutionPool int `json:"maxSolutionPool"`
	// SolutionPoolTarget is the approximate solutions count kept by
	// every-Nth sampling when solution pruning applies.
	SolutionPoolTarget int `json:"solutionPoolTarget"`

	// MinimaxWeight scales the worst-case term of the blended score.
	MinimaxWeight float64 `json:"minimaxWeight"`
	// AverageWeight scales the expected-size term of the blended score.
	// At the outer recursion level the two weights swap roles so that the
	// final pick leans toward expected guess count while inner levels stay
	// minimax-heavy for pruning.
	AverageWeight float64 `json:"averageWeight"`

	// RecursionLimit gates the recursive scorer: look-ahead runs only when
	// the remaining-solutions count is at or below this.
	RecursionLimit int `json:"recursionLimit"`
	// MaxDepth bounds how many guesses ahead the recursive scorer looks.
	MaxDepth int `json:"maxDepth"`
	// BranchCutoff is the branch pool size above which recursion stops and
	// the branch cost falls back to a heuristic estimate.
	BranchCutoff int `json:"branchCutoff"`

	// Workers caps parallel guess scoring. 0 means GOMAXPROCS; 1 forces
	// the serial path. The chosen guess is identical either way.
	Workers int `json:"workers"`
}

// DefaultParams returns the stock configuration. The blend weights and
// pruning cutoffs are deliberately exposed rather than hard-coded; they
// are starting points, not tuned optima.
func DefaultParams() Params {
	return Params{
		MaxGuessPool:       1500,
		GuessPoolTarget:    400,
		MaxSolutionPool:    600,
		SolutionPoolTarget: 300,
		MinimaxWeight:      3,
		AverageWeight:      1,
		RecursionLimit:     40,
		MaxDepth:           3,
		BranchCutoff:       16,
		Workers:            0,
	}
}

// workerCount resolves Workers to a concrete positive count.
func (p Params) workerCount() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// levelWeights returns the (worst-case, expected) weights for one recursion
// level. The outer level swaps the two so the final choice favors expected
// guess count; inner levels stay minimax-dominant, which is what makes the
// worst-case pruning bound cheap.
func (p Params) levelWeights(depth, entryDepth int) (worstW, avgW float64) {
	if depth == entryDepth {
		return p.AverageWeight, p.MinimaxWeight
	}
	return p.MinimaxWeight, p.AverageWeight
}
