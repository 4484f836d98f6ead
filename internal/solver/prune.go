// internal/solver/prune.go
//
// Search-space pruning. Two independent narrowings, each a no-op until its
// threshold is crossed: the guess pool keeps only the top frequency-ranked
// words (plus every remaining solution), and an oversized solutions pool is
// thinned by stride sampling. Pruning narrows, it never errors; an empty
// result can only come from broken targets and is caught by the selector.

package solver

import (
	"sort"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// pruneGuesses ranks the guess pool by letter-frequency score against the
// current solutions and keeps the top GuessPoolTarget words. Words that are
// themselves still possible solutions are always kept: they are cheap to
// carry and one of them may be the perfect guess. The returned slice is in
// rank order, which downstream scorers use as their scan order.
func pruneGuesses(guesses, solutions []wordle.Word, p Params) []wordle.Word {
	if len(guesses) <= p.MaxGuessPool {
		return guesses
	}
	ranked := newFreqTable(solutions).rank(guesses)
	keep := wordSet(solutions)
	out := make([]wordle.Word, 0, p.GuessPoolTarget+len(solutions))
	for i, w := range ranked {
		if i < p.GuessPoolTarget {
			out = append(out, w)
			continue
		}
		if _, ok := keep[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// pruneSolutions thins an oversized solutions pool to roughly
// SolutionPoolTarget words by sorting lexicographically and keeping every
// Nth entry. Cheap diversity, not guaranteed diversity: adjacent words are
// usually similar, so a fixed stride over sorted order spreads the sample
// across the alphabet.
func pruneSolutions(solutions []wordle.Word, p Params) []wordle.Word {
	if len(solutions) <= p.MaxSolutionPool || p.SolutionPoolTarget <= 0 {
		return solutions
	}
	sorted := append([]wordle.Word(nil), solutions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	stride := (len(sorted) + p.SolutionPoolTarget - 1) / p.SolutionPoolTarget
	out := make([]wordle.Word, 0, p.SolutionPoolTarget+1)
	for i := 0; i < len(sorted); i += stride {
		out = append(out, sorted[i])
	}
	return out
}

// wordSet builds a membership set.
func wordSet(words []wordle.Word) map[wordle.Word]struct{} {
	m := make(map[wordle.Word]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// without returns guesses with one word removed, leaving the input intact.
func without(words []wordle.Word, drop wordle.Word) []wordle.Word {
	out := make([]wordle.Word, 0, len(words))
	for _, w := range words {
		if w != drop {
			out = append(out, w)
		}
	}
	return out
}
