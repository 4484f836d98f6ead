// internal/solver/recursive.go
//
// Recursive look-ahead scoring, used only when few solutions remain.
// Each candidate guess partitions the solutions by feedback; each group is
// a branch costed in additional guesses: a singleton costs exactly one,
// a group too big or too deep falls back to a heuristic estimate, anything
// else recurses with the guess list narrowed to words still informative
// for that group.
//
// Branch costs aggregate through the same worst-case/expected blend as the
// heuristic, with the outer level average-dominant (a better expected guess
// count) and inner levels minimax-dominant. Minimax dominance is what makes
// bounding cheap: once a branch's worst case alone exceeds the best blended
// score found so far, the guess is abandoned unexplored.
//
// The fallback mixes heuristic group-size units into guess counts. That
// inexactness is deliberate and load-bearing for bounding the search; the
// tie-break below compensates for most of what it miscounts.

package solver

import (
	"math"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// searchBest scores every candidate guess by bounded look-ahead and returns
// the lowest blended cost. depth counts remaining look-ahead levels;
// entryDepth marks the outermost call so the blend weights can swap there.
func searchBest(guesses, solutions []wordle.Word, members map[wordle.Word]struct{}, depth, entryDepth int, p Params) (Result, error) {
	if len(guesses) == 0 {
		return Result{}, ErrNoCandidates
	}
	worstW, avgW := p.levelWeights(depth, entryDepth)

	bestScore := math.Inf(1)
	var bestWord wordle.Word
	haveBest := false
	evaluated := 0

	for _, g := range guesses {
		groups := partition(g, solutions)
		evaluated++

		worst, total := 0.0, 0.0
		abandoned := false
		for _, group := range groups {
			cost, err := branchCost(group, guesses, depth, entryDepth, p)
			if err != nil {
				return Result{}, err
			}
			total += cost * float64(len(group))
			if cost > worst {
				worst = cost
			}
			// Worst case alone already loses to the current best; the
			// remaining branches cannot redeem this guess.
			if haveBest && worstW*worst > bestScore {
				abandoned = true
				break
			}
		}
		if abandoned {
			continue
		}

		expected := total / float64(len(solutions))
		score := worstW*worst + avgW*expected
		if !haveBest || score < bestScore || (score == bestScore && prefer(g, bestWord, members)) {
			bestScore, bestWord, haveBest = score, g, true
		}
	}
	if !haveBest {
		return Result{}, ErrNoCandidates
	}
	return Result{
		Word:      bestWord,
		Score:     bestScore,
		Method:    MethodRecursive,
		Evaluated: evaluated,
	}, nil
}

// branchCost prices one feedback group in additional guesses after the
// parent guess is played.
func branchCost(group, guesses []wordle.Word, depth, entryDepth int, p Params) (float64, error) {
	// One word left: playing it ends the branch.
	if len(group) == 1 {
		return 1, nil
	}
	if depth == 0 || len(group) > p.BranchCutoff {
		return 1 + bestGroupHeuristic(group, p), nil
	}
	sub := informativeFor(guesses, group)
	res, err := searchBest(sub, group, wordSet(group), depth-1, entryDepth, p)
	if err != nil {
		return 0, err
	}
	return 1 + res.Score, nil
}

// bestGroupHeuristic estimates a group's residual cost as the best
// minimax-dominant heuristic score obtainable by guessing from within the
// group itself. Group members are always legal guesses and keep this
// estimate O(k²) for a k-word group, with k capped by BranchCutoff except
// at depth zero.
func bestGroupHeuristic(group []wordle.Word, p Params) float64 {
	best := math.Inf(1)
	for _, g := range group {
		st := partitionStats(g, group)
		if s := blendScore(st, len(group), p.MinimaxWeight, p.AverageWeight); s < best {
			best = s
		}
	}
	return best
}

// partition groups solutions by the feedback pattern guess would earn
// against each.
func partition(guess wordle.Word, solutions []wordle.Word) map[wordle.Feedback][]wordle.Word {
	groups := make(map[wordle.Feedback][]wordle.Word, len(solutions))
	for _, s := range solutions {
		fb := wordle.Evaluate(guess, s)
		groups[fb] = append(groups[fb], s)
	}
	return groups
}

// informativeFor keeps the guesses that split pool into at least two
// feedback groups. A guess earning identical feedback from every pool word
// teaches nothing there; notably the parent guess is never informative for
// its own branch, so recursion never replays it.
func informativeFor(guesses []wordle.Word, pool []wordle.Word) []wordle.Word {
	out := make([]wordle.Word, 0, len(guesses))
	for _, g := range guesses {
		if informative(g, pool) {
			out = append(out, g)
		}
	}
	return out
}

// informative reports whether g distinguishes anything within pool.
func informative(g wordle.Word, pool []wordle.Word) bool {
	if len(pool) < 2 {
		return false
	}
	first := wordle.Evaluate(g, pool[0])
	for _, s := range pool[1:] {
		if wordle.Evaluate(g, s) != first {
			return true
		}
	}
	return false
}

// prefer reports whether a wins a score tie against b: a guess that is
// itself a remaining solution can win the puzzle outright, a non-solution
// cannot.
func prefer(a, b wordle.Word, members map[wordle.Word]struct{}) bool {
	_, am := members[a]
	_, bm := members[b]
	return am && !bm
}
