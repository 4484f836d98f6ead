// internal/solver/heuristic.go
//
// Heuristic guess scoring. A guess is scored by partitioning the remaining
// solutions by the feedback pattern each would produce: small partitions
// mean the guess discriminates well. The scalar score blends the worst-case
// group size with the expected group size; lower is better.
//
// The scan over candidates is a lazy sequence in rank order. A guess whose
// groups are all singletons is "perfect" and nothing can beat it, so the
// sequence stops producing as soon as a perfect remaining-solution guess
// appears; after a perfect non-solution guess, only remaining solutions are
// still worth scoring (they alone can tie it and win the tie-break).

package solver

import (
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// minParallelGuesses is the pool size below which the serial path always
// runs; splitting tiny scans across workers costs more than it saves.
const minParallelGuesses = 64

// groupStats summarizes one guess's feedback partition of the solutions.
type groupStats struct {
	groups  int // distinct feedback patterns
	largest int // worst-case group size
}

// scored is one ranked candidate with its heuristic score.
type scored struct {
	word    wordle.Word
	score   float64
	perfect bool // every feedback group is a singleton
}

// partitionStats groups solutions by the feedback pattern guess would earn
// against each and records group count and worst case. One pass, O(n).
func partitionStats(guess wordle.Word, solutions []wordle.Word) groupStats {
	sizes := make(map[wordle.Feedback]int, len(solutions))
	for _, s := range solutions {
		sizes[wordle.Evaluate(guess, s)]++
	}
	st := groupStats{groups: len(sizes)}
	for _, n := range sizes {
		if n > st.largest {
			st.largest = n
		}
	}
	return st
}

// blendScore combines worst-case and expected group size. The expected
// size under a uniform solution prior is poolSize/groups.
func blendScore(st groupStats, poolSize int, worstW, avgW float64) float64 {
	avg := float64(poolSize) / float64(st.groups)
	return worstW*float64(st.largest) + avgW*avg
}

// scoreOne computes the default (minimax-dominant) heuristic score for one
// guess.
func scoreOne(guess wordle.Word, solutions []wordle.Word, p Params) scored {
	st := partitionStats(guess, solutions)
	return scored{
		word:    guess,
		score:   blendScore(st, len(solutions), p.MinimaxWeight, p.AverageWeight),
		perfect: st.largest == 1,
	}
}

// scanScores yields scored candidates in scan order, applying the
// perfect-guess rules: after a perfect guess that is not a remaining
// solution, non-solution candidates are skipped unscored; after a perfect
// remaining-solution guess the sequence ends. score is called once per
// yielded candidate, so consumers counting yields observe exactly how many
// candidates were evaluated.
func scanScores(guesses []wordle.Word, members map[wordle.Word]struct{}, score func(i int, w wordle.Word) scored) iter.Seq[scored] {
	return func(yield func(scored) bool) {
		perfectSeen := false
		for i, g := range guesses {
			_, member := members[g]
			if perfectSeen && !member {
				continue
			}
			sc := score(i, g)
			if !yield(sc) {
				return
			}
			if sc.perfect {
				if member {
					return
				}
				perfectSeen = true
			}
		}
	}
}

// scoreAll computes every candidate's score up front across an errgroup
// worker pool. Each worker writes disjoint indexes of the result slice, so
// no locking is needed.
func scoreAll(guesses, solutions []wordle.Word, p Params, workers int) []scored {
	out := make([]scored, len(guesses))
	var grp errgroup.Group
	chunk := (len(guesses) + workers - 1) / workers
	for start := 0; start < len(guesses); start += chunk {
		end := min(start+chunk, len(guesses))
		grp.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = scoreOne(guesses[i], solutions, p)
			}
			return nil
		})
	}
	_ = grp.Wait()
	return out
}

// lessScored reports whether a strictly beats b: lower score wins, equal
// scores fall to the solution-membership tie-break. Scan order settles
// everything else, so the earliest candidate wins remaining ties.
func lessScored(a, b scored, members map[wordle.Word]struct{}) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return prefer(a.word, b.word, members)
}

// bestHeuristic scans the candidate guesses and returns the best one.
// With more than one worker and a large enough pool the scores are
// precomputed in parallel, then reduced through the same sequence logic as
// the serial path: the winner and the evaluated count are identical either
// way, the parallel path has just already paid for scores the serial path
// would have skipped.
func bestHeuristic(guesses, solutions []wordle.Word, members map[wordle.Word]struct{}, p Params) (Result, error) {
	if len(guesses) == 0 {
		return Result{}, ErrNoCandidates
	}

	score := func(i int, w wordle.Word) scored { return scoreOne(w, solutions, p) }
	if workers := p.workerCount(); workers > 1 && len(guesses) >= minParallelGuesses {
		all := scoreAll(guesses, solutions, p, workers)
		score = func(i int, w wordle.Word) scored { return all[i] }
	}

	var best scored
	haveBest := false
	evaluated := 0
	for sc := range scanScores(guesses, members, score) {
		evaluated++
		if !haveBest || lessScored(sc, best, members) {
			best = sc
			haveBest = true
		}
	}
	if !haveBest {
		return Result{}, ErrNoCandidates
	}
	return Result{
		Word:      best.word,
		Score:     best.score,
		Method:    MethodHeuristic,
		Evaluated: evaluated,
	}, nil
}
