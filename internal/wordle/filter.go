// internal/wordle/filter.go
//
// Candidate filtering: reduce a pool of possible solutions to those
// consistent with one observed (guess, feedback) pair. Replaying a full
// game history is a fold of Filter over each pair in order.

package wordle

// Filter returns the subsequence of pool whose members would have produced
// exactly fb when guess was played against them. The input pool is never
// mutated and relative order is preserved, so filtering is deterministic,
// idempotent, and strictly narrowing.
func Filter(pool []Word, guess Word, fb Feedback) []Word {
	out := make([]Word, 0, len(pool))
	for _, w := range pool {
		if Evaluate(guess, w) == fb {
			out = append(out, w)
		}
	}
	return out
}
