// internal/wordle/evaluate.go
//
// Feedback evaluation: what a real game would show for a guess against
// a known solution. This is the leaf the whole engine stands on; every
// filter and scorer calls Evaluate, so it must reproduce the standard
// duplicate-letter rule exactly.

package wordle

// Evaluate scores guess against solution using the classic two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches.
//   - Count the solution letters at the remaining (non-exact) positions.
//
// Pass 2:
//   - For each non-exact guess position, left to right: if the count for
//     that letter is still positive, mark Present and decrement; otherwise
//     mark Absent.
//
// This handles repeated letters the way the real game does: a letter never
// earns more Present+Exact marks than it occurs in the solution, and when
// the guess overuses a letter the earlier positions claim Present first.
//
// Both words are assumed validated (see ParseWord); Evaluate is pure and O(L).
func Evaluate(guess, solution Word) Feedback {
	var fb Feedback

	// Remaining letter counts for the non-exact positions (a-z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == solution[i] {
			fb[i] = StatusExact
		} else {
			counts[solution[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if fb[i] == StatusExact {
			continue
		}
		j := int(guess[i] - 'a')
		if j < 26 && counts[j] > 0 {
			fb[i] = StatusPresent
			counts[j]--
		} else {
			fb[i] = StatusAbsent
		}
	}
	return fb
}
