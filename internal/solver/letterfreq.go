// internal/solver/letterfreq.go
//
// Letter-frequency scoring. Ranks words by how much frequent-letter
// coverage they buy against the remaining solutions: distinct common
// letters in their most common positions beat repeats. Used to pick the
// opening guess and to rank the guess pool for pruning.

package solver

import (
	"sort"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// freqTable holds letter statistics over one candidate-solutions pool.
type freqTable struct {
	total    [26]int                   // occurrences per letter across the pool
	position [wordle.WordLen][26]int   // occurrences per letter per position
	peak     [26]int                   // position where each letter is most common
}

// newFreqTable tallies the pool. For each letter, peak records the position
// with the highest count; the lowest index wins ties so ranking stays
// deterministic.
func newFreqTable(pool []wordle.Word) *freqTable {
	t := &freqTable{}
	for _, w := range pool {
		for i := 0; i < wordle.WordLen; i++ {
			c := w[i] - 'a'
			t.total[c]++
			t.position[i][c]++
		}
	}
	for c := 0; c < 26; c++ {
		best := 0
		for i := 1; i < wordle.WordLen; i++ {
			if t.position[i][c] > t.position[best][c] {
				best = i
			}
		}
		t.peak[c] = best
	}
	return t
}

// scoreWord awards, per position:
//   - 2 points when the letter sits at its most common position and this is
//     its first occurrence in the word,
//   - 1 point for a repeat occurrence or an off-peak position,
//   - 0 when the letter does not occur in the pool at all.
//
// Higher is better. Repeated letters barely score because they retest
// information the first occurrence already buys.
func (t *freqTable) scoreWord(w wordle.Word) int {
	score := 0
	var seen [26]bool
	for i := 0; i < wordle.WordLen; i++ {
		c := w[i] - 'a'
		if t.total[c] == 0 {
			continue
		}
		if !seen[c] && t.peak[c] == i {
			score += 2
		} else {
			score++
		}
		seen[c] = true
	}
	return score
}

// rank returns words ordered by descending score, ties broken
// lexicographically. The input slice is not touched.
func (t *freqTable) rank(words []wordle.Word) []wordle.Word {
	ranked := append([]wordle.Word(nil), words...)
	scores := make(map[wordle.Word]int, len(ranked))
	for _, w := range ranked {
		scores[w] = t.scoreWord(w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}
