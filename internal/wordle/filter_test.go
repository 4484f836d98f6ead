// internal/wordle/filter_test.go

package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFilter_KeepsOnlyConsistentWords checks filtering against a known pool.
func TestFilter_KeepsOnlyConsistentWords(t *testing.T) {
	pool := []Word{"crane", "slate", "plate", "grate", "crate"}

	// Playing "crate" against the true solution "slate" yields "--ggg";
	// only "slate" and "plate" would have produced that same pattern.
	fb := Evaluate("crate", "slate")
	require.Equal(t, "--ggg", fb.String())

	got := Filter(pool, "crate", fb)
	assert.Equal(t, []Word{"slate", "plate"}, got)
}

// TestFilter_IsIdempotent verifies filtering twice equals filtering once.
func TestFilter_IsIdempotent(t *testing.T) {
	pool := []Word{"crane", "slate", "plate", "grate", "crate"}
	fb := Evaluate("crate", "slate")

	once := Filter(pool, "crate", fb)
	twice := Filter(once, "crate", fb)
	assert.Equal(t, once, twice)
}

// TestFilter_IsMonotonicAndOrderPreserving verifies the result is always a
// subsequence of the input pool.
func TestFilter_IsMonotonicAndOrderPreserving(t *testing.T) {
	pool := []Word{"mount", "books", "brook", "crane", "slate", "eerie"}
	guesses := []Word{"crane", "slate", "books", "eerie"}
	for _, g := range guesses {
		for _, sol := range pool {
			fb := Evaluate(g, sol)
			got := Filter(pool, g, fb)
			assert.LessOrEqual(t, len(got), len(pool))

			// Every kept word appears in the pool, in the same relative order.
			i := 0
			for _, w := range got {
				for i < len(pool) && pool[i] != w {
					i++
				}
				require.Less(t, i, len(pool), "Filter(%q, %v) returned %q out of order", g, fb, w)
				i++
			}
		}
	}
}

// TestFilter_DoesNotMutatePool verifies the input slice is untouched.
func TestFilter_DoesNotMutatePool(t *testing.T) {
	pool := []Word{"crane", "slate", "plate"}
	orig := append([]Word(nil), pool...)
	_ = Filter(pool, "crate", Evaluate("crate", "slate"))
	assert.Equal(t, orig, pool)
}

// TestFilter_EmptyResultForContradiction verifies an impossible pattern
// filters everything out.
func TestFilter_EmptyResultForContradiction(t *testing.T) {
	pool := []Word{"crane", "slate"}
	fb, err := ParseFeedback("ggggg")
	require.NoError(t, err)
	got := Filter(pool, "mount", fb)
	assert.Empty(t, got)
}
