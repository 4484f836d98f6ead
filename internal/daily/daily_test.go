// internal/daily/daily_test.go

package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// TestDateKey_UsesUTC verifies the key rolls over on UTC midnight, not
// local time.
func TestDateKey_UsesUTC(t *testing.T) {
	east := time.FixedZone("UTC+10", 10*60*60)
	late := time.Date(2024, 3, 5, 2, 0, 0, 0, east) // 2024-03-04 16:00 UTC
	assert.Equal(t, "2024-03-04", DateKey(late))

	utc := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", DateKey(utc))
}

// TestWordIndex_IsDeterministic verifies the same date and salt always
// map to the same index.
func TestWordIndex_IsDeterministic(t *testing.T) {
	date := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	first := WordIndex(date, "salt", 2309)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, WordIndex(date, "salt", 2309))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 2309)
}

// TestWordIndex_SaltChangesSchedule verifies different salts give
// independent schedules.
func TestWordIndex_SaltChangesSchedule(t *testing.T) {
	differs := false
	for day := 0; day < 10; day++ {
		date := time.Date(2024, 7, 1+day, 0, 0, 0, 0, time.UTC)
		if WordIndex(date, "a", 1000) != WordIndex(date, "b", 1000) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "ten days with identical indexes across salts is implausible")
}

// TestWordIndex_EmptyListIsSafe verifies the zero guard.
func TestWordIndex_EmptyListIsSafe(t *testing.T) {
	assert.Equal(t, 0, WordIndex(time.Now(), "salt", 0))
}

// TestWord_HonorsDailySaltEnv verifies the env override reaches Word.
func TestWord_HonorsDailySaltEnv(t *testing.T) {
	solutions := []wordle.Word{"crane", "slate", "plate", "grate", "bloke", "mount", "brook"}
	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Setenv("DAILY_SALT", "")
	w := Word(date, solutions)
	require.Contains(t, solutions, w)
	assert.Equal(t, solutions[WordIndex(date, defaultSalt, len(solutions))], w)

	t.Setenv("DAILY_SALT", "custom")
	assert.Equal(t, solutions[WordIndex(date, "custom", len(solutions))], Word(date, solutions))
}
