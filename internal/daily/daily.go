// internal/daily/daily.go
//
// Deterministic daily puzzle selection.
// Every install agrees on the day's answer: the UTC date is keyed
// through HMAC-SHA256 with a shared salt and reduced onto the solution
// list. Changing DAILY_SALT yields an independent schedule.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"os"
	"time"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// defaultSalt keeps unconfigured installs on the same schedule.
const defaultSalt = "wordlebot-daily-v1"

// Salt returns the configured daily salt, or the shared default.
func Salt() string {
	if s := os.Getenv("DAILY_SALT"); s != "" {
		return s
	}
	return defaultSalt
}

// DateKey returns the puzzle key for a moment in time: YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC-SHA256(salt, DateKey) mod solutionsLen.
func WordIndex(date time.Time, salt string, solutionsLen int) int {
	if solutionsLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// First 8 bytes give a uint64 for the modulus.
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(solutionsLen))
}

// Word picks the answer for a date from a solution list, using the
// configured salt.
func Word(date time.Time, solutions []wordle.Word) wordle.Word {
	return solutions[WordIndex(date, Salt(), len(solutions))]
}
