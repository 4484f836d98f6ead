// internal/game/render.go
//
// Terminal rendering for play and assist modes.
// Responsibilities:
//   - Board rows: one tile per letter, background-colored by status.
//   - Keyboard: QWERTY layout with each letter colored by its best status.
//   - Possible-solution listing with size-tiered verbosity.
//
// All functions return strings with ANSI codes already applied via
// colorstring; callers just print them.

package game

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// tileCode maps a letter status to its tile color codes.
func tileCode(st wordle.LetterStatus) string {
	switch st {
	case wordle.StatusExact:
		return "[_green_][black]"
	case wordle.StatusPresent:
		return "[_yellow_][black]"
	default:
		return "[_dark_gray_][white]"
	}
}

// RenderRow returns one board line for a scored guess.
func RenderRow(g wordle.Guess) string {
	var b strings.Builder
	for i := 0; i < wordle.WordLen; i++ {
		if i > 0 {
			b.WriteString("[reset] ")
		}
		b.WriteString(tileCode(g.Feedback[i]))
		b.WriteByte(' ')
		b.WriteByte(g.Word[i] - 'a' + 'A')
		b.WriteByte(' ')
	}
	return colorstring.Color(b.String())
}

// RenderKeyboard returns the three QWERTY rows, letters colored by the
// best status seen so far. Untouched letters stay in the default color.
func RenderKeyboard(keys [26]wordle.LetterStatus) string {
	var b strings.Builder
	for row, letters := range keyboardRows {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", row+1))
		for i := 0; i < len(letters); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			switch keys[letters[i]-'a'] {
			case wordle.StatusExact:
				b.WriteString("[green]")
			case wordle.StatusPresent:
				b.WriteString("[yellow]")
			case wordle.StatusAbsent:
				b.WriteString("[dark_gray]")
			default:
				b.WriteString("[default]")
			}
			b.WriteByte(letters[i] - 'a' + 'A')
		}
	}
	return colorstring.Color(b.String())
}

// RenderPossible returns a listing of the possible solutions, scaled to
// the pool size: a bare count above 100, rows of ten up to 100, and a
// single line at ten or fewer.
func RenderPossible(possible []wordle.Word) string {
	n := len(possible)
	switch {
	case n > 100:
		return fmt.Sprintf("%d possible solutions", n)
	case n > 10:
		var b strings.Builder
		fmt.Fprintf(&b, "%d possible solutions:", n)
		for i, w := range possible {
			if i%10 == 0 {
				b.WriteString("\n  ")
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(string(w))
		}
		return b.String()
	case n == 1:
		return fmt.Sprintf("1 possible solution: %s", possible[0])
	case n == 0:
		return "no possible solutions"
	default:
		parts := make([]string, n)
		for i, w := range possible {
			parts[i] = string(w)
		}
		return fmt.Sprintf("%d possible solutions: %s", n, strings.Join(parts, " "))
	}
}
