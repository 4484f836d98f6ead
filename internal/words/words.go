// internal/words/words.go
//
// Word list management for the solver and the game modes.
//
// Responsibilities:
//   - Load solution and extra-guess lists from flag- or environment-provided
//     files, falling back to embedded defaults.
//   - Validate strictly on load: exact length, ASCII letters, no duplicates,
//     no overlap between the two lists.
//   - Maintain sets for membership checks and expose counts for stats displays.
//
// Word lists:
//   - "solutions": curated words the answer is drawn from.
//   - "extra":     words accepted as guesses but never used as answers.
//   - "all":       solutions plus extra, the playable guess pool.
//
// Resolution order (Load):
//   1. Explicit paths in Options (set from CLI flags).
//   2. WORDS_SOLUTIONS_FILE / WORDS_ALLOWED_FILE environment variables.
//   3. Embedded defaults.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a-z); input is case-folded first.
//   • Any invalid line, duplicate, or solutions/extra overlap fails the load.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// --- embedded defaults (keep the binary self-contained) ---

//go:embed solutions.txt
var embeddedSolutions string

//go:embed allowed_extra.txt
var embeddedExtra string

var (
	ErrEmptySolutions = errors.New("words: solutions list is empty")
	ErrDuplicateWord  = errors.New("words: duplicate word")
	ErrListOverlap    = errors.New("words: word appears in both solutions and extra")
)

// Options selects where the lists come from. The zero value reads the
// environment variables, then the embedded defaults.
type Options struct {
	SolutionsPath string // overrides WORDS_SOLUTIONS_FILE
	AllowedPath   string // overrides WORDS_ALLOWED_FILE
}

// Lists holds validated word lists ready for the solver. Construct with
// Load; the slices must not be mutated afterwards.
type Lists struct {
	Solutions []wordle.Word // possible answers
	Extra     []wordle.Word // guessable but never an answer
	All       []wordle.Word // Solutions followed by Extra

	solutionSet map[wordle.Word]struct{}
	allowedSet  map[wordle.Word]struct{}
}

// Load resolves, reads, and validates the word lists.
//
// When only a solutions file is given, the extra list is left empty rather
// than mixing a custom answer list with the embedded guesses. When only an
// allowed file is given, it supplies the extra guesses on top of the
// embedded solutions.
func Load(opts Options) (*Lists, error) {
	solPath := opts.SolutionsPath
	if solPath == "" {
		solPath = os.Getenv("WORDS_SOLUTIONS_FILE")
	}
	extraPath := opts.AllowedPath
	if extraPath == "" {
		extraPath = os.Getenv("WORDS_ALLOWED_FILE")
	}

	var (
		solutions []wordle.Word
		extra     []wordle.Word
		err       error
	)
	switch {
	// Case 1: custom solutions, with or without custom extras
	case solPath != "":
		if solutions, err = readWordFile(solPath); err != nil {
			return nil, err
		}
		if extraPath != "" {
			if extra, err = readWordFile(extraPath); err != nil {
				return nil, err
			}
		}

	// Case 2: custom extras over the embedded solutions
	case extraPath != "":
		if solutions, err = parseLines("embedded solutions", embeddedSolutions); err != nil {
			return nil, err
		}
		if extra, err = readWordFile(extraPath); err != nil {
			return nil, err
		}

	// Case 3: embedded defaults
	default:
		if solutions, err = parseLines("embedded solutions", embeddedSolutions); err != nil {
			return nil, err
		}
		if extra, err = parseLines("embedded extras", embeddedExtra); err != nil {
			return nil, err
		}
	}

	return build(solutions, extra)
}

// build assembles the lookup sets and enforces the cross-list rules.
func build(solutions, extra []wordle.Word) (*Lists, error) {
	if len(solutions) == 0 {
		return nil, ErrEmptySolutions
	}

	solutionSet := make(map[wordle.Word]struct{}, len(solutions))
	for _, w := range solutions {
		if _, dup := solutionSet[w]; dup {
			return nil, fmt.Errorf("%w: %q in solutions", ErrDuplicateWord, w)
		}
		solutionSet[w] = struct{}{}
	}

	allowedSet := make(map[wordle.Word]struct{}, len(solutions)+len(extra))
	for w := range solutionSet {
		allowedSet[w] = struct{}{}
	}
	for _, w := range extra {
		if _, overlap := solutionSet[w]; overlap {
			return nil, fmt.Errorf("%w: %q", ErrListOverlap, w)
		}
		if _, dup := allowedSet[w]; dup {
			return nil, fmt.Errorf("%w: %q in extra", ErrDuplicateWord, w)
		}
		allowedSet[w] = struct{}{}
	}

	all := make([]wordle.Word, 0, len(solutions)+len(extra))
	all = append(all, solutions...)
	all = append(all, extra...)

	return &Lists{
		Solutions:   solutions,
		Extra:       extra,
		All:         all,
		solutionSet: solutionSet,
		allowedSet:  allowedSet,
	}, nil
}

// readWordFile loads one word per line from a file. Blank lines are
// ignored; anything else must parse as a valid word.
func readWordFile(path string) ([]wordle.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()

	var out []wordle.Word
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		w, err := wordle.ParseWord(raw)
		if err != nil {
			return nil, fmt.Errorf("words: %s line %d: %w", path, line, err)
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return out, nil
}

// parseLines is readWordFile for embedded data.
func parseLines(name, data string) ([]wordle.Word, error) {
	var out []wordle.Word
	for i, line := range strings.Split(data, "\n") {
		raw := strings.TrimSpace(line)
		if raw == "" {
			continue
		}
		w, err := wordle.ParseWord(raw)
		if err != nil {
			return nil, fmt.Errorf("words: %s line %d: %w", name, i+1, err)
		}
		out = append(out, w)
	}
	return out, nil
}

// IsAllowed reports whether w may be played as a guess.
func (l *Lists) IsAllowed(w wordle.Word) bool {
	_, ok := l.allowedSet[w]
	return ok
}

// IsSolution reports whether w is a possible answer.
func (l *Lists) IsSolution(w wordle.Word) bool {
	_, ok := l.solutionSet[w]
	return ok
}

// RandomSolution returns a cryptographically random answer word.
func (l *Lists) RandomSolution() wordle.Word {
	return randomFrom(l.Solutions)
}

// RandomWord returns a random word from the full allowed list, so even
// the obscure never-an-answer words can come up.
func (l *Lists) RandomWord() wordle.Word {
	return randomFrom(l.All)
}

func randomFrom(pool []wordle.Word) wordle.Word {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return pool[0]
	}
	return pool[nBig.Int64()]
}

// Stats returns the list sizes: solutions, extra guesses, and their total.
func (l *Lists) Stats() (solutions, extra, total int) {
	return len(l.Solutions), len(l.Extra), len(l.allowedSet)
}
