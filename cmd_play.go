package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Joeltronics/wordlebot/internal/daily"
	"github.com/Joeltronics/wordlebot/internal/game"
	"github.com/Joeltronics/wordlebot/internal/solver"
	"github.com/Joeltronics/wordlebot/internal/wordle"
	"github.com/Joeltronics/wordlebot/internal/words"
)

// quitWords end the interactive loop when typed at a prompt.
var quitWords = map[string]bool{"q": true, "x": true, "quit": true, "exit": true}

func runPlay(cmd *cobra.Command, args []string) {
	lists, err := loadLists()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	if flagSolution != "" && flagDaily {
		log.Fatal().Msg("--solution and --daily are mutually exclusive")
	}

	opts := game.Options{Endless: flagEndless, Agnostic: flagAgnostic}
	switch {
	case flagSolution != "":
		opts.Answer = wordle.Word(flagSolution)
	case flagDaily:
		opts.Answer = daily.Word(time.Now(), lists.Solutions)
	case flagAllWords:
		opts.Answer = lists.RandomWord()
	}

	g, err := game.New(lists, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start game")
	}

	_, _, total := lists.Stats()
	fmt.Printf("%d total allowed words\n", total)
	if flagDaily {
		fmt.Printf("Daily puzzle for %s\n", daily.DateKey(time.Now()))
	}
	if flagSolution != "" {
		fmt.Printf("Solution given: %s\n", strings.ToUpper(flagSolution))
	} else if flagCheat {
		fmt.Printf("CHEAT MODE: solution is %s\n", strings.ToUpper(string(g.Answer)))
	}

	params := engineParams()
	queued := flagGuesses
	in := bufio.NewScanner(os.Stdin)

	fmt.Println()
	for g.Status() == game.StatusPlaying {
		fmt.Println(game.RenderKeyboard(g.Keyboard()))
		fmt.Println()

		word, ok := nextGuess(in, g, lists, params, &queued)
		if !ok {
			return
		}
		if _, _, err := g.ApplyGuess(word); err != nil {
			printGuessError(err, word)
			continue
		}
		printHistory(g)

		if flagEndless && len(g.Guesses) == game.DefaultMaxTurns && g.Status() == game.StatusPlaying {
			fmt.Println("Playing in endless mode - continuing after 6 guesses")
			fmt.Println()
		}
	}

	switch g.Status() {
	case game.StatusWon:
		fmt.Printf("Success! Solved in %d guesses.\n", len(g.Guesses))
	case game.StatusLost:
		fmt.Printf("Failed, the solution was %s\n", strings.ToUpper(string(g.Answer)))
	}
}

// nextGuess produces the next word to play: a forced --guess if any are
// queued, the solver's pick in --auto mode, otherwise a prompt.
func nextGuess(in *bufio.Scanner, g *game.Game, lists *words.Lists, params solver.Params, queued *[]string) (string, bool) {
	if len(*queued) > 0 {
		w := (*queued)[0]
		*queued = (*queued)[1:]
		fmt.Printf("Using specified guess: %s\n", w)
		return w, true
	}
	if flagAuto {
		fmt.Println(game.RenderPossible(g.Possible()))
		rec, err := recommend(g, lists, params)
		if err != nil {
			log.Fatal().Err(err).Msg("solver cannot continue")
		}
		fmt.Printf("Using guess from solver: %s\n", strings.ToUpper(string(rec.Word)))
		return string(rec.Word), true
	}
	return promptWord(in, g, lists, params)
}

// promptWord asks for a word until a valid one (or a quit word) comes in.
// The non-guess commands hint, list, and stats run in place.
func promptWord(in *bufio.Scanner, g *game.Game, lists *words.Lists, params solver.Params) (string, bool) {
	for {
		if g.MaxTurns > 0 {
			fmt.Printf("Enter guess %d/%d (or 'q' to quit): ", g.Turn(), g.MaxTurns)
		} else {
			fmt.Printf("Enter guess %d (or 'q' to quit): ", g.Turn())
		}
		if !in.Scan() {
			return "", false
		}
		raw := strings.ToLower(strings.TrimSpace(in.Text()))
		switch {
		case raw == "":
			continue
		case quitWords[raw]:
			return "", false
		case raw == "hint":
			if rec, err := recommend(g, lists, params); err == nil {
				fmt.Printf("Solver's best guess is %s (%s, %d possible)\n",
					strings.ToUpper(string(rec.Word)), rec.Method, rec.Remaining)
			} else {
				fmt.Printf("No recommendation: %v\n", err)
			}
			continue
		case raw == "list":
			fmt.Println(game.RenderPossible(g.Possible()))
			continue
		case raw == "stats":
			printLetterStats(g)
			continue
		}

		w, err := wordle.ParseWord(raw)
		if err != nil {
			printGuessError(err, raw)
			continue
		}
		if !lists.IsAllowed(w) {
			fmt.Printf("Invalid word: %s\n", strings.ToUpper(raw))
			continue
		}
		return raw, true
	}
}

// recommend asks the solver for the next guess given the session so far.
// The session's own possible pool seeds the solutions, so agnostic play
// and narrowed pools are both honored.
func recommend(g *game.Game, lists *words.Lists, params solver.Params) (solver.Result, error) {
	return solver.SelectGuess(g.Guesses, lists.All, g.Possible(), params)
}

func printGuessError(err error, raw string) {
	switch {
	case errors.Is(err, wordle.ErrWordLength):
		fmt.Println("Guess must be length 5")
	case errors.Is(err, game.ErrNotAllowed), errors.Is(err, wordle.ErrWordChar):
		fmt.Printf("Invalid word: %s\n", strings.ToUpper(raw))
	default:
		fmt.Println(err)
	}
}

func printHistory(g *game.Game) {
	fmt.Println()
	for i, scored := range g.Guesses {
		fmt.Printf("%d: %s\n", i+1, game.RenderRow(scored))
	}
	fmt.Println()
}

// printLetterStats shows how much of the puzzle is still open.
func printLetterStats(g *game.Game) {
	perPos, total := g.LetterCounts()
	fmt.Printf("%d distinct letters across %d possible solutions\n", total, g.Remaining())
	for i, n := range perPos {
		fmt.Printf("  position %d: %d possible letters\n", i+1, n)
	}
}
