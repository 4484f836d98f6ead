package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Joeltronics/wordlebot/internal/game"
	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// runAssist tracks a game played elsewhere: the user relays each guess
// and the pattern it earned, and the solver recommends before each turn.
func runAssist(cmd *cobra.Command, args []string) {
	lists, err := loadLists()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	g := game.NewAssist(lists, game.Options{Endless: flagEndless, Agnostic: flagAgnostic})
	params := engineParams()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Assist mode: relay each guess you play and the pattern it earned.")
	fmt.Println()

	for g.Status() == game.StatusPlaying {
		if rec, err := recommend(g, lists, params); err == nil {
			fmt.Printf("Recommended: %s (%s, %d possible)\n",
				strings.ToUpper(string(rec.Word)), rec.Method, rec.Remaining)
		}
		fmt.Println(game.RenderKeyboard(g.Keyboard()))
		fmt.Println()

		word, ok := promptWord(in, g, lists, params)
		if !ok {
			return
		}
		fb, ok := promptFeedback(in)
		if !ok {
			return
		}

		if _, err := g.ApplyFeedback(word, fb); err != nil {
			if errors.Is(err, game.ErrImpossibleFeedback) {
				fmt.Println("That pattern leaves no possible solutions. Check for a typo and try again.")
				continue
			}
			fmt.Println(err)
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
		fmt.Println("Out of guesses.")
		fmt.Println(game.RenderPossible(g.Possible()))
	}
}

// promptFeedback asks for the five-symbol result pattern.
func promptFeedback(in *bufio.Scanner) (wordle.Feedback, bool) {
	for {
		fmt.Print("Enter result (g=green y=yellow -=grey, e.g. -yg--): ")
		if !in.Scan() {
			return wordle.Feedback{}, false
		}
		raw := strings.TrimSpace(in.Text())
		if quitWords[strings.ToLower(raw)] {
			return wordle.Feedback{}, false
		}
		fb, err := wordle.ParseFeedback(raw)
		if err != nil {
			fmt.Println("Pattern must be five of g/y/- (digits 2/1/0 also work)")
			continue
		}
		return fb, true
	}
}
