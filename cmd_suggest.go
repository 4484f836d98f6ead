package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Joeltronics/wordlebot/internal/solver"
	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// runSuggest prints a one-shot recommendation for the history given as
// word=pattern arguments.
func runSuggest(cmd *cobra.Command, args []string) {
	lists, err := loadLists()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	history := make([]wordle.Guess, 0, len(args))
	for _, arg := range args {
		word, pattern, found := strings.Cut(arg, "=")
		if !found {
			log.Fatal().Str("arg", arg).Msg("history entries look like word=pattern, e.g. crane=--y-g")
		}
		w, err := wordle.ParseWord(word)
		if err != nil {
			log.Fatal().Err(err).Str("arg", arg).Msg("bad guess word")
		}
		fb, err := wordle.ParseFeedback(pattern)
		if err != nil {
			log.Fatal().Err(err).Str("arg", arg).Msg("bad result pattern")
		}
		history = append(history, wordle.Guess{Word: w, Feedback: fb})
	}

	seed := lists.Solutions
	if flagAgnostic {
		seed = lists.All
	}
	res, err := solver.SelectGuess(history, lists.All, seed, engineParams())
	if err != nil {
		log.Fatal().Err(err).Msg("no suggestion")
	}

	fmt.Printf("word:      %s\n", res.Word)
	fmt.Printf("method:    %s\n", res.Method)
	fmt.Printf("score:     %.3f\n", res.Score)
	fmt.Printf("evaluated: %d\n", res.Evaluated)
	fmt.Printf("remaining: %d\n", res.Remaining)
}
