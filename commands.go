package main

import (
	"github.com/spf13/cobra"

	"github.com/Joeltronics/wordlebot/internal/solver"
	"github.com/Joeltronics/wordlebot/internal/words"
)

// --- Flag variables ---
var (
	// root
	flagSolutionsFile string
	flagAllowedFile   string
	flagLogLevel      string

	// engine knobs (registered per command that runs the solver)
	flagDepth          int
	flagRecursionLimit int
	flagPruneGuesses   int
	flagPruneSolutions int
	flagWorkers        int
	flagAgnostic       bool

	// play
	flagSolution string
	flagDaily    bool
	flagCheat    bool
	flagAuto     bool
	flagEndless  bool
	flagGuesses  []string
	flagAllWords bool

	// bench
	flagLimit        int
	flagSampleEvery  int
	flagBenchWorkers int
	flagDB           string
	flagLabel        string
	flagCompare      bool
	flagHistory      int

	// serve
	flagPort string
)

// --- Commands ---
var (
	rootCmd = &cobra.Command{
		Use:   "wordlebot",
		Short: "Wordle engine: play, assist, suggest, benchmark, serve",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyLogLevel()
		},
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		Run:   runPlay, // cmd_play.go
	}

	assistCmd = &cobra.Command{
		Use:   "assist",
		Short: "Relay a game you are playing elsewhere and get recommendations",
		Run:   runAssist, // cmd_assist.go
	}

	suggestCmd = &cobra.Command{
		Use:   "suggest [word=pattern ...]",
		Short: "Recommend the next guess for a played history",
		Long: `Recommend the next guess for a played history.

Each argument is one played guess and the pattern it earned, for example
crane=--y-g: 'g' or '2' green, 'y' or '1' yellow, '-' or '0' grey. With
no arguments the opening guess is recommended.`,
		Args: cobra.ArbitraryArgs,
		Run:  runSuggest, // cmd_suggest.go
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the solver by self-playing the solution list",
		Run:   runBench, // cmd_bench.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Run:   runServe, // cmd_serve.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSolutionsFile, "solutions-file", "",
		"Path to a solutions word list (default: WORDS_SOLUTIONS_FILE or the embedded list)")
	rootCmd.PersistentFlags().StringVar(&flagAllowedFile, "allowed-file", "",
		"Path to an extra allowed-guesses word list (default: WORDS_ALLOWED_FILE or the embedded list)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error (default: LOG_LEVEL or info)")

	rootCmd.AddCommand(playCmd)
	addEngineFlags(playCmd, true)
	addAgnosticFlag(playCmd)
	playCmd.Flags().StringVarP(&flagSolution, "solution", "s", "", "Play against a specific solution word")
	playCmd.Flags().BoolVar(&flagDaily, "daily", false, "Play today's deterministic daily word")
	playCmd.Flags().BoolVar(&flagCheat, "cheat", false, "Show the solution up front")
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Let the solver play by itself")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Keep guessing past six turns until solved")
	playCmd.Flags().StringArrayVar(&flagGuesses, "guess", nil, "Force a guess for the next turn (repeatable)")
	playCmd.Flags().BoolVar(&flagAllWords, "all-words", false, "Pick the answer from the full allowed list, not just curated solutions")

	rootCmd.AddCommand(assistCmd)
	addEngineFlags(assistCmd, true)
	addAgnosticFlag(assistCmd)
	assistCmd.Flags().BoolVar(&flagEndless, "endless", false, "Keep tracking past six turns")

	rootCmd.AddCommand(suggestCmd)
	addEngineFlags(suggestCmd, true)
	addAgnosticFlag(suggestCmd)

	rootCmd.AddCommand(benchCmd)
	addEngineFlags(benchCmd, false)
	addAgnosticFlag(benchCmd)
	benchCmd.Flags().IntVar(&flagLimit, "limit", 0, "Play only the first N sampled solutions (0 = all)")
	benchCmd.Flags().IntVar(&flagSampleEvery, "sample-every", 0, "Play every Nth solution")
	benchCmd.Flags().IntVar(&flagBenchWorkers, "workers", 0, "Concurrent games (0 = GOMAXPROCS)")
	benchCmd.Flags().StringVar(&flagDB, "db", "", "SQLite path to persist results (default: BENCH_DB_PATH)")
	benchCmd.Flags().StringVar(&flagLabel, "label", "", "Label for the saved run")
	benchCmd.Flags().BoolVar(&flagCompare, "compare", false, "Also run default parameters over the same sample and print the delta")
	benchCmd.Flags().IntVar(&flagHistory, "history", 0, "Print the last N saved runs instead of benchmarking")

	rootCmd.AddCommand(serveCmd)
	addEngineFlags(serveCmd, true)
	serveCmd.Flags().StringVarP(&flagPort, "port", "p", "", "Listen port (default: PORT or 5175)")
}

// addEngineFlags registers the solver knobs on a command. Bench drives
// its own game-level worker pool, so it skips the scorer's workers flag.
func addEngineFlags(cmd *cobra.Command, withWorkers bool) {
	d := solver.DefaultParams()
	cmd.Flags().IntVar(&flagDepth, "depth", d.MaxDepth, "Recursive look-ahead depth")
	cmd.Flags().IntVar(&flagRecursionLimit, "recursion-threshold", d.RecursionLimit,
		"Run the recursive scorer only at or below this many remaining solutions")
	cmd.Flags().IntVar(&flagPruneGuesses, "prune-guesses", d.GuessPoolTarget,
		"Guess candidates kept when the guess pool is pruned")
	cmd.Flags().IntVar(&flagPruneSolutions, "prune-solutions", d.SolutionPoolTarget,
		"Approximate solutions kept when the solution pool is pruned")
	if withWorkers {
		cmd.Flags().IntVar(&flagWorkers, "workers", d.Workers, "Parallel scoring goroutines (0 = GOMAXPROCS)")
	}
}

// addAgnosticFlag registers the shared pool-choice flag.
func addAgnosticFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagAgnostic, "agnostic", false,
		"Treat every allowed word as a possible answer, ignoring the curated solutions list")
}

// engineParams folds the knob flags into solver parameters.
func engineParams() solver.Params {
	p := solver.DefaultParams()
	p.MaxDepth = flagDepth
	p.RecursionLimit = flagRecursionLimit
	p.GuessPoolTarget = flagPruneGuesses
	p.SolutionPoolTarget = flagPruneSolutions
	p.Workers = flagWorkers
	return p
}

// loadLists loads the word lists honoring the root flags; the words
// package itself falls back to environment paths and embedded defaults.
func loadLists() (*words.Lists, error) {
	return words.Load(words.Options{
		SolutionsPath: flagSolutionsFile,
		AllowedPath:   flagAllowedFile,
	})
}
