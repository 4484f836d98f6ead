package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Joeltronics/wordlebot/internal/bench"
	"github.com/Joeltronics/wordlebot/internal/solver"
	"github.com/Joeltronics/wordlebot/internal/storage"
)

// runBench self-plays the sampled solution list and prints the aggregate.
// With --compare it also runs the default parameters over the same sample.
// Results persist to SQLite when a database path is configured.
func runBench(cmd *cobra.Command, args []string) {
	dbPath := flagDB
	if dbPath == "" {
		dbPath = os.Getenv("BENCH_DB_PATH")
	}

	if flagHistory > 0 {
		printBenchHistory(dbPath)
		return
	}

	lists, err := loadLists()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	// Games parallelize across the pool; each game's scorer stays serial.
	params := engineParams()
	params.Workers = 1

	opts := bench.Options{
		Limit:       flagLimit,
		SampleEvery: flagSampleEvery,
		Workers:     flagBenchWorkers,
		Agnostic:    flagAgnostic,
		Progress:    true,
	}
	ctx := cmd.Context()

	var st *storage.Store
	if dbPath != "" {
		if st, err = storage.Open(dbPath); err != nil {
			log.Fatal().Err(err).Str("path", dbPath).Msg("failed to open bench database")
		}
		defer st.Close()
	}

	if flagCompare {
		base := solver.DefaultParams()
		base.Workers = 1
		a, b, err := bench.Compare(ctx, lists, base, params, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("bench failed")
		}
		if flagLabel != "" {
			a.Label = flagLabel + " baseline"
			b.Label = flagLabel + " variant"
		}
		fmt.Print(a.Format())
		fmt.Println()
		fmt.Print(b.Format())
		fmt.Println()
		fmt.Printf("delta (variant vs baseline): mean %+.2f, solved %+d, time %s vs %s\n",
			b.Mean-a.Mean, b.Solved-a.Solved,
			b.Duration.Round(time.Millisecond), a.Duration.Round(time.Millisecond))
		saveRun(st, a)
		saveRun(st, b)
		return
	}

	sum, err := bench.Run(ctx, lists, params, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("bench failed")
	}
	sum.Label = flagLabel
	fmt.Print(sum.Format())
	saveRun(st, sum)
}

// saveRun persists one summary with its per-game rows. A nil store means
// persistence is off.
func saveRun(st *storage.Store, s *bench.Summary) {
	if st == nil {
		return
	}
	paramsJSON, err := json.Marshal(s.Params)
	if err != nil {
		log.Error().Err(err).Msg("marshal params")
		return
	}
	run := storage.RunRecord{
		Label:       s.Label,
		ParamsJSON:  string(paramsJSON),
		Games:       s.Games,
		Solved:      s.Solved,
		MeanGuesses: s.Mean,
		MaxGuesses:  s.Max,
		Duration:    s.Duration,
	}
	games := make([]storage.GameRecord, 0, len(s.Results))
	for _, r := range s.Results {
		games = append(games, storage.GameRecord{
			Solution: r.Solution,
			Guesses:  r.Guesses,
			Solved:   r.Solved(),
			Duration: r.Duration,
		})
	}
	id, err := st.SaveRun(context.Background(), run, games)
	if err != nil {
		log.Error().Err(err).Msg("save bench run")
		return
	}
	fmt.Printf("saved run %d\n", id)
}

// printBenchHistory lists recent saved runs, newest first.
func printBenchHistory(dbPath string) {
	if dbPath == "" {
		log.Fatal().Msg("--history needs --db or BENCH_DB_PATH")
	}
	st, err := storage.Open(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("failed to open bench database")
	}
	defer st.Close()

	runs, err := st.ListRuns(context.Background(), flagHistory)
	if err != nil {
		log.Fatal().Err(err).Msg("list runs")
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return
	}
	for _, r := range runs {
		label := r.Label
		if label == "" {
			label = "-"
		}
		fmt.Printf("#%-4d %s  %-24s games %4d  solved %4d  mean %.2f  max %d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), label,
			r.Games, r.Solved, r.MeanGuesses, r.MaxGuesses,
			r.Duration.Round(time.Millisecond))
	}
}
