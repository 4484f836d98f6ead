// internal/storage/storage.go
//
// SQLite persistence for benchmark results.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded schema (idempotent, recorded in _migrations).
//   - Saving benchmark runs with their per-game rows and reading them back.
//
// Note: This file assumes SQLite but can be adapted for other backends.

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// migrations are applied in order and recorded by name, so new entries
// can be appended without touching existing databases.
var migrations = []struct {
	name string
	sql  string
}{
	{
		name: "0001_bench_tables",
		sql: `
CREATE TABLE IF NOT EXISTS bench_runs (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    label        TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    params       TEXT NOT NULL,
    games        INTEGER NOT NULL,
    solved       INTEGER NOT NULL,
    mean_guesses REAL NOT NULL,
    max_guesses  INTEGER NOT NULL,
    duration_ms  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bench_games (
    run_id      INTEGER NOT NULL REFERENCES bench_runs(id) ON DELETE CASCADE,
    solution    TEXT NOT NULL,
    guesses     INTEGER NOT NULL,
    solved      INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bench_games_run ON bench_games(run_id);
`,
	},
}

/**
 * RunRecord is one benchmark run: the aggregate row in bench_runs.
 * ParamsJSON holds the solver parameters the run used, as JSON, so runs
 * stay comparable after parameter defaults change.
 */
type RunRecord struct {
	ID          int64
	Label       string
	CreatedAt   time.Time
	ParamsJSON  string
	Games       int
	Solved      int
	MeanGuesses float64
	MaxGuesses  int
	Duration    time.Duration
}

/** GameRecord is one played solution within a run. */
type GameRecord struct {
	RunID    int64
	Solution wordle.Word
	Guesses  int
	Solved   bool
	Duration time.Duration
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

/**
 * Open opens (and creates if missing) the results database.
 *
 * - Ensures the parent directory exists for relative paths (e.g. ./data/bench.db).
 * - Configures busy timeout and WAL journaling mode.
 * - Enforces foreign keys.
 * - Applies any pending migrations.
 */
func Open(path string) (*Store, error) {
	// Ensure directory exists for ./data/bench.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// Open DB with busy timeout and WAL journaling.
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// Explicitly enforce foreign keys + WAL.
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

/**
 * migrate applies the embedded migrations.
 *
 * - Uses a _migrations table to track applied entries.
 * - Each entry runs inside its own transaction.
 * - Already-applied entries are skipped.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	for _, m := range migrations {
		// Skip if already applied
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.name).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}

/**
 * SaveRun inserts a run and its game rows in one transaction.
 *
 * @returns The new run id.
 */
func (s *Store) SaveRun(ctx context.Context, run RunRecord, games []GameRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `
        INSERT INTO bench_runs
            (label, params, games, solved, mean_guesses, max_guesses, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Label, run.ParamsJSON, run.Games, run.Solved,
		run.MeanGuesses, run.MaxGuesses, run.Duration.Milliseconds(),
	)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	for _, g := range games {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO bench_games (run_id, solution, guesses, solved, duration_ms)
            VALUES (?, ?, ?, ?, ?)`,
			id, string(g.Solution), g.Guesses, g.Solved, g.Duration.Milliseconds(),
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert game %s: %w", g.Solution, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

/**
 * ListRuns fetches the most recent runs, newest first.
 * Default limit is 20 if not specified.
 */
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, label, created_at, params, games, solved, mean_guesses, max_guesses, duration_ms
        FROM bench_runs
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunRecord, 0, limit)
	for rows.Next() {
		var (
			r  RunRecord
			ms int64
		)
		if err := rows.Scan(&r.ID, &r.Label, &r.CreatedAt, &r.ParamsJSON,
			&r.Games, &r.Solved, &r.MeanGuesses, &r.MaxGuesses, &ms); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

/**
 * RunGames fetches the per-game rows for a run, in insertion order.
 */
func (s *Store) RunGames(ctx context.Context, runID int64) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT run_id, solution, guesses, solved, duration_ms
        FROM bench_games
        WHERE run_id=?
        ORDER BY rowid`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var (
			g        GameRecord
			solution string
			ms       int64
		)
		if err := rows.Scan(&g.RunID, &solution, &g.Guesses, &g.Solved, &ms); err != nil {
			return nil, err
		}
		g.Solution = wordle.Word(solution)
		g.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, g)
	}
	return out, rows.Err()
}
