// internal/httpserver/routes_game.go
//
// HTTP routes for the solver and game sessions.
//   - POST /api/suggest          → recommend the next guess for a history
//   - POST /api/games            → start a session (random, fixed, or daily answer)
//   - GET  /api/games/{id}       → session state
//   - POST /api/games/{id}/guess → play a guess, optionally with a follow-up suggestion
//
// Sessions are held in the store; all mutation goes through Session.Update
// so concurrent guesses serialize. Responses only reveal the answer once a
// session is finished.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Joeltronics/wordlebot/internal/daily"
	"github.com/Joeltronics/wordlebot/internal/game"
	"github.com/Joeltronics/wordlebot/internal/solver"
	"github.com/Joeltronics/wordlebot/internal/store"
	"github.com/Joeltronics/wordlebot/internal/wordle"
)

// -----------------------------------------------------------------------------
// POST /api/suggest

// suggestReq carries a played history; feedback uses the g/y/- pattern
// syntax also accepted on the CLI.
type suggestReq struct {
	History []struct {
		Guess    string `json:"guess"`
		Feedback string `json:"feedback"`
	} `json:"history"`
	Agnostic bool `json:"agnostic"`
}

// handleSuggest runs the selector over the posted history.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}

	history := make([]wordle.Guess, 0, len(req.History))
	for _, h := range req.History {
		word, err := wordle.ParseWord(h.Guess)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		fb, err := wordle.ParseFeedback(h.Feedback)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		history = append(history, wordle.Guess{Word: word, Feedback: fb})
	}

	solutionSeed := s.lists.Solutions
	if req.Agnostic {
		solutionSeed = s.lists.All
	}
	res, err := solver.SelectGuess(history, s.lists.All, solutionSeed, s.params)
	switch {
	case errors.Is(err, solver.ErrInconsistentFeedback), errors.Is(err, solver.ErrNoCandidates):
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Msg("suggest")
		writeErr(w, http.StatusInternalServerError, "suggest_failed")
		return
	}
	writeJSON(w, res)
}

// -----------------------------------------------------------------------------
// POST /api/games

// newGameReq starts a session. Solution and daily are mutually exclusive;
// with neither, a random solution is drawn.
type newGameReq struct {
	Solution string `json:"solution"`
	Daily    bool   `json:"daily"`
	Agnostic bool   `json:"agnostic"`
}

type newGameRes struct {
	ID       string `json:"id"`
	MaxTurns int    `json:"maxTurns"`
}

// handleNewGame creates a session and stores it. The answer stays
// server-side.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Solution != "" && req.Daily {
		writeErr(w, http.StatusBadRequest, "solution and daily are mutually exclusive")
		return
	}

	opts := game.Options{Agnostic: req.Agnostic}
	if req.Daily {
		opts.Answer = daily.Word(time.Now(), s.lists.Solutions)
	} else if req.Solution != "" {
		opts.Answer = wordle.Word(req.Solution)
	}

	g, err := game.New(s.lists, opts)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), store.NewSession(g)); err != nil {
		log.Error().Err(err).Msg("save session")
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, newGameRes{ID: g.ID, MaxTurns: g.MaxTurns})
}

// -----------------------------------------------------------------------------
// POST /api/games/{id}/guess

type guessReq struct {
	Word    string `json:"word"`
	Suggest bool   `json:"suggest"` // include a follow-up recommendation
}

type guessRes struct {
	Feedback   string         `json:"feedback"`
	Status     game.Status    `json:"status"`
	Turn       int            `json:"turn"` // 1-based turn just played
	Remaining  int            `json:"remaining"`
	Answer     string         `json:"answer,omitempty"` // only once finished
	Suggestion *solver.Result `json:"suggestion,omitempty"`
}

// handleGuess applies one guess to a stored session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "store_failed")
		return
	}

	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res guessRes
	err = sess.Update(func(g *game.Game) error {
		scored, status, err := g.ApplyGuess(req.Word)
		if err != nil {
			return err
		}
		res = guessRes{
			Feedback:  scored.Feedback.String(),
			Status:    status,
			Turn:      len(g.Guesses),
			Remaining: g.Remaining(),
		}
		if g.Finished {
			res.Answer = string(g.Answer)
		} else if req.Suggest {
			res.Suggestion = s.suggestFor(g)
		}
		return nil
	})
	switch {
	case errors.Is(err, game.ErrFinished):
		writeErr(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, res)
}

// suggestFor recommends a next guess from a session's remaining pool.
// Best effort: a nil result just omits the field.
func (s *Server) suggestFor(g *game.Game) *solver.Result {
	res, err := solver.SelectGuess(g.Guesses, g.Lists().All, g.Possible(), s.params)
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("suggestion failed")
		return nil
	}
	return &res
}

// -----------------------------------------------------------------------------
// GET /api/games/{id}

type historyRes struct {
	Word     string `json:"word"`
	Feedback string `json:"feedback"`
}

type gameStateRes struct {
	ID        string       `json:"id"`
	Status    game.Status  `json:"status"`
	Turn      int          `json:"turn"` // guesses played so far
	MaxTurns  int          `json:"maxTurns"`
	Guesses   []historyRes `json:"guesses"`
	Remaining int          `json:"remaining"`
	Answer    string       `json:"answer,omitempty"` // only once finished
}

// handleGetGame reports the full session state.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "store_failed")
		return
	}

	var res gameStateRes
	_ = sess.Update(func(g *game.Game) error {
		res = gameStateRes{
			ID:        g.ID,
			Status:    g.Status(),
			Turn:      len(g.Guesses),
			MaxTurns:  g.MaxTurns,
			Guesses:   make([]historyRes, 0, len(g.Guesses)),
			Remaining: g.Remaining(),
		}
		for _, entry := range g.Guesses {
			res.Guesses = append(res.Guesses, historyRes{Word: string(entry.Word), Feedback: entry.Feedback.String()})
		}
		if g.Finished {
			res.Answer = string(g.Answer)
		}
		return nil
	})
	writeJSON(w, res)
}
