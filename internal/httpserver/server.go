// internal/httpserver/server.go
//
// HTTP service wiring for the solver and game sessions.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON content type, zerolog request logging).
//   - Diagnostics: "/", "/health", "/api/words/stats".
//   - Suggestion endpoint: POST /api/suggest.
//   - Session endpoints: POST /api/games, GET /api/games/{id},
//     POST /api/games/{id}/guess.
//
// Notes:
//   - Sessions live in the store package; the answer never appears in a
//     response until the session is finished.
//   - Solver parameters are fixed at construction; clients cannot tune them.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Joeltronics/wordlebot/internal/solver"
	"github.com/Joeltronics/wordlebot/internal/store"
	"github.com/Joeltronics/wordlebot/internal/words"
)

// Server bundles the router, session store, word lists, and solver params.
type Server struct {
	r      *chi.Mux
	store  store.Store
	lists  *words.Lists
	params solver.Params
}

// New constructs a Server, installs middleware, and registers routes.
func New(lists *words.Lists, st store.Store, params solver.Params) *Server {
	s := &Server{r: chi.NewRouter(), store: st, lists: lists, params: params}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(requestLogger)                   // structured access log

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordlebot","endpoints":["/health","/api/words/stats","POST /api/suggest","POST /api/games","GET /api/games/{id}","POST /api/games/{id}/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/api/words/stats", s.handleWordStats)

	// --- solver + sessions ---
	s.r.Post("/api/suggest", s.handleSuggest)
	s.r.Route("/api/games", func(games chi.Router) {
		games.Post("/", s.handleNewGame)
		games.Get("/{id}", s.handleGetGame)
		games.Post("/{id}/guess", s.handleGuess)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("reqId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------ helpers ------------------------------------

// writeErr sends a JSON error body with the given status.
func writeErr(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeJSON sends a 200 JSON body.
func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

// handleWordStats reports the loaded list sizes.
func (s *Server) handleWordStats(w http.ResponseWriter, r *http.Request) {
	solutions, extra, total := s.lists.Stats()
	writeJSON(w, map[string]int{
		"solutions": solutions,
		"extra":     extra,
		"total":     total,
	})
}
