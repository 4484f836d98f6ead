// internal/httpserver/server_test.go

package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joeltronics/wordlebot/internal/solver"
	"github.com/Joeltronics/wordlebot/internal/store"
	"github.com/Joeltronics/wordlebot/internal/words"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// newTestServer builds a Server over a seven-word dictionary so the
// solver paths stay fast and the expected pools are easy to reason about.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	sol := filepath.Join(dir, "solutions.txt")
	extra := filepath.Join(dir, "extra.txt")
	require.NoError(t, os.WriteFile(sol, []byte("crane\nslate\nplate\ngrate\nmount\nbloke\nbrook\n"), 0o644))
	require.NoError(t, os.WriteFile(extra, []byte("adieu\nroate\n"), 0o644))

	lists, err := words.Load(words.Options{SolutionsPath: sol, AllowedPath: extra})
	require.NoError(t, err)
	return New(lists, store.NewMemoryStore(), solver.DefaultParams())
}

// doJSON performs a request against the router and returns the recorder.
func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded body into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestWordStats(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/words/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]int
	decode(t, rec, &stats)
	assert.Equal(t, 7, stats["solutions"])
	assert.Equal(t, 2, stats["extra"])
	assert.Equal(t, 9, stats["total"])
}

func TestUnknownRouteIsJSON(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
}

func TestSuggest_EmptyHistory(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/suggest", map[string]any{})

	require.Equal(t, http.StatusOK, rec.Code)
	var res solver.Result
	decode(t, rec, &res)
	assert.True(t, s.lists.IsAllowed(res.Word))
	assert.Equal(t, 7, res.Remaining)
}

func TestSuggest_NarrowedHistory(t *testing.T) {
	s := newTestServer(t)
	// grate → --ggg leaves slate and plate.
	body := map[string]any{
		"history": []map[string]string{{"guess": "grate", "feedback": "--ggg"}},
	}
	rec := doJSON(t, s, http.MethodPost, "/api/suggest", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var res solver.Result
	decode(t, rec, &res)
	assert.Equal(t, 2, res.Remaining)
	assert.True(t, s.lists.IsAllowed(res.Word))
}

func TestSuggest_BadPattern(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{
		"history": []map[string]string{{"guess": "crane", "feedback": "xxxxx"}},
	}
	rec := doJSON(t, s, http.MethodPost, "/api/suggest", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggest_InconsistentHistory(t *testing.T) {
	s := newTestServer(t)
	// Every solution shares a letter with crane, so all-absent is impossible.
	body := map[string]any{
		"history": []map[string]string{{"guess": "crane", "feedback": "-----"}},
	}
	rec := doJSON(t, s, http.MethodPost, "/api/suggest", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGameLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/games", map[string]any{"solution": "crane"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created newGameRes
	decode(t, rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 6, created.MaxTurns)

	guessPath := fmt.Sprintf("/api/games/%s/guess", created.ID)

	rec = doJSON(t, s, http.MethodPost, guessPath, map[string]any{"word": "slate"})
	require.Equal(t, http.StatusOK, rec.Code)
	var first guessRes
	decode(t, rec, &first)
	assert.Equal(t, "--g-g", first.Feedback)
	assert.EqualValues(t, "playing", first.Status)
	assert.Equal(t, 1, first.Turn)
	assert.Equal(t, 1, first.Remaining)
	assert.Empty(t, first.Answer)

	rec = doJSON(t, s, http.MethodPost, guessPath, map[string]any{"word": "crane"})
	require.Equal(t, http.StatusOK, rec.Code)
	var winning guessRes
	decode(t, rec, &winning)
	assert.Equal(t, "ggggg", winning.Feedback)
	assert.EqualValues(t, "won", winning.Status)
	assert.Equal(t, 2, winning.Turn)
	assert.Equal(t, "crane", winning.Answer)

	// Finished sessions reject further guesses.
	rec = doJSON(t, s, http.MethodPost, guessPath, map[string]any{"word": "mount"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGuess_WithSuggestion(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/games", map[string]any{"solution": "crane"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created newGameRes
	decode(t, rec, &created)

	// grate → -gg-g leaves only crane, so the follow-up is forced.
	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/games/%s/guess", created.ID),
		map[string]any{"word": "grate", "suggest": true})
	require.Equal(t, http.StatusOK, rec.Code)
	var res guessRes
	decode(t, rec, &res)
	assert.Equal(t, "-gg-g", res.Feedback)
	require.NotNil(t, res.Suggestion)
	assert.EqualValues(t, "crane", res.Suggestion.Word)
	assert.Equal(t, solver.MethodOnlyOption, res.Suggestion.Method)
}

func TestGuess_RejectsUnknownWord(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/games", map[string]any{"solution": "crane"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created newGameRes
	decode(t, rec, &created)

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/games/%s/guess", created.ID),
		map[string]any{"word": "zzzzz"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuess_UnknownSession(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/games/deadbeef/guess", map[string]any{"word": "crane"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewGame_SolutionAndDailyConflict(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/games", map[string]any{"solution": "crane", "daily": true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewGame_RejectsUnknownSolution(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/games", map[string]any{"solution": "zzzzz"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewGame_Daily(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/games", map[string]any{"daily": true})
	require.Equal(t, http.StatusOK, rec.Code)
	var created newGameRes
	decode(t, rec, &created)
	assert.NotEmpty(t, created.ID)
}

func TestGetGame_HidesAnswerUntilFinished(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/games", map[string]any{"solution": "crane"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created newGameRes
	decode(t, rec, &created)
	statePath := "/api/games/" + created.ID
	guessPath := statePath + "/guess"

	rec = doJSON(t, s, http.MethodPost, guessPath, map[string]any{"word": "mount"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, statePath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state gameStateRes
	decode(t, rec, &state)
	assert.EqualValues(t, "playing", state.Status)
	assert.Equal(t, 1, state.Turn)
	assert.Equal(t, 6, state.MaxTurns)
	require.Len(t, state.Guesses, 1)
	assert.Equal(t, "mount", state.Guesses[0].Word)
	assert.NotContains(t, rec.Body.String(), "crane")

	// Burn the remaining turns to lose, then the answer is revealed.
	for i := 0; i < 5; i++ {
		rec = doJSON(t, s, http.MethodPost, guessPath, map[string]any{"word": "bloke"})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, statePath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &state)
	assert.EqualValues(t, "lost", state.Status)
	assert.Equal(t, 6, state.Turn)
	assert.Equal(t, "crane", state.Answer)
}

func TestGetGame_UnknownSession(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/games/deadbeef", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSuggest_BadJSON(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/suggest", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
