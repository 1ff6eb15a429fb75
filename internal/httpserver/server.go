// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the Boggle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, panic recovery, request IDs; timeouts
//     on store-backed routes).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoint: POST /solve.
//   - Challenge endpoints: mounted under /challenges (routes_challenges.go, routes_daily.go).
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/end.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled for the configured client.
//   - The solver cannot be cancelled once started, so /solve bounds its input
//     (grid side and dictionary length) before calling it.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/boggle"
	"github.com/robalobadob/boggle/apps/go-server/internal/config"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

// maxBodyBytes caps request bodies; a full-size custom dictionary fits comfortably.
const maxBodyBytes = 8 << 20

// Server bundles router, persistence, and configuration.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   *config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg *config.Config) *Server {
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)        // add X-Request-ID
	s.r.Use(chimw.RealIP)           // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)        // recover from panics
	s.r.Use(jsonContentType)        // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin)) // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"boggle-go","endpoints":["/health","POST /solve","/challenges","POST /game/new","POST /game/guess","POST /game/end"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// No Timeout here: Solve cannot be interrupted, so a late 504 would only
	// follow a body already written. MAX_GRID_SIZE and MAX_DICTIONARY_WORDS bound it.
	s.r.Post("/solve", s.handleSolve)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time

		// Challenges: list/get/random plus the daily pick
		s.mountChallenges(r)

		r.Post("/game/new", s.handleNewGame)
		r.Post("/game/guess", s.handleGuess)
		r.Post("/game/end", s.handleEndGame)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: word list size, plus a lookup when ?word= is given
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		res := map[string]any{"dictionary": words.Stats()}
		if q := r.URL.Query().Get("word"); q != "" {
			res["word"] = words.Normalize(q)
			res["known"] = words.IsWord(q)
		}
		_ = json.NewEncoder(w).Encode(res)
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

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// decode reads a JSON body into v, capped at maxBodyBytes.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// ------------------------------ SOLVE --------------------------------------

// solveReq/Res payloads for POST /solve.
type solveReq struct {
	Grid       game.Grid `json:"grid"`
	Dictionary []string  `json:"dictionary"` // optional; defaults to the loaded word list
}
type solveRes struct {
	Words []string `json:"words"`
}

// handleSolve runs the solver on a caller-supplied grid.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := decode(w, r, &req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if err := s.checkGrid(req.Grid); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	dict := req.Dictionary
	if dict == nil {
		dict = words.Dictionary()
	}
	if len(dict) > s.cfg.MaxDictionaryWords {
		http.Error(w, `{"error":"dictionary_too_large","max":`+strconv.Itoa(s.cfg.MaxDictionaryWords)+`}`, http.StatusBadRequest)
		return
	}

	start := time.Now()
	found := boggle.Solve(req.Grid, dict)
	log.Debug().Int("rows", len(req.Grid)).Int("dictionary", len(dict)).Int("found", len(found)).
		Dur("elapsed", time.Since(start)).Msg("solve")
	_ = json.NewEncoder(w).Encode(solveRes{Words: found})
}

var (
	errGridTooLarge = errors.New("grid_too_large")
	errGridRagged   = errors.New("grid_not_rectangular")
	errEmptyTile    = errors.New("grid_empty_tile")
)

// checkGrid enforces the configured size limit, a rectangular shape and
// non-blank tiles. A blank tile (JSON null or "") would let a word skip a
// cell. An empty grid is allowed (it solves to nothing).
func (s *Server) checkGrid(g game.Grid) error {
	if len(g) > s.cfg.MaxGridSize {
		return errGridTooLarge
	}
	for _, row := range g {
		if len(row) > s.cfg.MaxGridSize {
			return errGridTooLarge
		}
		if len(row) != len(g[0]) {
			return errGridRagged
		}
		for _, tile := range row {
			if strings.TrimSpace(tile) == "" {
				return errEmptyTile
			}
		}
	}
	return nil
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	ChallengeID string `json:"challengeId"`
}
type newGameRes struct {
	GameID string `json:"gameId"`
}

// handleNewGame starts a session on a stored challenge.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(w, r, &req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	c, err := s.store.GetChallenge(r.Context(), req.ChallengeID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"challenge_not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("challengeId", req.ChallengeID).Msg("get challenge")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return
	}

	sess := game.NewSession(c)
	if err := s.store.SaveSession(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Result game.GuessResult `json:"result"` // "correct" | "already_found" | "invalid"
	Found  []string         `json:"found"`
}

// handleGuess applies a guess and persists progress.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(w, r, &req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, ok := s.loadSession(w, r, req.GameID)
	if !ok {
		return
	}

	result, err := sess.ApplyGuess(req.Guess)
	switch {
	case errors.Is(err, game.ErrFinished):
		http.Error(w, `{"error":"game_finished"}`, http.StatusConflict)
		return
	case errors.Is(err, game.ErrEmptyGuess):
		http.Error(w, `{"error":"empty_guess"}`, http.StatusBadRequest)
		return
	}

	if result == game.GuessCorrect {
		if err := s.store.SaveSession(r.Context(), sess); err != nil {
			log.Error().Err(err).Str("gameId", sess.ID).Msg("save session")
			http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
			return
		}
	}
	_ = json.NewEncoder(w).Encode(guessRes{Result: result, Found: sess.FoundWords()})
}

// endReq payload for POST /game/end; the response is a game.Summary.
type endReq struct {
	GameID string `json:"gameId"`
}

// handleEndGame finishes a session and reports found/missed words.
// Ending twice returns the same summary.
func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	var req endReq
	if err := decode(w, r, &req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, ok := s.loadSession(w, r, req.GameID)
	if !ok {
		return
	}

	sum := sess.End()
	if err := s.store.SaveSession(r.Context(), sess); err != nil {
		log.Error().Err(err).Str("gameId", sess.ID).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("gameId", sess.ID).Int("found", sum.FoundCount).Int("total", sum.TotalWords).Msg("game ended")
	_ = json.NewEncoder(w).Encode(sum)
}

// loadSession fetches a session or writes the error response.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request, id string) (*game.Session, bool) {
	sess, err := s.store.GetSession(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("get session")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}
