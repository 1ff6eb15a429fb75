// apps/go-server/internal/httpserver/routes_challenges.go
//
// HTTP routes for playable challenges, mounted under /challenges:
//   - GET  /challenges         → all stored challenges, seeded ones first
//   - GET  /challenges/daily   → today's challenge (routes_daily.go)
//   - GET  /challenges/{id}    → one challenge with its solutions
//   - POST /challenges/random  → generate, solve, and store a random grid
//
// Random challenges are stored so POST /game/new can start a session on
// them; they are excluded from the daily rotation.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

// defaultRandomSize is used when POST /challenges/random omits size.
const defaultRandomSize = 4

// mountChallenges registers all /challenges routes.
func (s *Server) mountChallenges(r chi.Router) {
	r.Route("/challenges", func(r chi.Router) {
		r.Get("/", s.handleListChallenges)
		r.Get("/daily", s.handleDaily)
		r.Post("/random", s.handleRandomChallenge)
		r.Get("/{id}", s.handleGetChallenge)
	})
}

// listRes wraps the challenge list so the payload can grow fields later.
type listRes struct {
	Challenges []*game.Challenge `json:"challenges"`
}

func (s *Server) handleListChallenges(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListChallenges(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list challenges")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*game.Challenge{}
	}
	_ = json.NewEncoder(w).Encode(listRes{Challenges: list})
}

func (s *Server) handleGetChallenge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := s.store.GetChallenge(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"challenge_not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("challengeId", id).Msg("get challenge")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(c)
}

// randomReq payload for POST /challenges/random.
type randomReq struct {
	Size int `json:"size"`
}

// handleRandomChallenge builds a size×size challenge from the loaded
// dictionary and stores it. An empty body means the default size.
func (s *Server) handleRandomChallenge(w http.ResponseWriter, r *http.Request) {
	req := randomReq{Size: defaultRandomSize}
	if err := decode(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Size < 1 || req.Size > s.cfg.MaxGridSize {
		http.Error(w, `{"error":"bad_size","max":`+strconv.Itoa(s.cfg.MaxGridSize)+`}`, http.StatusBadRequest)
		return
	}

	c := game.NewRandomChallenge(req.Size, words.Dictionary())
	if err := s.store.SaveChallenge(r.Context(), c); err != nil {
		log.Error().Err(err).Msg("save challenge")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("challengeId", c.ID).Int("size", req.Size).Int("solutions", len(c.Solutions)).Msg("random challenge")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}
