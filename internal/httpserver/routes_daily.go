// apps/go-server/internal/httpserver/routes_daily.go
//
// GET /challenges/daily: the "challenge of the day".
// Selection is deterministic on date + salt over the seeded challenges
// (random ones excluded), so every instance serves the same grid.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/daily"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
)

// now is swapped in tests.
var now = time.Now

// dailyRes is returned by /challenges/daily.
type dailyRes struct {
	Date      string          `json:"date"`
	Challenge *game.Challenge `json:"challenge"`
}

// handleDaily picks today's challenge from the stored, non-random set.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListChallenges(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list challenges")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return
	}
	pool := list[:0:0]
	for _, c := range list {
		if c.Difficulty != game.DifficultyRandom {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		http.Error(w, `{"error":"no_challenges"}`, http.StatusNotFound)
		return
	}

	today := now().UTC()
	idx := daily.Index(today, s.cfg.DailySalt, len(pool))
	_ = json.NewEncoder(w).Encode(dailyRes{Date: daily.DateKey(today), Challenge: pool[idx]})
}
