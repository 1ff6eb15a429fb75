// apps/go-server/internal/store/store.go
//
// Persistence interface for challenges and play sessions.
// Implementations: in-memory (memory.go) and SQLite (sqlite.go).

package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/robalobadob/boggle/apps/go-server/internal/game"
)

// ErrNotFound is returned when an id has no stored record.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface used by the HTTP layer.
type Store interface {
	// SaveChallenge inserts or replaces a challenge by ID.
	SaveChallenge(ctx context.Context, c *game.Challenge) error

	// GetChallenge returns ErrNotFound for unknown ids.
	GetChallenge(ctx context.Context, id string) (*game.Challenge, error)

	// ListChallenges returns every challenge in catalog order (see sortChallenges).
	ListChallenges(ctx context.Context) ([]*game.Challenge, error)

	// SaveSession inserts or replaces a session by ID.
	SaveSession(ctx context.Context, s *game.Session) error

	// GetSession returns ErrNotFound for unknown ids.
	GetSession(ctx context.Context, id string) (*game.Session, error)

	Close() error
}

// sortChallenges orders "challenge-N" ids by N, then everything else by id.
func sortChallenges(list []*game.Challenge) {
	sort.SliceStable(list, func(i, j int) bool {
		ni, iok := challengeNumber(list[i].ID)
		nj, jok := challengeNumber(list[j].ID)
		switch {
		case iok && jok && ni != nj:
			return ni < nj
		case iok != jok:
			return iok
		default:
			return list[i].ID < list[j].ID
		}
	})
}

func challengeNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "challenge-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	return n, err == nil
}
