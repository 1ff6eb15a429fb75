// apps/go-server/internal/store/memory.go
//
// In-memory implementation of Store.
// Used in development/testing, or when durability is not required.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Hands out the stored pointers; sessions guard their own state.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/boggle/apps/go-server/internal/game"
)

type memory struct {
	mu         sync.RWMutex
	challenges map[string]*game.Challenge
	sessions   map[string]*game.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		challenges: make(map[string]*game.Challenge),
		sessions:   make(map[string]*game.Session),
	}
}

func (m *memory) SaveChallenge(ctx context.Context, c *game.Challenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.challenges[c.ID] = c
	return nil
}

func (m *memory) GetChallenge(ctx context.Context, id string) (*game.Challenge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.challenges[id]; ok {
		return c, nil
	}
	return nil, ErrNotFound
}

func (m *memory) ListChallenges(ctx context.Context) ([]*game.Challenge, error) {
	m.mu.RLock()
	out := make([]*game.Challenge, 0, len(m.challenges))
	for _, c := range m.challenges {
		out = append(out, c)
	}
	m.mu.RUnlock()

	sortChallenges(out)
	return out, nil
}

func (m *memory) SaveSession(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) GetSession(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Close() error { return nil }
