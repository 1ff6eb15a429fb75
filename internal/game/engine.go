// apps/go-server/internal/game/engine.go
//
// Challenge creation and the guess loop.
// Responsibilities:
//   - Build challenges by running the grid through boggle.Solve.
//   - Start sessions and check guesses against the solved list.
//   - Track state transitions: playing → finished, with elapsed time.
//
// Notes:
//   - Guesses go through words.Normalize (trim, NFC, uppercase) to match the dictionary.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"

	"github.com/robalobadob/boggle/apps/go-server/internal/boggle"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

var (
	ErrFinished   = errors.New("game finished")
	ErrEmptyGuess = errors.New("empty guess")
)

// NewChallenge solves grid against dictionary and wraps the result.
// Empty name and difficulty fall back to the id and "medium".
func NewChallenge(id, name, difficulty string, grid Grid, dictionary []string) *Challenge {
	if name == "" {
		name = id
	}
	if difficulty == "" {
		difficulty = "medium"
	}
	return &Challenge{
		ID:         id,
		Name:       name,
		Size:       len(grid),
		Difficulty: difficulty,
		Grid:       grid,
		Solutions:  boggle.Solve(grid, dictionary),
		CreatedAt:  now().UTC(),
	}
}

// NewRandomChallenge solves a fresh RandomGrid(size) under a "random-" id.
func NewRandomChallenge(size int, dictionary []string) *Challenge {
	name := fmt.Sprintf("Random %dx%d", size, size)
	return NewChallenge("random-"+randomID(), name, DifficultyRandom, RandomGrid(size), dictionary)
}

// NewSession starts a session on c.
func NewSession(c *Challenge) *Session {
	return &Session{
		ID:          randomID(),
		ChallengeID: c.ID,
		Solutions:   slices.Clone(c.Solutions),
		Found:       []string{},
		StartedAt:   now().UTC(),
	}
}

// ApplyGuess checks guess against the session's solutions.
// A correct guess is recorded; repeated and unknown words are not.
func (s *Session) ApplyGuess(guess string) (GuessResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Finished {
		return "", ErrFinished
	}
	guess = words.Normalize(guess)
	if guess == "" {
		return "", ErrEmptyGuess
	}

	switch {
	case slices.Contains(s.Found, guess):
		return GuessAlreadyFound, nil
	case slices.Contains(s.Solutions, guess):
		s.Found = append(s.Found, guess)
		return GuessCorrect, nil
	default:
		return GuessInvalid, nil
	}
}

// FoundWords returns a copy of the words found so far, in guess order.
func (s *Session) FoundWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.Found)
}

// End finishes the session (once) and returns its summary.
func (s *Session) End() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Finished {
		s.Finished = true
		s.EndedAt = now().UTC()
	}
	return s.summary()
}

// Summary reports progress so far. For a running session the elapsed time
// is measured up to now.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func (s *Session) summary() Summary {
	end := s.EndedAt
	if !s.Finished {
		end = now().UTC()
	}
	missed := make([]string, 0, len(s.Solutions))
	for _, w := range s.Solutions {
		if !slices.Contains(s.Found, w) {
			missed = append(missed, w)
		}
	}
	return Summary{
		FoundCount:     len(s.Found),
		TotalWords:     len(s.Solutions),
		Missed:         missed,
		ElapsedSeconds: end.Sub(s.StartedAt).Seconds(),
	}
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
