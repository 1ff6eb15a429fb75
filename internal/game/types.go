// apps/go-server/internal/game/types.go
//
// Core type definitions for challenges and play sessions.
// Defines:
//   - Grid: rows of tile tokens, as handed to the solver.
//   - Challenge: a named grid plus its solved word list.
//   - GuessResult: outcome of a single guess.
//   - Session: one play of a challenge (found words, timing).
//   - Summary: end-of-game report.

package game

import (
	"sync"
	"time"
)

// Grid is an ordered list of rows of tile tokens.
type Grid [][]string

// Challenge is a fixed grid whose solutions were computed when it was created.
type Challenge struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int       `json:"size"`
	Difficulty string    `json:"difficulty"`
	Grid       Grid      `json:"grid"`
	Solutions  []string  `json:"solutions"` // discovery order
	CreatedAt  time.Time `json:"createdAt"`
}

// DifficultyRandom marks generated challenges; they stay out of the daily rotation.
const DifficultyRandom = "random"

// GuessResult is the outcome of a guess against a session.
type GuessResult string

const (
	GuessCorrect      GuessResult = "correct"
	GuessAlreadyFound GuessResult = "already_found"
	GuessInvalid      GuessResult = "invalid"
)

// Session holds the state of a single play of a challenge.
type Session struct {
	ID          string    `json:"id"`          // random hex identifier
	ChallengeID string    `json:"challengeId"` // may be empty for ad-hoc grids
	Solutions   []string  `json:"solutions"`   // copied from the challenge
	Found       []string  `json:"found"`       // in guess order
	StartedAt   time.Time `json:"startedAt"`
	EndedAt     time.Time `json:"endedAt,omitempty"`
	Finished    bool      `json:"finished"`

	mu sync.Mutex
}

// Summary reports how a finished (or in-progress) session went.
type Summary struct {
	FoundCount     int      `json:"foundCount"`
	TotalWords     int      `json:"totalWords"`
	Missed         []string `json:"missed"`
	ElapsedSeconds float64  `json:"elapsedSeconds"`
}
