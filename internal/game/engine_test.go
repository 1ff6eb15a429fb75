package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixClock pins now() for the duration of the test and returns an advance func.
func fixClock(t *testing.T) func(time.Duration) {
	t.Helper()
	cur := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return cur }
	t.Cleanup(func() { now = time.Now })
	return func(d time.Duration) { cur = cur.Add(d) }
}

func testChallenge() *Challenge {
	grid := Grid{
		{"C", "A", "T"},
		{"S", "E", "R"},
	}
	return NewChallenge("challenge-1", "", "", grid, []string{"cat", "cats", "tea", "rat", "at", "sea"})
}

func TestNewChallenge(t *testing.T) {
	fixClock(t)
	c := testChallenge()

	assert.Equal(t, "challenge-1", c.Name)
	assert.Equal(t, "medium", c.Difficulty)
	assert.Equal(t, 2, c.Size)
	assert.Equal(t, []string{"CAT", "TEA", "SEA", "RAT"}, c.Solutions)
	assert.Equal(t, now(), c.CreatedAt)
}

func TestSessionGuesses(t *testing.T) {
	fixClock(t)
	s := NewSession(testChallenge())
	assert.Len(t, s.ID, 16)

	tests := []struct {
		guess string
		want  GuessResult
	}{
		{"cat", GuessCorrect},
		{" CAT ", GuessAlreadyFound},
		{"Tea", GuessCorrect},
		{"cats", GuessInvalid},
		{"at", GuessInvalid},
		{"dog", GuessInvalid},
	}
	for _, tt := range tests {
		got, err := s.ApplyGuess(tt.guess)
		require.NoError(t, err, tt.guess)
		assert.Equal(t, tt.want, got, tt.guess)
	}
	assert.Equal(t, []string{"CAT", "TEA"}, s.FoundWords())

	_, err := s.ApplyGuess("   ")
	assert.ErrorIs(t, err, ErrEmptyGuess)
}

func TestSessionEnd(t *testing.T) {
	advance := fixClock(t)
	s := NewSession(testChallenge())

	_, _ = s.ApplyGuess("sea")
	advance(90 * time.Second)

	sum := s.End()
	assert.True(t, s.Finished)
	assert.Equal(t, Summary{
		FoundCount:     1,
		TotalWords:     4,
		Missed:         []string{"CAT", "TEA", "RAT"},
		ElapsedSeconds: 90,
	}, sum)

	// Ending twice keeps the first end time.
	advance(time.Minute)
	assert.Equal(t, 90.0, s.End().ElapsedSeconds)

	_, err := s.ApplyGuess("cat")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestSessionSummaryWhilePlaying(t *testing.T) {
	advance := fixClock(t)
	s := NewSession(testChallenge())
	advance(5 * time.Second)

	sum := s.Summary()
	assert.False(t, s.Finished)
	assert.Equal(t, 5.0, sum.ElapsedSeconds)
	assert.Equal(t, 4, len(sum.Missed))
}

func TestSessionDoesNotShareSolutions(t *testing.T) {
	c := testChallenge()
	s := NewSession(c)
	s.Solutions[0] = "XXX"
	assert.Equal(t, "CAT", c.Solutions[0])
}

func TestSessionGuessNormalizesUnicode(t *testing.T) {
	s := &Session{Solutions: []string{"CAF\u00c9"}, Found: []string{}}

	got, err := s.ApplyGuess("cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, GuessCorrect, got)
	assert.Equal(t, []string{"CAF\u00c9"}, s.FoundWords())
}
