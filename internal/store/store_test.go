package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/boggle/apps/go-server/internal/game"
)

// backends runs fn against a fresh memory store and a fresh SQLite store.
func backends(t *testing.T, fn func(t *testing.T, st Store)) {
	t.Run("memory", func(t *testing.T) {
		st := NewMemoryStore()
		defer st.Close()
		fn(t, st)
	})
	t.Run("sqlite", func(t *testing.T) {
		st, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "boggle.db"))
		require.NoError(t, err)
		defer st.Close()
		fn(t, st)
	})
}

func challenge(id string) *game.Challenge {
	return &game.Challenge{
		ID:         id,
		Name:       "Challenge " + id,
		Size:       2,
		Difficulty: "easy",
		Grid:       game.Grid{{"C", "A"}, {"T", "S"}},
		Solutions:  []string{"CAT", "CATS", "ACT"},
		CreatedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestChallengeRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		want := challenge("challenge-1")
		require.NoError(t, st.SaveChallenge(ctx, want))

		got, err := st.GetChallenge(ctx, "challenge-1")
		require.NoError(t, err)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Grid, got.Grid)
		assert.Equal(t, want.Solutions, got.Solutions, "discovery order must survive storage")
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))

		_, err = st.GetChallenge(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestChallengeUpdate(t *testing.T) {
	backends(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		c := challenge("challenge-1")
		require.NoError(t, st.SaveChallenge(ctx, c))

		c2 := challenge("challenge-1")
		c2.Name = "Renamed"
		c2.Solutions = []string{"CAT"}
		require.NoError(t, st.SaveChallenge(ctx, c2))

		got, err := st.GetChallenge(ctx, "challenge-1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, []string{"CAT"}, got.Solutions)
	})
}

func TestListChallengesOrder(t *testing.T) {
	backends(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		for _, id := range []string{"challenge-10", "random-b", "challenge-2", "challenge-1", "random-a"} {
			require.NoError(t, st.SaveChallenge(ctx, challenge(id)))
		}

		list, err := st.ListChallenges(ctx)
		require.NoError(t, err)

		ids := make([]string, len(list))
		for i, c := range list {
			ids[i] = c.ID
		}
		assert.Equal(t, []string{"challenge-1", "challenge-2", "challenge-10", "random-a", "random-b"}, ids)
	})
}

func TestSessionRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		c := challenge("challenge-1")
		require.NoError(t, st.SaveChallenge(ctx, c))

		sess := game.NewSession(c)
		_, err := sess.ApplyGuess("cat")
		require.NoError(t, err)
		require.NoError(t, st.SaveSession(ctx, sess))

		got, err := st.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "challenge-1", got.ChallengeID)
		assert.Equal(t, []string{"CAT", "CATS", "ACT"}, got.Solutions)
		assert.Equal(t, []string{"CAT"}, got.Found)
		assert.False(t, got.Finished)
		assert.True(t, got.EndedAt.IsZero())

		// Guess on the loaded copy, end, and save again.
		res, err := got.ApplyGuess("acts")
		require.NoError(t, err)
		assert.Equal(t, game.GuessInvalid, res)
		_, _ = got.ApplyGuess("act")
		got.End()
		require.NoError(t, st.SaveSession(ctx, got))

		again, err := st.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"CAT", "ACT"}, again.Found)
		assert.True(t, again.Finished)
		assert.False(t, again.EndedAt.IsZero())

		_, err = st.GetSession(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boggle.db")
	ctx := context.Background()

	st, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.SaveChallenge(ctx, challenge("challenge-3")))
	require.NoError(t, st.Close())

	// Second open must skip already-applied migrations.
	st, err = OpenSQLite(path)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.GetChallenge(ctx, "challenge-3")
	require.NoError(t, err)
	assert.Equal(t, "Challenge challenge-3", got.Name)
}
