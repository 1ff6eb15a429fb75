package game

import (
	"encoding/json"
	"fmt"

	"github.com/robalobadob/boggle/apps/go-server/assets"
)

// seedEntry is one record of assets/challenges.json.
type seedEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Grid       Grid   `json:"grid"`
}

// SeedChallenges builds the fixed challenge set, solving each grid against dictionary.
func SeedChallenges(dictionary []string) ([]*Challenge, error) {
	raw, err := assets.Challenges()
	if err != nil {
		return nil, fmt.Errorf("read seed challenges: %w", err)
	}
	var entries []seedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode seed challenges: %w", err)
	}

	out := make([]*Challenge, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewChallenge(e.ID, e.Name, e.Difficulty, e.Grid, dictionary))
	}
	return out, nil
}
