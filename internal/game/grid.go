// apps/go-server/internal/game/grid.go
//
// Grid helpers: random generation and JSON decoding.
//
// Document stores that cannot hold nested arrays keep a grid as an object
// keyed by row index ({"0": [...], "1": [...]}). UnmarshalJSON accepts that
// shape as well as a plain array of rows; keys are ordered numerically.

package game

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"time"
)

// randomLetters is the tile alphabet for generated grids.
const randomLetters = "ABCDEFGHIJKLMNOPRSTUVWY"

// now is swapped in tests.
var now = time.Now

// RandomGrid returns a size×size grid of letters drawn uniformly from
// randomLetters. A size below 1 yields an empty grid.
func RandomGrid(size int) Grid {
	if size < 1 {
		return Grid{}
	}
	n := big.NewInt(int64(len(randomLetters)))
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]string, size)
		for c := range g[r] {
			i, err := rand.Int(rand.Reader, n)
			if err != nil {
				i = big.NewInt(0)
			}
			g[r][c] = string(randomLetters[i.Int64()])
		}
	}
	return g
}

// UnmarshalJSON decodes either [[...],[...]] or {"0":[...],"1":[...]}.
func (g *Grid) UnmarshalJSON(b []byte) error {
	var rows [][]string
	if err := json.Unmarshal(b, &rows); err == nil {
		*g = rows
		return nil
	}

	var keyed map[string][]string
	if err := json.Unmarshal(b, &keyed); err != nil {
		return fmt.Errorf("grid: want array of rows or object of rows: %w", err)
	}
	type row struct {
		idx   int
		tiles []string
	}
	list := make([]row, 0, len(keyed))
	for k, v := range keyed {
		i, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("grid: row key %q is not an index", k)
		}
		list = append(list, row{idx: i, tiles: v})
	}
	sort.Slice(list, func(a, b int) bool { return list[a].idx < list[b].idx })

	out := make(Grid, len(list))
	for i, r := range list {
		out[i] = r.tiles
	}
	*g = out
	return nil
}
