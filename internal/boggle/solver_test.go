package boggle

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveEmptyInputs(t *testing.T) {
	dict := []string{"CAT"}
	grid := [][]string{{"C", "A", "T"}}

	tests := []struct {
		name string
		grid [][]string
		dict []string
	}{
		{"nil grid", nil, dict},
		{"no rows", [][]string{}, dict},
		{"no columns", [][]string{{}}, dict},
		{"nil dictionary", grid, nil},
		{"empty dictionary", grid, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.grid, tt.dict)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name string
		grid [][]string
		dict []string
		want []string
	}{
		{
			// B->C is a diagonal step, so ABC is placeable; AB and AD are too short.
			name: "two by two",
			grid: [][]string{{"A", "B"}, {"C", "D"}},
			dict: []string{"AB", "ABC", "AD"},
			want: []string{"ABC"},
		},
		{
			name: "three by three",
			grid: [][]string{{"A", "B", "C"}, {"D", "E", "F"}, {"G", "H", "I"}},
			dict: []string{"ABC", "ABE", "DEF"},
			want: []string{"ABC", "ABE", "DEF"},
		},
		{
			name: "unreachable word",
			grid: [][]string{{"A", "B", "C"}, {"D", "E", "F"}, {"G", "H", "I"}},
			dict: []string{"AEI", "ACI", "AIE"},
			want: []string{"AEI"},
		},
		{
			name: "same word from two origins",
			grid: [][]string{{"C", "A", "T"}, {"X", "X", "X"}, {"C", "A", "T"}},
			dict: []string{"CAT"},
			want: []string{"CAT"},
		},
		{
			name: "discovery order is not alphabetical",
			grid: [][]string{{"T", "A", "C"}},
			dict: []string{"CAT", "TAC"},
			want: []string{"TAC", "CAT"},
		},
		{
			name: "accepted word keeps extending",
			grid: [][]string{{"C", "A"}, {"S", "T"}},
			dict: []string{"CAT", "CATS"},
			want: []string{"CAT", "CATS"},
		},
		{
			name: "case insensitive",
			grid: [][]string{{"c", "a", "t"}},
			dict: []string{"cat", "Act"},
			want: []string{"CAT"},
		},
		{
			name: "cells are not reused",
			grid: [][]string{{"A", "N"}},
			dict: []string{"ANA", "NAN"},
			want: []string{},
		},
		{
			name: "multi letter tiles",
			grid: [][]string{{"qu", "I"}, {"T", "E"}},
			dict: []string{"quit", "quite", "tie"},
			want: []string{"QUIT", "QUITE", "TIE"},
		},
		{
			name: "short tokens still count letters",
			grid: [][]string{{"QU", "A"}},
			dict: []string{"QUA"},
			want: []string{"QUA"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Solve(tt.grid, tt.dict))
		})
	}
}

func TestSolvePrunesDeadOrigins(t *testing.T) {
	grid := [][]string{
		{"E", "E", "E"},
		{"E", "E", "E"},
		{"E", "E", "E"},
	}
	s := newSolver(grid, NewPrefixIndex([]string{"CAT", "DOG"}))
	s.run()

	assert.Equal(t, 9, s.steps, "each origin should stop after one frame")
	assert.Empty(t, s.found.list())
}

func TestSolvePruningStopsAtFirstDeadToken(t *testing.T) {
	grid := [][]string{
		{"C", "A"},
		{"E", "E"},
	}
	s := newSolver(grid, NewPrefixIndex([]string{"CAE"}))
	s.run()

	// C, CA, CAE(1,0), CAEE, CAE(1,1), CAEE, CE, CE, then A, E, E as origins.
	assert.Equal(t, 11, s.steps)
	assert.Equal(t, []string{"CAE"}, s.found.list())
}

func TestSolveRestoresVisited(t *testing.T) {
	grid := [][]string{{"C", "A", "T"}, {"S", "E", "R"}}
	s := newSolver(grid, NewPrefixIndex([]string{"CAT", "CATS", "TEAR", "RATES", "STARE"}))
	s.run()

	for r := range s.visited {
		for c := range s.visited[r] {
			assert.False(t, s.visited[r][c], "cell (%d,%d) left marked", r, c)
		}
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	grid := randomGrid(rand.New(rand.NewSource(7)), 5, 5)
	dict := testDictionary()

	first := Solve(grid, dict)
	second := Solve(grid, dict)
	assert.Equal(t, first, second)
}

func TestSolveConcurrentCalls(t *testing.T) {
	dict := testDictionary()
	rng := rand.New(rand.NewSource(42))
	grids := make([][][]string, 8)
	want := make([][]string, len(grids))
	for i := range grids {
		grids[i] = randomGrid(rng, 4, 4)
		want[i] = Solve(grids[i], dict)
	}

	got := make([][]string, len(grids))
	var wg sync.WaitGroup
	for i := range grids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Solve(grids[i], dict)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, want, got)
}

// TestSolveProperties checks every result against the dictionary and the grid,
// and checks that no placeable dictionary word was missed.
func TestSolveProperties(t *testing.T) {
	dict := testDictionary()
	inDict := make(map[string]bool, len(dict))
	for _, w := range dict {
		inDict[strings.ToUpper(w)] = true
	}

	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 25; n++ {
		grid := randomGrid(rng, 2+rng.Intn(4), 2+rng.Intn(4))
		got := Solve(grid, dict)

		seen := make(map[string]bool, len(got))
		for _, w := range got {
			assert.GreaterOrEqual(t, len([]rune(w)), MinWordLen, w)
			assert.True(t, inDict[w], "%s not in dictionary", w)
			assert.False(t, seen[w], "%s returned twice", w)
			seen[w] = true
			assertValidPath(t, grid, w, FindPath(grid, w))
		}

		for w := range inDict {
			placeable := len([]rune(w)) >= MinWordLen && FindPath(grid, w) != nil
			assert.Equal(t, placeable, seen[w], "grid %v word %s", grid, w)
		}
	}
}

func assertValidPath(t *testing.T, grid [][]string, word string, path []Cell) {
	t.Helper()
	require.NotEmpty(t, path, "no path for %s", word)

	var b strings.Builder
	used := make(map[Cell]bool, len(path))
	for i, cell := range path {
		require.False(t, used[cell], "%s reuses %v", word, cell)
		used[cell] = true
		if i > 0 {
			prev := path[i-1]
			dr, dc := cell.Row-prev.Row, cell.Col-prev.Col
			require.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1, "%s jumps %v -> %v", word, prev, cell)
		}
		b.WriteString(NormalizeTile(grid[cell.Row][cell.Col]))
	}
	assert.Equal(t, word, b.String())
}

func testDictionary() []string {
	return []string{
		"ace", "act", "ant", "arc", "are", "art", "ate", "bat", "bet", "cab",
		"can", "car", "cat", "den", "ear", "eat", "era", "net", "nor", "not",
		"oar", "one", "ore", "rat", "ret", "rot", "sat", "sea", "set", "tab",
		"tan", "tar", "tea", "ten", "toe", "ton", "acre", "care", "cart", "cast",
		"cats", "coat", "crab", "dare", "date", "east", "eats", "late", "near",
		"neat", "note", "rate", "rest", "seat", "star", "tear", "tone", "trace",
		"crate", "react", "stare", "tears", "notes", "stone", "tones", "rates",
		"crates", "traces", "reacts",
	}
}

func randomGrid(rng *rand.Rand, rows, cols int) [][]string {
	const letters = "AAEEIOORRSSTTNNCDL"
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = string(letters[rng.Intn(len(letters))])
		}
	}
	return grid
}
