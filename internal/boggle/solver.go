// apps/go-server/internal/boggle/solver.go
//
// Grid word search.
// Responsibilities:
//   - Start a depth-first walk from every cell in row-major order.
//   - Extend the current token sequence to unvisited neighbors in the
//     fixed 8-offset order, backtracking the visited mark on return.
//   - Prune a branch as soon as its tokens stop being a dictionary prefix.
//   - Collect words of 3+ letters once each, in order of first discovery.
//
// Notes:
//   - Solve holds no package-level state; concurrent calls on independent
//     inputs need no coordination.
//   - There is no cancellation. Callers that need bounded latency limit the
//     grid and dictionary size before calling.

package boggle

import "unicode/utf8"

// MinWordLen is the shortest word the search will accept.
const MinWordLen = 3

// Cell is a (row, column) grid coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// offsets is the neighbor visiting order. Discovery order depends on it.
var offsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Solve returns every dictionary word of at least MinWordLen letters that can
// be spelled by a path of adjacent (including diagonal) cells, each cell used
// at most once per word. Words are uppercase, unique, and in the order the
// search first reaches them.
//
// The grid is assumed rectangular; its width is taken from row 0.
func Solve(grid [][]string, dictionary []string) []string {
	if len(grid) == 0 || len(grid[0]) == 0 || len(dictionary) == 0 {
		return []string{}
	}
	s := newSolver(grid, NewPrefixIndex(dictionary))
	s.run()
	return s.found.list()
}

// solver is the per-call search state.
type solver struct {
	tiles   [][]string // normalized tokens
	rows    int
	cols    int
	index   *PrefixIndex
	visited [][]bool // cells on the active path
	found   collector

	steps int // extend calls; shows a dead prefix stops its branch after one frame
}

func newSolver(grid [][]string, index *PrefixIndex) *solver {
	rows, cols := len(grid), len(grid[0])
	s := &solver{
		tiles:   make([][]string, rows),
		rows:    rows,
		cols:    cols,
		index:   index,
		visited: make([][]bool, rows),
		found:   newCollector(),
	}
	for r := 0; r < rows; r++ {
		s.tiles[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			s.tiles[r][c] = NormalizeTile(grid[r][c])
		}
		s.visited[r] = make([]bool, cols)
	}
	return s
}

// run starts an independent walk from every cell.
func (s *solver) run() {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			s.visited[r][c] = true
			s.extend(r, c, s.tiles[r][c])
			s.visited[r][c] = false
		}
	}
}

// extend handles the frame for (r, c) with word already containing its token.
// On return the visited marks are exactly as they were on entry.
func (s *solver) extend(r, c int, word string) {
	s.steps++

	if !s.index.IsPrefix(word) {
		return
	}
	if utf8.RuneCountInString(word) >= MinWordLen && s.index.IsWord(word) {
		s.found.add(word)
	}

	for _, off := range offsets {
		nr, nc := r+off.Row, c+off.Col
		if nr < 0 || nr >= s.rows || nc < 0 || nc >= s.cols || s.visited[nr][nc] {
			continue
		}
		s.visited[nr][nc] = true
		s.extend(nr, nc, word+s.tiles[nr][nc])
		s.visited[nr][nc] = false
	}
}

// collector keeps words unique and in insertion order.
type collector struct {
	order []string
	seen  map[string]struct{}
}

func newCollector() collector {
	return collector{order: []string{}, seen: make(map[string]struct{})}
}

// add appends w unless it was added before.
func (c *collector) add(w string) {
	if _, ok := c.seen[w]; ok {
		return
	}
	c.seen[w] = struct{}{}
	c.order = append(c.order, w)
}

func (c *collector) list() []string { return c.order }
