package boggle

import "strings"

// FindPath returns the first path that spells word on grid, trying origins in
// row-major order and neighbors in the same order Solve uses. It returns nil
// when the word cannot be placed.
func FindPath(grid [][]string, word string) []Cell {
	if len(grid) == 0 || len(grid[0]) == 0 || word == "" {
		return nil
	}
	pf := pathFinder{
		s:    newSolver(grid, NewPrefixIndex(nil)),
		want: strings.ToUpper(word),
	}
	for r := 0; r < pf.s.rows; r++ {
		for c := 0; c < pf.s.cols; c++ {
			if pf.walk(r, c, "") {
				return pf.path
			}
		}
	}
	return nil
}

type pathFinder struct {
	s    *solver
	want string
	path []Cell
}

// walk tries to continue the path through (r, c). On failure the cell is
// unmarked and popped again.
func (pf *pathFinder) walk(r, c int, sofar string) bool {
	word := sofar + pf.s.tiles[r][c]
	if !strings.HasPrefix(pf.want, word) {
		return false
	}

	pf.s.visited[r][c] = true
	pf.path = append(pf.path, Cell{Row: r, Col: c})
	if word == pf.want {
		return true
	}

	for _, off := range offsets {
		nr, nc := r+off.Row, c+off.Col
		if nr < 0 || nr >= pf.s.rows || nc < 0 || nc >= pf.s.cols || pf.s.visited[nr][nc] {
			continue
		}
		if pf.walk(nr, nc, word) {
			return true
		}
	}

	pf.s.visited[r][c] = false
	pf.path = pf.path[:len(pf.path)-1]
	return false
}
