package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/vyevs/ansi"

	"github.com/robalobadob/boggle/apps/go-server/internal/boggle"
)

var errEmptyGrid = errors.New("grid is empty")

// ParseGrid reads one row per line. Rows containing commas or whitespace
// are split on them, so multi-letter tiles like "Qu" can be written;
// otherwise every character is a tile. Blank lines are skipped and all
// rows must have the same length.
func ParseGrid(r io.Reader) ([][]string, error) {
	var grid [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var row []string
		if strings.ContainsFunc(line, isSeparator) {
			row = strings.FieldsFunc(line, isSeparator)
		} else {
			for _, ch := range line {
				row = append(row, string(ch))
			}
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", len(grid)+1, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, errEmptyGrid
	}
	return grid, nil
}

func isSeparator(r rune) bool { return r == ',' || unicode.IsSpace(r) }

// renderGrid draws the grid with tiles on path coloured in order from
// the first tile to the last.
func renderGrid(grid [][]string, path []boggle.Cell) string {
	colors := [...]string{"green", "yellow", "orange", "red", "pink", "purple", "cyan", "chartreuse"}

	cellToColor := make(map[boggle.Cell]string, len(path))
	for i, cell := range path {
		cellToColor[cell] = colors[min(i, len(colors)-1)]
	}

	var b strings.Builder
	for r, row := range grid {
		for c, tile := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if color, ok := cellToColor[boggle.Cell{Row: r, Col: c}]; ok {
				b.WriteString(ansi.FGColorName(color))
				b.WriteString(boggle.NormalizeTile(tile))
				b.WriteString(ansi.Clear)
			} else {
				b.WriteString(boggle.NormalizeTile(tile))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
