// apps/go-server/internal/boggle/tile.go
//
// Tile normalization: maps a raw grid cell to the token used when building
// candidate words. Today this is case normalization only. "QU" and "ST" are
// recognized as two-letter dice faces but still come out as plain uppercase;
// a multi-letter tile is expected to arrive pre-combined in a single cell.

package boggle

import "strings"

// NormalizeTile returns the canonical search token for a raw tile.
func NormalizeTile(tile string) string {
	up := strings.ToUpper(tile)
	switch up {
	case "QU", "ST":
		return up
	default:
		return up
	}
}
