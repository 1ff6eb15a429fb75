// Package assets bundles the default dictionary and the seed challenge set
// so the server runs without any files configured.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt challenges.json
var FS embed.FS

// WordList opens the embedded dictionary (one word per line, # comments).
func WordList() (fs.File, error) {
	return FS.Open("words.txt")
}

// Challenges returns the raw seed challenge document.
func Challenges() ([]byte, error) {
	return FS.ReadFile("challenges.json")
}
