// apps/go-server/internal/words/words.go
//
// Dictionary management for the solver and the game loop.
//
// Responsibilities:
//   - Load the word list from a file (WORDS_FILE) or fall back to the embedded default.
//   - Normalize entries: trim, Unicode NFC, uppercase, drop blanks/#comments/duplicates.
//   - Expose the list (for boggle.Solve) and a set (for quick guess checks).
//
// Initialization is run once (sync.Once). Load/ReadWords are pure and can be
// used directly by callers that manage their own lists (the CLI does).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/boggle/apps/go-server/assets"
)

var (
	initOnce   sync.Once
	dictionary []string            // normalized, deduplicated, file order
	wordSet    map[string]struct{} // same words, for lookups
	initialErr error
)

// ErrEmpty is returned when a word source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Init loads the dictionary exactly once. An empty path selects the embedded list.
// Later calls return the first call's error and ignore their argument.
func Init(path string) error {
	initOnce.Do(func() {
		list, err := Load(path)
		if err != nil {
			initialErr = err
			return
		}
		dictionary = list
		wordSet = toSet(list)
	})
	return initialErr
}

// Load reads and normalizes a word list from path, or from the embedded
// default when path is empty.
func Load(path string) ([]string, error) {
	var (
		list []string
		err  error
	)
	if path != "" {
		list, err = ReadWordFile(path)
	} else {
		list, err = readEmbedded()
	}
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	return list, nil
}

// ReadWordFile loads one word per line from a file.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}

func readEmbedded() ([]string, error) {
	f, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("open embedded word list: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}

// ReadWords reads a newline-delimited word list. Blank lines and lines
// starting with # are skipped; repeated words are kept once.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := Normalize(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return out, nil
}

// Normalize trims w, composes it to NFC and uppercases it.
func Normalize(w string) string {
	return strings.ToUpper(norm.NFC.String(strings.TrimSpace(w)))
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Dictionary returns the loaded word list. Callers must not modify it.
func Dictionary() []string {
	return dictionary
}

// IsWord reports whether w (any case) is in the loaded dictionary.
func IsWord(w string) bool {
	_, ok := wordSet[Normalize(w)]
	return ok
}

// Stats returns the number of loaded words.
func Stats() int {
	return len(dictionary)
}
