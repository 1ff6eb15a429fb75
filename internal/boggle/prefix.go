// apps/go-server/internal/boggle/prefix.go
//
// PrefixIndex answers the two questions the search asks at every step:
//   - could this token sequence still grow into a dictionary word? (IsPrefix)
//   - is it a dictionary word right now? (IsWord)
//
// Both are plain set lookups. The index is built fresh for each solve from the
// caller's word list and is never shared between calls.

package boggle

import "strings"

// PrefixIndex holds the uppercased dictionary and every non-empty prefix of it.
type PrefixIndex struct {
	words    map[string]struct{}
	prefixes map[string]struct{}
}

// NewPrefixIndex uppercases and deduplicates words, then records every
// non-empty prefix of each one (a full word is its own prefix).
// A nil or empty list yields an index that answers false to everything.
func NewPrefixIndex(words []string) *PrefixIndex {
	idx := &PrefixIndex{
		words:    make(map[string]struct{}, len(words)),
		prefixes: make(map[string]struct{}, len(words)*4),
	}
	for _, w := range words {
		w = strings.ToUpper(w)
		if w == "" {
			continue
		}
		if _, seen := idx.words[w]; seen {
			continue
		}
		idx.words[w] = struct{}{}
		for i := 1; i <= len(w); i++ {
			idx.prefixes[w[:i]] = struct{}{}
		}
	}
	return idx
}

// IsPrefix reports whether s is the start of at least one dictionary word.
func (p *PrefixIndex) IsPrefix(s string) bool {
	_, ok := p.prefixes[s]
	return ok
}

// IsWord reports whether s is exactly a dictionary word.
func (p *PrefixIndex) IsWord(s string) bool {
	_, ok := p.words[s]
	return ok
}

// Len is the number of distinct words in the index.
func (p *PrefixIndex) Len() int { return len(p.words) }
