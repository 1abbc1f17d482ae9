package complete

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordProvider completes the last whitespace-separated word of a line
// against a fixed list of words.
type WordProvider struct {
	words []string
}

// NewWordProvider creates a WordProvider. Duplicate words are ignored.
func NewWordProvider(words ...string) *WordProvider {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	uniq := sorted[:0]
	for i, w := range sorted {
		if w != "" && (i == 0 || w != sorted[i-1]) {
			uniq = append(uniq, w)
		}
	}
	return &WordProvider{uniq}
}

// BeginSession starts a session over the words that have the last word of
// line as a prefix, in sorted order. Besides the candidates, the cycle has a
// position for the original line, so cycling forward and then backward the
// same number of times restores it.
func (p *WordProvider) BeginSession(line string) Session {
	start := 0
	if i := strings.LastIndexFunc(line, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(line[i:])
		start = i + size
	}
	head, word := line[:start], line[start:]
	i := sort.SearchStrings(p.words, word)
	var candidates []string
	for ; i < len(p.words) && strings.HasPrefix(p.words[i], word); i++ {
		candidates = append(candidates, p.words[i])
	}
	return &wordSession{original: line, head: head, candidates: candidates}
}

type wordSession struct {
	original   string
	head       string
	candidates []string
	// 0 is the original line, i > 0 is candidates[i-1].
	pos int
}

func (s *wordSession) Cycle(forward bool) string {
	n := len(s.candidates) + 1
	if forward {
		s.pos = (s.pos + 1) % n
	} else {
		s.pos = (s.pos + n - 1) % n
	}
	if s.pos == 0 {
		return s.original
	}
	return s.head + s.candidates[s.pos-1]
}
