package aggregator

import (
	"sort"
	"sync"

	"newsagg/internal/models"
)

// entryKey unifies articles served from the same origin under the
// same headline.
type entryKey struct {
	server string
	title  string
}

// Entry is one merged article with the tokens common to every
// observed variant of it.
type Entry struct {
	Article models.Article
	Tokens  []string
}

// Merger accumulates (server, title) → (canonical article, tokens),
// merging duplicate observations by multiset token intersection. The
// canonical article for a key is the one with the lexicographically
// smallest URL.
type Merger struct {
	mu      sync.Mutex
	entries map[entryKey]Entry
}

// NewMerger creates an empty merger.
func NewMerger() *Merger {
	return &Merger{entries: make(map[entryKey]Entry)}
}

// Merge records an observation of an article. The first observation
// of a key stores the article and tokens as given; every later one
// replaces the stored tokens with the multiset intersection and keeps
// the article whose URL sorts first.
func (m *Merger) Merge(server, title string, article models.Article, tokens []string) {
	key := entryKey{server: server, title: title}

	m.mu.Lock()
	defer m.mu.Unlock()

	curr, ok := m.entries[key]
	if !ok {
		m.entries[key] = Entry{Article: article, Tokens: tokens}

		return
	}

	merged := Entry{
		Article: curr.Article,
		Tokens:  sortedIntersection(curr.Tokens, tokens),
	}

	// Keep the URL that comes first lexicographically.
	if article.URL < curr.Article.URL {
		merged.Article = article
	}

	m.entries[key] = merged
}

// Drain returns every merged entry. It is only safe to call once no
// Merge can still be running, i.e. after both crawl pools have
// quiesced.
func (m *Merger) Drain() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]Entry, 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, entry)
	}

	return entries
}

// sortedIntersection computes the multiset intersection of two token
// lists: a token appearing m times in one and n times in the other
// appears min(m, n) times in the result, which is sorted.
func sortedIntersection(a, b []string) []string {
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)

	intersection := make([]string, 0, min(len(as), len(bs)))

	i, j := 0, 0
	for i < len(as) && j < len(bs) {
		switch {
		case as[i] < bs[j]:
			i++
		case as[i] > bs[j]:
			j++
		default:
			intersection = append(intersection, as[i])
			i++
			j++
		}
	}

	return intersection
}
