// Package index provides the inverted index built from a crawl and
// its ranked term lookup.
package index

import (
	"sort"
	"strings"

	"newsagg/internal/models"
)

// Match is one article matching a queried term, with the number of
// times the term appears in it.
type Match struct {
	Article models.Article
	Count   int
}

// Index is an inverted index from token to the articles containing
// it. It is populated once, after the crawl has quiesced, and then
// only read; it performs no locking of its own.
type Index struct {
	postings map[string]map[models.Article]int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		postings: make(map[string]map[models.Article]int),
	}
}

// Add records the article's tokens. Tokens are expected lowercased,
// as produced by the document tokenizer.
func (idx *Index) Add(article models.Article, tokens []string) {
	for _, token := range tokens {
		articles, ok := idx.postings[token]
		if !ok {
			articles = make(map[models.Article]int)
			idx.postings[token] = articles
		}

		articles[article]++
	}
}

// MatchingArticles returns every article containing the term, sorted
// by descending occurrence count; ties are broken by title, then URL.
// The term is matched case-insensitively.
func (idx *Index) MatchingArticles(term string) []Match {
	articles := idx.postings[strings.ToLower(term)]
	if len(articles) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(articles))
	for article, count := range articles {
		matches = append(matches, Match{Article: article, Count: count})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Count != matches[j].Count {
			return matches[i].Count > matches[j].Count
		}

		if matches[i].Article.Title != matches[j].Article.Title {
			return matches[i].Article.Title < matches[j].Article.Title
		}

		return matches[i].Article.URL < matches[j].Article.URL
	})

	return matches
}

// Terms returns the number of distinct tokens in the index.
func (idx *Index) Terms() int {
	return len(idx.postings)
}
