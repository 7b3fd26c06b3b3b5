package feed

import (
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"newsagg/internal/models"
)

// httpPrefix is the scheme prefix used to decide if a GUID is a usable URL.
const httpPrefix = "http"

// Parser fetches feeds and extracts their articles.
type Parser struct {
	source Source
}

// NewParser creates a feed parser over the given source.
func NewParser(source Source) *Parser {
	return &Parser{source: source}
}

// ParseFeed fetches the feed at the given URL and returns its
// articles. Items without a usable link are silently skipped. An
// empty feed returns a non-nil empty slice.
func (p *Parser) ParseFeed(url string) ([]models.Article, error) {
	body, err := p.source.Fetch(url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	parsed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	articles := make([]models.Article, 0, len(parsed.Items))

	for _, entry := range parsed.Items {
		link := extractLink(entry)
		if link == "" {
			continue
		}

		articles = append(articles, models.Article{
			URL:   link,
			Title: strings.TrimSpace(entry.Title),
		})
	}

	return articles, nil
}

// extractLink returns the best available URL from a feed entry.
// It prefers the explicit Link field, falling back to the GUID if it
// looks like an HTTP URL.
func extractLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}

	if strings.HasPrefix(entry.GUID, httpPrefix) {
		return entry.GUID
	}

	return ""
}
