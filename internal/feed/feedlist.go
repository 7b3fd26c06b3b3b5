// Package feed parses feed lists and the RSS/Atom feeds they name.
package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"newsagg/internal/models"
)

// Feed list errors.
var (
	ErrEmptyFeedList = errors.New("feed list contains no feeds")
)

// feedList mirrors the feed-list XML document:
//
//	<feed-list>
//	  <feed url="http://example.com/rss.xml" title="Example News"/>
//	</feed-list>
type feedList struct {
	XMLName xml.Name        `xml:"feed-list"`
	Feeds   []feedListEntry `xml:"feed"`
}

type feedListEntry struct {
	URL   string `xml:"url,attr"`
	Title string `xml:"title,attr"`
}

// Source fetches raw documents by location. Satisfied by fetch.Fetcher.
type Source interface {
	Fetch(location string) (string, error)
}

// ListParser fetches and decodes feed lists.
type ListParser struct {
	source Source
}

// NewListParser creates a feed-list parser over the given source.
func NewListParser(source Source) *ListParser {
	return &ListParser{source: source}
}

// ParseList fetches the feed list at the given location and returns
// its entries in document order. Entries without a URL are skipped.
func (p *ListParser) ParseList(location string) ([]models.FeedRef, error) {
	body, err := p.source.Fetch(location)
	if err != nil {
		return nil, fmt.Errorf("fetch feed list: %w", err)
	}

	var list feedList
	if err := xml.Unmarshal([]byte(body), &list); err != nil {
		return nil, fmt.Errorf("parse feed list: %w", err)
	}

	refs := make([]models.FeedRef, 0, len(list.Feeds))

	for _, entry := range list.Feeds {
		url := strings.TrimSpace(entry.URL)
		if url == "" {
			continue
		}

		refs = append(refs, models.FeedRef{
			URL:   url,
			Title: strings.TrimSpace(entry.Title),
		})
	}

	if len(refs) == 0 {
		return nil, ErrEmptyFeedList
	}

	return refs, nil
}
