// Package document fetches article documents and turns them into
// searchable tokens.
package document

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/clipperhouse/uax29/v2/words"
)

// Source fetches raw documents by location. Satisfied by fetch.Fetcher.
type Source interface {
	Fetch(location string) (string, error)
}

// nonContentSelectors lists elements to strip before extracting body text.
const nonContentSelectors = "script, style, nav, header, footer"

// Parser fetches HTML documents and tokenizes their text content.
type Parser struct {
	source Source
}

// NewParser creates a document parser over the given source.
func NewParser(source Source) *Parser {
	return &Parser{source: source}
}

// Tokens fetches the document at the given URL and returns its text
// content as a sequence of lowercased word tokens. Duplicate tokens
// are preserved; their multiplicity is what the merger intersects on.
func (p *Parser) Tokens(url string) ([]string, error) {
	body, err := p.source.Fetch(url)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}

	text, err := extractText(body)
	if err != nil {
		return nil, err
	}

	return Tokenize(text), nil
}

// extractText strips non-content elements and returns the document's
// visible text. Prefers <article> content, falling back to <body>.
func extractText(body string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	article := doc.Find("article").First()
	if article.Length() > 0 {
		article.Find(nonContentSelectors).Remove()

		return strings.TrimSpace(article.Text()), nil
	}

	sel := doc.Find("body").First()
	if sel.Length() > 0 {
		sel.Find(nonContentSelectors).Remove()

		return strings.TrimSpace(sel.Text()), nil
	}

	return strings.TrimSpace(doc.Text()), nil
}

// Tokenize segments text into lowercased word tokens. Segments
// without a letter or digit (whitespace, bare punctuation) are
// dropped.
func Tokenize(text string) []string {
	var tokens []string

	segments := words.FromString(text)
	for segments.Next() {
		token := segments.Value()
		if !strings.ContainsFunc(token, isWordRune) {
			continue
		}

		tokens = append(tokens, strings.ToLower(token))
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
