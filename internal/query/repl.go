// Package query provides the interactive term-lookup loop over a
// built index.
package query

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"newsagg/internal/index"
	"newsagg/pkg/utils"
)

// Display widths for result rows. Wide (CJK) runes count double, so
// truncation and padding go through the display-width helpers.
const (
	titleWidth = 56
	urlWidth   = 72
)

// REPL reads search terms from in and prints ranked matches to out,
// at most maxMatches per term. An empty line ends the loop.
type REPL struct {
	index      *index.Index
	in         io.Reader
	out        io.Writer
	strings    *utils.StringHelper
	maxMatches int
}

// NewREPL creates a query loop over the given index.
func NewREPL(idx *index.Index, in io.Reader, out io.Writer, maxMatches int) *REPL {
	return &REPL{
		index:      idx,
		in:         in,
		out:        out,
		strings:    utils.NewStringHelper(),
		maxMatches: maxMatches,
	}
}

// Run executes the read-query-print loop until an empty line or EOF.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.in)

	for {
		fmt.Fprint(r.out, "Enter a search term [or just hit <enter> to quit]: ")

		if !scanner.Scan() {
			fmt.Fprintln(r.out)

			return scanner.Err()
		}

		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			return nil
		}

		r.printMatches(term)
	}
}

func (r *REPL) printMatches(term string) {
	matches := r.index.MatchingArticles(term)
	if len(matches) == 0 {
		fmt.Fprintf(r.out, "Ah, we didn't find the term %q. Try again.\n", term)

		return
	}

	plural := "s"
	if len(matches) == 1 {
		plural = ""
	}

	fmt.Fprintf(r.out, "That term appears in %d article%s.", len(matches), plural)

	switch {
	case len(matches) > r.maxMatches:
		fmt.Fprintf(r.out, "  Here are the top %d of them:\n", r.maxMatches)
	case len(matches) > 1:
		fmt.Fprintln(r.out, "  Here they are:")
	default:
		fmt.Fprintln(r.out, "  Here it is:")
	}

	for i, match := range matches {
		if i == r.maxMatches {
			break
		}

		times := "times"
		if match.Count == 1 {
			times = "time"
		}

		title := r.strings.TruncateDisplay(match.Article.Title, titleWidth)
		url := r.strings.TruncateDisplay(match.Article.URL, urlWidth)

		fmt.Fprintf(r.out, "  %2d.) %s [appears %d %s]\n",
			i+1, r.strings.PadDisplay(fmt.Sprintf("%q", title), titleWidth+2), match.Count, times)
		fmt.Fprintf(r.out, "       %q\n", url)
	}
}
