package query

import (
	"strings"
	"testing"

	"newsagg/internal/index"
	"newsagg/internal/models"
)

func buildIndex(t *testing.T) *index.Index {
	t.Helper()

	idx := index.NewIndex()
	idx.Add(models.Article{URL: "https://example.com/a", Title: "Alpha"}, []string{"fire", "fire"})
	idx.Add(models.Article{URL: "https://example.com/b", Title: "Beta"}, []string{"fire", "flood"})

	return idx
}

func TestREPL_QuitsOnEmptyLine(t *testing.T) {
	var out strings.Builder

	r := NewREPL(buildIndex(t), strings.NewReader("\n"), &out, 15)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestREPL_QuitsOnEOF(t *testing.T) {
	var out strings.Builder

	r := NewREPL(buildIndex(t), strings.NewReader(""), &out, 15)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestREPL_PrintsMatches(t *testing.T) {
	var out strings.Builder

	r := NewREPL(buildIndex(t), strings.NewReader("fire\n\n"), &out, 15)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()

	if !strings.Contains(got, "That term appears in 2 articles.") {
		t.Errorf("Expected match count line, got:\n%s", got)
	}

	// Alpha contains the term twice and must be listed first.
	alpha := strings.Index(got, "Alpha")
	beta := strings.Index(got, "Beta")

	if alpha < 0 || beta < 0 || alpha > beta {
		t.Errorf("Expected Alpha ranked before Beta, got:\n%s", got)
	}

	if !strings.Contains(got, "appears 2 times") {
		t.Errorf("Expected occurrence count, got:\n%s", got)
	}
}

func TestREPL_UnknownTerm(t *testing.T) {
	var out strings.Builder

	r := NewREPL(buildIndex(t), strings.NewReader("volcano\n\n"), &out, 15)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "didn't find the term") {
		t.Errorf("Expected not-found message, got:\n%s", out.String())
	}
}

func TestREPL_CapsMatches(t *testing.T) {
	idx := index.NewIndex()
	for i := 0; i < 30; i++ {
		idx.Add(models.Article{
			URL:   "https://example.com/" + strings.Repeat("x", i+1),
			Title: "T",
		}, []string{"common"})
	}

	var out strings.Builder

	r := NewREPL(idx, strings.NewReader("common\n\n"), &out, 15)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()

	if !strings.Contains(got, "Here are the top 15 of them:") {
		t.Errorf("Expected cap message, got:\n%s", got)
	}

	if strings.Contains(got, " 16.)") {
		t.Errorf("Expected at most 15 rows, got:\n%s", got)
	}
}
