package document

import (
	"errors"
	"reflect"
	"testing"
)

type stubSource struct {
	docs map[string]string
}

func (s *stubSource) Fetch(location string) (string, error) {
	doc, ok := s.docs[location]
	if !ok {
		return "", errors.New("not found")
	}

	return doc, nil
}

func TestTokenize(t *testing.T) {
	got := Tokenize("The quick, quick fox -- 128 deaths!")
	want := []string{"the", "quick", "quick", "fox", "128", "deaths"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize("  ...  "); len(got) != 0 {
		t.Errorf("Expected no tokens for punctuation-only text, got %v", got)
	}
}

func TestTokens_StripsNonContent(t *testing.T) {
	src := &stubSource{docs: map[string]string{
		"u": `<html><head><title>T</title></head><body>
			<script>var hidden = "scriptword";</script>
			<nav>navword</nav>
			<p>Visible story text</p>
		</body></html>`,
	}}

	tokens, err := NewParser(src).Tokens("u")
	if err != nil {
		t.Fatalf("Tokens failed: %v", err)
	}

	for _, token := range tokens {
		if token == "scriptword" || token == "navword" {
			t.Errorf("Non-content token %q leaked into output", token)
		}
	}

	found := false
	for _, token := range tokens {
		if token == "visible" {
			found = true
		}
	}

	if !found {
		t.Errorf("Expected body text tokens, got %v", tokens)
	}
}

func TestTokens_PrefersArticleElement(t *testing.T) {
	src := &stubSource{docs: map[string]string{
		"u": `<html><body>
			<div>chrome text</div>
			<article><p>story body</p></article>
		</body></html>`,
	}}

	tokens, err := NewParser(src).Tokens("u")
	if err != nil {
		t.Fatalf("Tokens failed: %v", err)
	}

	want := []string{"story", "body"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokens = %v, want %v", tokens, want)
	}
}

func TestTokens_FetchError(t *testing.T) {
	src := &stubSource{docs: map[string]string{}}

	_, err := NewParser(src).Tokens("missing")
	if err == nil {
		t.Fatal("Expected error for unfetchable document, got nil")
	}
}
