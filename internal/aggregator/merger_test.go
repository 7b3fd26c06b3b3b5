package aggregator

import (
	"reflect"
	"sort"
	"sync"
	"testing"

	"newsagg/internal/models"
)

func TestSeenSet_TryAdmit(t *testing.T) {
	seen := NewSeenSet()

	if !seen.TryAdmit("https://example.com/a") {
		t.Fatal("Expected first admission to succeed")
	}

	if seen.TryAdmit("https://example.com/a") {
		t.Fatal("Expected second admission of same URL to fail")
	}

	if !seen.TryAdmit("https://example.com/b") {
		t.Fatal("Expected admission of distinct URL to succeed")
	}
}

func TestSeenSet_ConcurrentAdmitOnce(t *testing.T) {
	seen := NewSeenSet()

	const goroutines = 64

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()

			if seen.TryAdmit("https://example.com/contended") {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if admitted != 1 {
		t.Errorf("Expected exactly one admission, got %d", admitted)
	}
}

func TestSortedIntersection(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{
			// Duplicate tokens survive with multiplicity min(m, n).
			name: "multiset",
			a:    []string{"x", "y", "y", "z"},
			b:    []string{"y", "y", "z", "w"},
			want: []string{"y", "y", "z"},
		},
		{
			name: "disjoint",
			a:    []string{"a", "b"},
			b:    []string{"c", "d"},
			want: []string{},
		},
		{
			name: "one empty",
			a:    []string{},
			b:    []string{"a"},
			want: []string{},
		},
		{
			name: "unsorted inputs",
			a:    []string{"z", "a", "m"},
			b:    []string{"m", "z"},
			want: []string{"m", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedIntersection(tt.a, tt.b)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sortedIntersection(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMerger_CanonicalURLAndTokens(t *testing.T) {
	m := NewMerger()

	a := models.Article{URL: "https://example.com/a", Title: "Fire"}
	b := models.Article{URL: "https://example.com/b", Title: "Fire"}

	m.Merge("https://example.com", "Fire", b, []string{"y", "y", "z", "w"})
	m.Merge("https://example.com", "Fire", a, []string{"x", "y", "y", "z"})

	entries := m.Drain()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 merged entry, got %d", len(entries))
	}

	// The lexicographically smaller URL wins canonicality.
	if entries[0].Article != a {
		t.Errorf("Expected canonical article %+v, got %+v", a, entries[0].Article)
	}

	want := []string{"y", "y", "z"}
	if !reflect.DeepEqual(entries[0].Tokens, want) {
		t.Errorf("Expected tokens %v, got %v", want, entries[0].Tokens)
	}
}

func TestMerger_OrderIndependent(t *testing.T) {
	lists := [][]string{
		{"a", "b", "b", "c"},
		{"b", "b", "c", "d"},
		{"b", "c", "c"},
	}

	article := func(i int) models.Article {
		return models.Article{URL: "https://example.com/" + string(rune('a'+i)), Title: "T"}
	}

	// Merge the same observations in two different orders.
	forward := NewMerger()
	for i, tokens := range lists {
		forward.Merge("s", "T", article(i), tokens)
	}

	backward := NewMerger()
	for i := len(lists) - 1; i >= 0; i-- {
		backward.Merge("s", "T", article(i), lists[i])
	}

	fe := forward.Drain()
	be := backward.Drain()

	if len(fe) != 1 || len(be) != 1 {
		t.Fatalf("Expected 1 entry each, got %d and %d", len(fe), len(be))
	}

	ft := append([]string(nil), fe[0].Tokens...)
	bt := append([]string(nil), be[0].Tokens...)
	sort.Strings(ft)
	sort.Strings(bt)

	if !reflect.DeepEqual(ft, bt) {
		t.Errorf("Merge order changed tokens: %v vs %v", ft, bt)
	}

	want := []string{"b", "c"}
	if !reflect.DeepEqual(ft, want) {
		t.Errorf("Expected tokens %v, got %v", want, ft)
	}

	if fe[0].Article != be[0].Article {
		t.Errorf("Merge order changed canonical article: %+v vs %+v", fe[0].Article, be[0].Article)
	}
}

func TestMerger_DistinctKeysStaySeparate(t *testing.T) {
	m := NewMerger()

	m.Merge("https://one.example.com", "Fire", models.Article{URL: "u1", Title: "Fire"}, []string{"a"})
	m.Merge("https://two.example.com", "Fire", models.Article{URL: "u2", Title: "Fire"}, []string{"a"})

	if entries := m.Drain(); len(entries) != 2 {
		t.Errorf("Expected 2 entries for distinct servers, got %d", len(entries))
	}
}
