package dict

import (
	"context"
	"errors"
	"testing"
)

// sliceSource is an in-memory word source for testing.
type sliceSource struct {
	words []string
	err   error
}

func (s *sliceSource) Words(ctx context.Context) ([]string, error) {
	return s.words, s.err
}

func (s *sliceSource) Close() error {
	return nil
}

var scenarioWords = []string{"car", "care", "cold", "could", "dare", "drain", "end", "noun", "nearby"}

func scenarioCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog := NewCatalog(mustBox(t, "aob crn deu ily"))
	if err := catalog.Load(context.Background(), &sliceSource{words: scenarioWords}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return catalog
}

func TestCatalogLoad(t *testing.T) {
	catalog := scenarioCatalog(t)

	if got, want := catalog.WordCount(), len(scenarioWords); got != want {
		t.Errorf("WordCount() = %d, want %d", got, want)
	}
	if got, want := catalog.SkippedCount(), 0; got != want {
		t.Errorf("SkippedCount() = %d, want %d", got, want)
	}
	if got, want := catalog.LetterCount(), 12; got != want {
		t.Errorf("LetterCount() = %d, want %d", got, want)
	}
}

func TestCatalogLoadError(t *testing.T) {
	catalog := NewCatalog(mustBox(t, "aob crn deu ily"))
	sourceErr := errors.New("connection refused")

	err := catalog.Load(context.Background(), &sliceSource{err: sourceErr})
	if !errors.Is(err, sourceErr) {
		t.Errorf("Load() error = %v, want wrapped %v", err, sourceErr)
	}
}

func TestCatalogAdd(t *testing.T) {
	catalog := NewCatalog(mustBox(t, "aob crn deu ily"))

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "playable word", raw: "could", want: true},
		{name: "normalized before checking", raw: " Drain\n", want: true},
		{name: "duplicate", raw: "could", want: false},
		{name: "too short", raw: "an", want: false},
		{name: "off-box letter", raw: "cart", want: false},
		{name: "same-side consecutive letters", raw: "bad", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.Add(tt.raw); got != tt.want {
				t.Errorf("Add(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}

	if got, want := catalog.WordCount(), 2; got != want {
		t.Errorf("WordCount() = %d, want %d", got, want)
	}
	if got, want := catalog.SkippedCount(), 4; got != want {
		t.Errorf("SkippedCount() = %d, want %d", got, want)
	}
}

func TestCatalogOrderedByFirstLetter(t *testing.T) {
	catalog := scenarioCatalog(t)

	want := []string{"car", "care", "cold", "could", "dare", "drain", "end", "noun", "nearby"}
	got := catalog.OrderedByFirstLetter()
	if len(got) != len(want) {
		t.Fatalf("OrderedByFirstLetter() returned %d words, want %d", len(got), len(want))
	}
	for i, w := range got {
		if w.String() != want[i] {
			t.Errorf("OrderedByFirstLetter()[%d] = %q, want %q", i, w, want[i])
		}
	}
}

func TestCatalogOrderedByUniqueCount(t *testing.T) {
	catalog := scenarioCatalog(t)

	got := catalog.OrderedByUniqueCount()
	if len(got) != len(scenarioWords) {
		t.Fatalf("OrderedByUniqueCount() returned %d words, want %d", len(got), len(scenarioWords))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].UniqueCount() > got[i].UniqueCount() {
			t.Errorf("OrderedByUniqueCount()[%d] has %d uniques, before %d with %d",
				i-1, got[i-1].UniqueCount(), i, got[i].UniqueCount())
		}
	}
}

func TestCatalogGroupLookups(t *testing.T) {
	catalog := scenarioCatalog(t)

	dWords := catalog.WordsWithFirstLetter('d')
	if got, want := len(dWords), 2; got != want {
		t.Fatalf("WordsWithFirstLetter('d') returned %d words, want %d", got, want)
	}
	if dWords[0].String() != "dare" || dWords[1].String() != "drain" {
		t.Errorf("WordsWithFirstLetter('d') = [%s %s], want [dare drain]", dWords[0], dWords[1])
	}

	// "noun" has 3 unique letters, "car" and "end" also land in their tiers.
	threes := catalog.WordsWithUniqueCount(3)
	for _, w := range threes {
		if w.UniqueCount() != 3 {
			t.Errorf("WordsWithUniqueCount(3) contains %q with %d uniques", w, w.UniqueCount())
		}
	}
	if got := catalog.WordsWithUniqueCount(13); len(got) != 0 {
		t.Errorf("WordsWithUniqueCount(13) returned %d words, want 0", len(got))
	}
}
