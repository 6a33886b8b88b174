// Package dict builds the playable-word catalog for a letter box puzzle.
//
// A Catalog is constructed from a Box (the puzzle's four sides of three
// letters) and a word source. Words that cannot be played on the box are
// dropped during loading; the survivors are kept grouped by first letter
// and by unique-letter count so the solver can join against either order
// cheaply.
package dict

import (
	"context"
	"fmt"
	"strings"

	"github.com/2pair/lbsolve/dict/sources"
)

// Catalog holds every playable word for one puzzle, indexed by first
// letter and by unique-letter count. A Catalog is not safe for concurrent
// mutation; load it fully before sharing it.
type Catalog struct {
	box Box

	byFirst   map[byte][]Word
	byUniques map[int][]Word

	wordCount    int
	skippedCount int
}

// NewCatalog returns an empty catalog for the given box.
func NewCatalog(box Box) *Catalog {
	return &Catalog{
		box:       box,
		byFirst:   make(map[byte][]Word),
		byUniques: make(map[int][]Word),
	}
}

// Load pulls every word from the source and adds the playable ones.
// It may be called more than once to combine sources; duplicate words are
// kept only once.
func (c *Catalog) Load(ctx context.Context, src sources.Source) error {
	words, err := src.Words(ctx)
	if err != nil {
		return fmt.Errorf("failed to read words from source: %w", err)
	}
	for _, raw := range words {
		c.Add(raw)
	}
	return nil
}

// Add normalizes raw and adds it to the catalog if it is playable on the
// box and not already present. It reports whether the word was added.
func (c *Catalog) Add(raw string) bool {
	text := strings.ToLower(strings.TrimSpace(raw))
	if !c.box.Playable(text) || c.contains(text) {
		c.skippedCount++
		return false
	}
	word := NewWord(text)
	c.byFirst[word.First()] = append(c.byFirst[word.First()], word)
	c.byUniques[word.UniqueCount()] = append(c.byUniques[word.UniqueCount()], word)
	c.wordCount++
	return true
}

func (c *Catalog) contains(text string) bool {
	if text == "" {
		return false
	}
	for _, w := range c.byFirst[text[0]] {
		if w.text == text {
			return true
		}
	}
	return false
}

// Box returns the puzzle box the catalog was built for.
func (c *Catalog) Box() Box {
	return c.box
}

// LetterCount returns the number of distinct letters on the box, which is
// the solver's promotion threshold.
func (c *Catalog) LetterCount() int {
	return c.box.LetterCount()
}

// WordCount returns the number of playable words loaded so far.
func (c *Catalog) WordCount() int {
	return c.wordCount
}

// SkippedCount returns the number of source words rejected during loading.
func (c *Catalog) SkippedCount() int {
	return c.skippedCount
}

// OrderedByFirstLetter returns every word, scanning first letters
// 'a'..'z'. Within a letter, insertion order is preserved. The order is
// deterministic across runs.
func (c *Catalog) OrderedByFirstLetter() []Word {
	out := make([]Word, 0, c.wordCount)
	for letter := byte('a'); letter <= 'z'; letter++ {
		out = append(out, c.byFirst[letter]...)
	}
	return out
}

// OrderedByUniqueCount returns every word, ordered by ascending
// unique-letter count. Within a count, insertion order is preserved.
func (c *Catalog) OrderedByUniqueCount() []Word {
	out := make([]Word, 0, c.wordCount)
	for n := 1; n <= letterCount; n++ {
		out = append(out, c.byUniques[n]...)
	}
	return out
}

// WordsWithFirstLetter returns the words starting with the given letter.
func (c *Catalog) WordsWithFirstLetter(letter byte) []Word {
	return c.byFirst[letter]
}

// WordsWithUniqueCount returns the words with exactly n distinct letters.
func (c *Catalog) WordsWithUniqueCount(n int) []Word {
	return c.byUniques[n]
}

// letterCount is the size of the alphabet the catalog indexes over.
const letterCount = 26
