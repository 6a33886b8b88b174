package dict

import (
	"fmt"
	"strings"
)

const (
	// sideCount is the number of sides on a letter box.
	sideCount = 4

	// lettersPerSide is the number of letters on each side.
	lettersPerSide = 3

	// MinWordLength is the shortest word the puzzle accepts.
	MinWordLength = 3
)

// Box is the puzzle's set of letters, split across four sides of three
// letters each. A word is playable when it only uses box letters and never
// uses two consecutive letters from the same side.
type Box struct {
	sides [sideCount]LetterSet
	all   LetterSet
}

// NewBox builds a Box from four sides of three letters each. Letters are
// lowercased; a side with the wrong number of letters, a letter outside
// 'a'..'z', or a letter appearing twice on the box is an error.
func NewBox(sides [sideCount]string) (Box, error) {
	var b Box
	for i, side := range sides {
		side = strings.ToLower(strings.TrimSpace(side))
		if len(side) != lettersPerSide {
			return Box{}, fmt.Errorf("side %d: want %d letters, got %q", i+1, lettersPerSide, side)
		}
		for j := 0; j < len(side); j++ {
			c := side[j]
			if c < 'a' || c > 'z' {
				return Box{}, fmt.Errorf("side %d: %q is not a letter", i+1, c)
			}
			if b.all.Has(c) {
				return Box{}, fmt.Errorf("letter %q appears more than once on the box", c)
			}
			b.sides[i] = b.sides[i].Add(c)
			b.all = b.all.Add(c)
		}
	}
	return b, nil
}

// ParseBox builds a Box from a single string of four space- or
// comma-separated sides, e.g. "abc def ghi jkl".
func ParseBox(s string) (Box, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) != sideCount {
		return Box{}, fmt.Errorf("want %d letter groups, got %d", sideCount, len(fields))
	}
	var sides [sideCount]string
	copy(sides[:], fields)
	return NewBox(sides)
}

// Letters returns every letter on the box.
func (b Box) Letters() LetterSet {
	return b.all
}

// LetterCount returns the number of distinct letters on the box.
func (b Box) LetterCount() int {
	return b.all.Count()
}

// Contains reports whether c is on the box.
func (b Box) Contains(c byte) bool {
	return b.all.Has(c)
}

// SideOf returns the index of the side holding c, or -1 if c is not on
// the box.
func (b Box) SideOf(c byte) int {
	for i, side := range b.sides {
		if side.Has(c) {
			return i
		}
	}
	return -1
}

// Playable reports whether word can be played on the box: at least
// MinWordLength letters, every letter on the box, and no two consecutive
// letters from the same side.
func (b Box) Playable(word string) bool {
	if len(word) < MinWordLength {
		return false
	}
	prev := -1
	for i := 0; i < len(word); i++ {
		side := b.SideOf(word[i])
		if side < 0 || side == prev {
			return false
		}
		prev = side
	}
	return true
}
