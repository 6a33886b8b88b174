package dict

import "math/bits"

// LetterSet is a set of lowercase ASCII letters packed into a bitmask.
// The zero value is the empty set.
type LetterSet uint32

// NewLetterSet returns the set of letters appearing in s.
// Characters outside 'a'..'z' are ignored.
func NewLetterSet(s string) LetterSet {
	var ls LetterSet
	for i := 0; i < len(s); i++ {
		ls = ls.Add(s[i])
	}
	return ls
}

// Add returns the set with c included.
func (ls LetterSet) Add(c byte) LetterSet {
	if c < 'a' || c > 'z' {
		return ls
	}
	return ls | 1<<(c-'a')
}

// Has reports whether c is in the set.
func (ls LetterSet) Has(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return ls&(1<<(c-'a')) != 0
}

// Union returns the set of letters in either set.
func (ls LetterSet) Union(other LetterSet) LetterSet {
	return ls | other
}

// Count returns the number of letters in the set.
func (ls LetterSet) Count() int {
	return bits.OnesCount32(uint32(ls))
}

// Letters returns the set's letters in alphabetical order.
func (ls LetterSet) Letters() []byte {
	out := make([]byte, 0, ls.Count())
	for c := byte('a'); c <= 'z'; c++ {
		if ls.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (ls LetterSet) String() string {
	return string(ls.Letters())
}
