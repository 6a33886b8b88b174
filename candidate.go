package lbsolve

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/2pair/lbsolve/dict"
)

// wordSeparator joins chain words in a PartialSolution's string form.
const wordSeparator = "-"

// PartialSolution is an ordered chain of words in which each word begins
// with the letter the previous word ended on. It is write-once: Extend
// returns a fresh value and never mutates the receiver. The last letter
// and accumulated unique-letter set are computed at construction and
// cached.
type PartialSolution struct {
	words      []dict.Word
	lastLetter byte
	uniques    dict.LetterSet
}

// NewPartialSolution builds a chain from the given words. It returns
// ErrEmptySequence for zero words and ErrChainBroken if consecutive words
// do not link first letter to last letter.
func NewPartialSolution(words ...dict.Word) (PartialSolution, error) {
	if len(words) == 0 {
		return PartialSolution{}, ErrEmptySequence
	}
	ps := PartialSolution{
		words:      words[:1:1],
		lastLetter: words[0].Last(),
		uniques:    words[0].Uniques(),
	}
	for _, word := range words[1:] {
		var err error
		if ps, err = ps.Extend(word); err != nil {
			return PartialSolution{}, err
		}
	}
	return ps, nil
}

// Extend returns a new chain equal to the receiver plus word. It returns
// ErrChainBroken when word does not start with the chain's last letter.
// Extend does not check for repeated words; rejecting a repeat is the
// caller's job during the candidate join, where it is done once instead
// of inside every call.
func (ps PartialSolution) Extend(word dict.Word) (PartialSolution, error) {
	if ps.lastLetter != 0 && ps.lastLetter != word.First() {
		return PartialSolution{}, ErrChainBroken
	}
	words := make([]dict.Word, len(ps.words)+1)
	copy(words, ps.words)
	words[len(ps.words)] = word
	return PartialSolution{
		words:      words,
		lastLetter: word.Last(),
		uniques:    ps.uniques.Union(word.Uniques()),
	}, nil
}

// Len returns the number of words in the chain.
func (ps PartialSolution) Len() int {
	return len(ps.words)
}

// Words returns the chain's words in order. The returned slice must not
// be modified.
func (ps PartialSolution) Words() []dict.Word {
	return ps.words
}

// LastLetter returns the last letter of the chain's final word.
func (ps PartialSolution) LastLetter() byte {
	return ps.lastLetter
}

// Uniques returns the union of unique letters across the chain's words.
func (ps PartialSolution) Uniques() dict.LetterSet {
	return ps.uniques
}

// UniqueCount returns the number of distinct letters the chain covers.
func (ps PartialSolution) UniqueCount() int {
	return ps.uniques.Count()
}

// Contains reports whether word already appears in the chain.
func (ps PartialSolution) Contains(word dict.Word) bool {
	for _, w := range ps.words {
		if w == word {
			return true
		}
	}
	return false
}

// Equal reports structural equality: same words in the same order.
func (ps PartialSolution) Equal(other PartialSolution) bool {
	if len(ps.words) != len(other.words) {
		return false
	}
	for i, w := range ps.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}

// String returns the chain's words joined by "-", e.g. "could-drain-nearby".
// Two chains are structurally equal exactly when their string forms match,
// so the index also uses this as its dedup key.
func (ps PartialSolution) String() string {
	var b strings.Builder
	for i, w := range ps.words {
		if i > 0 {
			b.WriteString(wordSeparator)
		}
		b.WriteString(w.String())
	}
	return b.String()
}

// lookupKind tags the shape of a LookupKey.
type lookupKind int

const (
	lookupInvalid lookupKind = iota
	lookupByLetter
	lookupByCount
	lookupByLetterAndCount
	lookupByCountAndLetter
)

// LookupKey selects candidates in a CandidateIndex. Build one with
// ByLastLetter, ByUniqueCount, ByLetterAndCount, or ByCountAndLetter;
// the zero value is rejected with ErrInvalidLookup.
type LookupKey struct {
	kind   lookupKind
	letter byte
	count  int
}

// ByLastLetter selects every candidate whose chain ends in letter.
func ByLastLetter(letter byte) LookupKey {
	return LookupKey{kind: lookupByLetter, letter: letter}
}

// ByUniqueCount selects every candidate covering exactly count distinct
// letters.
func ByUniqueCount(count int) LookupKey {
	return LookupKey{kind: lookupByCount, count: count}
}

// ByLetterAndCount selects candidates ending in letter and covering
// exactly count distinct letters, grouped letter-first.
func ByLetterAndCount(letter byte, count int) LookupKey {
	return LookupKey{kind: lookupByLetterAndCount, letter: letter, count: count}
}

// ByCountAndLetter is the symmetric pair lookup, grouped count-first.
// It matches the same candidates as ByLetterAndCount with the arguments
// swapped.
func ByCountAndLetter(count int, letter byte) LookupKey {
	return LookupKey{kind: lookupByCountAndLetter, letter: letter, count: count}
}

// CandidateIndex tracks partial solutions under two symmetric groupings,
// by last letter then unique-letter count and by unique-letter count then
// last letter, plus a flat insertion-ordered list. All three views always
// hold the same entries. The dual keying makes the expansion join cheap:
// "which candidates end in letter X" runs once per word per generation.
//
// A CandidateIndex is not safe for concurrent use; the solver confines
// each index to its search goroutine.
type CandidateIndex struct {
	byLetterByCount map[byte]map[int][]PartialSolution
	byCountByLetter map[int]map[byte][]PartialSolution
	linear          []PartialSolution

	// seen holds the string form of every tracked chain so Merge can skip
	// duplicates without scanning the flat list.
	seen map[string]struct{}
}

// NewCandidateIndex returns an empty index.
func NewCandidateIndex() *CandidateIndex {
	return &CandidateIndex{
		byLetterByCount: make(map[byte]map[int][]PartialSolution),
		byCountByLetter: make(map[int]map[byte][]PartialSolution),
		seen:            make(map[string]struct{}),
	}
}

// Insert adds candidate to all three views. It does not check for
// duplicates; use Merge when the source may overlap with tracked entries.
func (ci *CandidateIndex) Insert(candidate PartialSolution) {
	letter := candidate.LastLetter()
	count := candidate.UniqueCount()

	byCount := ci.byLetterByCount[letter]
	if byCount == nil {
		byCount = make(map[int][]PartialSolution)
		ci.byLetterByCount[letter] = byCount
	}
	byCount[count] = append(byCount[count], candidate)

	byLetter := ci.byCountByLetter[count]
	if byLetter == nil {
		byLetter = make(map[byte][]PartialSolution)
		ci.byCountByLetter[count] = byLetter
	}
	byLetter[letter] = append(byLetter[letter], candidate)

	ci.linear = append(ci.linear, candidate)
	ci.seen[candidate.String()] = struct{}{}
}

// Merge inserts every candidate from other, skipping chains already
// tracked. Merging a collection containing an already-present candidate
// never increases the count.
func (ci *CandidateIndex) Merge(other []PartialSolution) {
	for _, candidate := range other {
		if ci.Has(candidate) {
			continue
		}
		ci.Insert(candidate)
	}
}

// Has reports whether a structurally equal chain is already tracked.
func (ci *CandidateIndex) Has(candidate PartialSolution) bool {
	_, ok := ci.seen[candidate.String()]
	return ok
}

// Lookup returns the candidates matching key, in insertion order within
// each group. A missing group yields an empty slice; a key not built by
// one of the constructors yields ErrInvalidLookup.
func (ci *CandidateIndex) Lookup(key LookupKey) ([]PartialSolution, error) {
	switch key.kind {
	case lookupByLetter:
		byCount := ci.byLetterByCount[key.letter]
		counts := maps.Keys(byCount)
		slices.Sort(counts)
		var out []PartialSolution
		for _, count := range counts {
			out = append(out, byCount[count]...)
		}
		return out, nil
	case lookupByCount:
		byLetter := ci.byCountByLetter[key.count]
		letters := maps.Keys(byLetter)
		slices.Sort(letters)
		var out []PartialSolution
		for _, letter := range letters {
			out = append(out, byLetter[letter]...)
		}
		return out, nil
	case lookupByLetterAndCount:
		return ci.byLetterByCount[key.letter][key.count], nil
	case lookupByCountAndLetter:
		return ci.byCountByLetter[key.count][key.letter], nil
	default:
		return nil, ErrInvalidLookup
	}
}

// All returns every tracked candidate in insertion order. The returned
// slice must not be modified.
func (ci *CandidateIndex) All() []PartialSolution {
	return ci.linear
}

// Len returns the number of tracked candidates.
func (ci *CandidateIndex) Len() int {
	return len(ci.linear)
}
