package lbsolve

import (
	"errors"
	"testing"

	"github.com/2pair/lbsolve/dict"
)

func words(texts ...string) []dict.Word {
	out := make([]dict.Word, len(texts))
	for i, t := range texts {
		out[i] = dict.NewWord(t)
	}
	return out
}

func mustChain(t *testing.T, texts ...string) PartialSolution {
	t.Helper()
	ps, err := NewPartialSolution(words(texts...)...)
	if err != nil {
		t.Fatalf("NewPartialSolution(%v) error = %v", texts, err)
	}
	return ps
}

func TestNewPartialSolutionEmpty(t *testing.T) {
	_, err := NewPartialSolution()
	if !errors.Is(err, ErrEmptySequence) {
		t.Errorf("NewPartialSolution() error = %v, want %v", err, ErrEmptySequence)
	}
}

func TestPartialSolutionExtend(t *testing.T) {
	base := mustChain(t, "rear")

	ext, err := base.Extend(dict.NewWord("racecar"))
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}
	if got, want := ext.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := ext.LastLetter(), byte('r'); got != want {
		t.Errorf("LastLetter() = %q, want %q", got, want)
	}
	if got, want := ext.UniqueCount(), 4; got != want {
		t.Errorf("UniqueCount() = %d, want %d", got, want)
	}
	if got, want := ext.String(), "rear-racecar"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// The receiver is untouched.
	if got, want := base.Len(), 1; got != want {
		t.Errorf("base.Len() after Extend = %d, want %d", got, want)
	}
}

func TestPartialSolutionExtendTwice(t *testing.T) {
	ps := mustChain(t, "rear", "racecar", "react")

	if got, want := ps.LastLetter(), byte('t'); got != want {
		t.Errorf("LastLetter() = %q, want %q", got, want)
	}
	if got, want := ps.UniqueCount(), 5; got != want {
		t.Errorf("UniqueCount() = %d, want %d", got, want)
	}
	if got, want := ps.String(), "rear-racecar-react"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPartialSolutionExtendChainBroken(t *testing.T) {
	ps := mustChain(t, "racecar")

	_, err := ps.Extend(dict.NewWord("driver"))
	if !errors.Is(err, ErrChainBroken) {
		t.Errorf("Extend() error = %v, want %v", err, ErrChainBroken)
	}
}

func TestPartialSolutionExtendSharesNoState(t *testing.T) {
	base := mustChain(t, "cat", "tap")

	first, err := base.Extend(dict.NewWord("pat"))
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}
	second, err := base.Extend(dict.NewWord("par"))
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	if got, want := first.String(), "cat-tap-pat"; got != want {
		t.Errorf("first.String() = %q, want %q", got, want)
	}
	if got, want := second.String(), "cat-tap-par"; got != want {
		t.Errorf("second.String() = %q, want %q", got, want)
	}
}

func TestPartialSolutionEqual(t *testing.T) {
	a := mustChain(t, "cat", "tap", "pat")
	b := mustChain(t, "cat", "tap", "pat")
	c := mustChain(t, "cat", "tap")

	if !a.Equal(b) {
		t.Error("Equal() = false for identical chains, want true")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for different chains, want false")
	}
}

func TestPartialSolutionContains(t *testing.T) {
	ps := mustChain(t, "cat", "tap")

	if !ps.Contains(dict.NewWord("tap")) {
		t.Error("Contains(tap) = false, want true")
	}
	if ps.Contains(dict.NewWord("pat")) {
		t.Error("Contains(pat) = true, want false")
	}
}

func indexedCandidates(t *testing.T) []PartialSolution {
	t.Helper()
	return []PartialSolution{
		mustChain(t, "cat", "tap", "pat"), // ends 't', 4 uniques
		mustChain(t, "rap", "par", "rat"), // ends 't', 4 uniques
		mustChain(t, "car", "rig", "gal"), // ends 'l', 6 uniques
		mustChain(t, "car", "rip", "pat"), // ends 't', 6 uniques
	}
}

func TestCandidateIndexInsertAndLookup(t *testing.T) {
	cands := indexedCandidates(t)
	ci := NewCandidateIndex()
	for _, c := range cands {
		ci.Insert(c)
	}

	if got, want := ci.Len(), 4; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	tests := []struct {
		name string
		key  LookupKey
		want []PartialSolution
	}{
		{
			name: "by last letter",
			key:  ByLastLetter('t'),
			want: []PartialSolution{cands[0], cands[1], cands[3]},
		},
		{
			name: "by unique count",
			key:  ByUniqueCount(6),
			want: []PartialSolution{cands[2], cands[3]},
		},
		{
			name: "by letter and count",
			key:  ByLetterAndCount('t', 4),
			want: []PartialSolution{cands[0], cands[1]},
		},
		{
			name: "by count and letter",
			key:  ByCountAndLetter(6, 'l'),
			want: []PartialSolution{cands[2]},
		},
		{
			name: "no matches",
			key:  ByLastLetter('z'),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ci.Lookup(tt.key)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Lookup() returned %d candidates, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("Lookup()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCandidateIndexLookupInvalidKey(t *testing.T) {
	ci := NewCandidateIndex()
	if _, err := ci.Lookup(LookupKey{}); !errors.Is(err, ErrInvalidLookup) {
		t.Errorf("Lookup(zero key) error = %v, want %v", err, ErrInvalidLookup)
	}
}

func TestCandidateIndexIterationOrder(t *testing.T) {
	cands := indexedCandidates(t)
	ci := NewCandidateIndex()
	for _, c := range cands {
		ci.Insert(c)
	}

	for i, c := range ci.All() {
		if !c.Equal(cands[i]) {
			t.Errorf("All()[%d] = %s, want %s", i, c, cands[i])
		}
	}
}

func TestCandidateIndexMergeSkipsDuplicates(t *testing.T) {
	cands := indexedCandidates(t)
	ci := NewCandidateIndex()
	ci.Insert(cands[0])
	ci.Insert(cands[1])

	ci.Merge([]PartialSolution{cands[1], cands[2], cands[2], cands[3]})

	if got, want := ci.Len(), 4; got != want {
		t.Errorf("Len() after merge = %d, want %d", got, want)
	}

	// Merging again changes nothing.
	ci.Merge(cands)
	if got, want := ci.Len(), 4; got != want {
		t.Errorf("Len() after second merge = %d, want %d", got, want)
	}
}
