package lbsolve

import "golang.org/x/exp/slices"

// Solution is a completed chain: a PartialSolution whose unique letters
// cover every letter on the box.
type Solution = PartialSolution

// SolutionIndex holds completed solutions grouped by chain length.
// Iteration always yields shorter solutions first, regardless of the
// order they were found in; within a length group, insertion order is
// preserved.
//
// The solver publishes into one SolutionIndex under its lock and hands
// out deep copies to readers, so a SolutionIndex itself needs no
// synchronization.
type SolutionIndex struct {
	byLength map[int][]Solution
	lengths  []int
	count    int
}

// NewSolutionIndex returns an empty index.
func NewSolutionIndex() *SolutionIndex {
	return &SolutionIndex{
		byLength: make(map[int][]Solution),
	}
}

// Insert adds solution to its length group. The first time a length is
// seen, the group iteration order is re-sorted so a newly found shorter
// length is visited before previously seen longer ones.
func (si *SolutionIndex) Insert(solution Solution) {
	length := solution.Len()
	if _, ok := si.byLength[length]; !ok {
		si.lengths = append(si.lengths, length)
		slices.Sort(si.lengths)
	}
	si.byLength[length] = append(si.byLength[length], solution)
	si.count++
}

// Contains reports whether a structurally equal solution is already
// present in any group.
func (si *SolutionIndex) Contains(solution Solution) bool {
	for _, s := range si.byLength[solution.Len()] {
		if s.Equal(solution) {
			return true
		}
	}
	return false
}

// Flatten returns all solutions in ascending-length, then insertion,
// order.
func (si *SolutionIndex) Flatten() []Solution {
	out := make([]Solution, 0, si.count)
	for _, length := range si.lengths {
		out = append(out, si.byLength[length]...)
	}
	return out
}

// Get returns the solutions with the given chain length, in insertion
// order. The returned slice must not be modified.
func (si *SolutionIndex) Get(length int) []Solution {
	return si.byLength[length]
}

// GetAt returns the i-th solution within the given length group.
func (si *SolutionIndex) GetAt(length, i int) (Solution, bool) {
	group := si.byLength[length]
	if i < 0 || i >= len(group) {
		return Solution{}, false
	}
	return group[i], true
}

// Lengths returns the chain lengths present, ascending. The returned
// slice must not be modified.
func (si *SolutionIndex) Lengths() []int {
	return si.lengths
}

// Len returns the total number of solutions across all groups.
func (si *SolutionIndex) Len() int {
	return si.count
}

// Clone returns an independent copy. Mutating the copy never affects the
// original; the chains themselves are write-once and safe to share.
func (si *SolutionIndex) Clone() *SolutionIndex {
	clone := &SolutionIndex{
		byLength: make(map[int][]Solution, len(si.byLength)),
		lengths:  slices.Clone(si.lengths),
		count:    si.count,
	}
	for length, group := range si.byLength {
		clone.byLength[length] = slices.Clone(group)
	}
	return clone
}
