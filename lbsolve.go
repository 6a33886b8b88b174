// Package lbsolve finds word chains that solve "letter box" puzzles:
// four sides of three letters, and a solution is a sequence of dictionary
// words where each word starts with the letter the previous word ended
// on, no word uses two consecutive letters from one side, and the chain
// together covers every letter on the box. Solutions are ranked by fewest
// words.
//
// The search runs on a background goroutine and can be polled and stopped
// cooperatively from the caller's goroutine:
//
//	import (
//		"github.com/2pair/lbsolve"
//		"github.com/2pair/lbsolve/dict"
//		"github.com/2pair/lbsolve/dict/sources"
//		"github.com/2pair/lbsolve/dict/sources/file"
//	)
//
//	box, err := dict.ParseBox("abc def ghi jkl")
//	src, err := sources.Open("file", file.Config{Path: "/usr/share/dict/words"})
//	catalog := dict.NewCatalog(box)
//	err = catalog.Load(ctx, src)
//
//	solver := lbsolve.New(catalog, lbsolve.DefaultOptions())
//	err = solver.Start()
//	for solver.Running() {
//		time.Sleep(250 * time.Millisecond)
//	}
//	for _, solution := range solver.Solutions().Flatten() {
//		fmt.Println(solution)
//	}
package lbsolve

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/2pair/lbsolve/dict"
)

// Stats is a point-in-time snapshot of search progress, published at
// generation boundaries.
type Stats struct {
	// Generation is the number of completed expansion passes.
	Generation int

	// Candidates is the number of partial chains currently tracked.
	Candidates int

	// Solutions is the number of completed solutions found so far.
	Solutions int
}

// Solver searches a word catalog for letter box solutions on a dedicated
// background goroutine. All candidate mutation happens on that goroutine;
// the caller only reads, through lock-protected snapshot methods.
//
// A Solver moves through three states: idle (constructed), running
// (Start called, goroutine active), and stopped (the goroutine exited by
// convergence, depth limit, or Stop). A Solver cannot be restarted.
type Solver struct {
	catalog *dict.Catalog
	opts    Options

	mu         sync.Mutex
	started    bool
	solutions  *SolutionIndex
	closest    PartialSolution
	hasClosest bool
	stats      Stats

	stopFlag atomic.Bool
	done     chan struct{}

	// candidates is the search scratch space. It is owned exclusively by
	// the search goroutine and needs no synchronization.
	candidates *CandidateIndex
}

// New creates a solver over the given catalog. The solver does not start
// searching until Start is called.
func New(catalog *dict.Catalog, opts Options) *Solver {
	if opts.StopTimeout <= 0 {
		opts.StopTimeout = defaultStopTimeout
	}
	return &Solver{
		catalog:   catalog,
		opts:      opts,
		solutions: NewSolutionIndex(),
		done:      make(chan struct{}),
	}
}

// Start launches the search goroutine. Calling Start a second time
// returns ErrAlreadyStarted.
func (s *Solver) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	go s.run()
	return nil
}

// Stop requests a cooperative halt. The flag is checked at generation
// boundaries, so stop latency is bounded by the in-progress generation.
// With join, Stop blocks until the search goroutine exits or StopTimeout
// elapses.
func (s *Solver) Stop(join bool) {
	s.stopFlag.Store(true)
	if !join {
		return
	}
	select {
	case <-s.done:
	case <-time.After(s.opts.StopTimeout):
	}
}

// Running reports whether the search goroutine is active.
func (s *Solver) Running() bool {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// SolutionCount returns the number of solutions found so far.
func (s *Solver) SolutionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solutions.Len()
}

// Solutions returns an independent snapshot of the solutions found so
// far. Mutating the snapshot never affects the solver.
func (s *Solver) Solutions() *SolutionIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solutions.Clone()
}

// Stats returns the latest generation-boundary progress snapshot.
func (s *Solver) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// ClosestAttempt returns the incomplete chain covering the most box
// letters seen so far. It reports false until at least one candidate has
// been examined. Useful for explaining a search that found no solutions.
func (s *Solver) ClosestAttempt() (PartialSolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closest, s.hasClosest
}

func (s *Solver) stopRequested() bool {
	return s.stopFlag.Load()
}

// run drives the configured strategy to completion on the search
// goroutine.
func (s *Solver) run() {
	defer close(s.done)
	switch s.opts.Strategy {
	case DepthFirst:
		s.runDepthFirst()
	default:
		s.runBreadthFirst()
	}
}

// runBreadthFirst expands every tracked candidate by one word per
// generation. It stops when a generation finds no new solutions after at
// least one has been found (deeper chains cannot beat an already-found
// minimal length), when MaxDepth generations have run, or when a stop
// was requested.
func (s *Solver) runBreadthFirst() {
	s.candidates = s.seedCandidates()
	s.publishProgress(0)

	haveSolutions := false
	for depth := 1; !s.stopRequested(); depth++ {
		found := s.advanceGeneration()
		s.publishProgress(depth)
		if found > 0 {
			haveSolutions = true
		}
		if haveSolutions && found == 0 {
			break
		}
		if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
			break
		}
	}
}

// runDepthFirst favors chains that cover many letters early: single
// words covering the whole box are promoted outright, then the catalog
// is worked through in descending unique-letter-count tiers, repeated up
// to one pass per box letter. The stop flag is honored between tiers.
func (s *Solver) runDepthFirst() {
	s.candidates = NewCandidateIndex()
	total := s.catalog.LetterCount()

	for _, word := range s.catalog.WordsWithUniqueCount(total) {
		if ps, err := NewPartialSolution(word); err == nil {
			s.addSolution(ps)
		}
	}

	depth := 0
	for pass := 0; pass < total && !s.stopRequested(); pass++ {
		for tier := total - 1; tier >= 1 && !s.stopRequested(); tier-- {
			s.expandTier(tier)
			depth++
			s.publishProgress(depth)
		}
	}
}

// seedCandidates builds the one-word chains forming generation zero,
// ordered by unique-letter count for a deterministic initial ordering.
func (s *Solver) seedCandidates() *CandidateIndex {
	seeds := NewCandidateIndex()
	for _, word := range s.catalog.OrderedByUniqueCount() {
		ps, err := NewPartialSolution(word)
		if err != nil {
			panic(fmt.Sprintf("lbsolve: seeding %q: %v", word, err))
		}
		seeds.Insert(ps)
	}
	return seeds
}

// advanceGeneration runs one full expansion of the candidate index
// against the catalog, promotes completed chains, and merges the
// survivors back for the next generation. It returns the number of newly
// promoted solutions.
func (s *Solver) advanceGeneration() int {
	fresh := NewCandidateIndex()
	for _, word := range s.catalog.OrderedByFirstLetter() {
		fresh.Merge(s.extendThrough(word))
	}
	promoted := s.promote(fresh)

	survivors := make([]PartialSolution, 0, fresh.Len())
	for _, candidate := range fresh.All() {
		if _, ok := promoted[candidate.String()]; ok {
			continue
		}
		survivors = append(survivors, candidate)
	}
	s.candidates.Merge(survivors)
	return len(promoted)
}

// extendThrough returns every chain formed by appending word to a
// tracked candidate ending in word's first letter. Candidates already
// containing word are skipped here, once per join, rather than inside
// Extend.
func (s *Solver) extendThrough(word dict.Word) []PartialSolution {
	matches, err := s.candidates.Lookup(ByLastLetter(word.First()))
	if err != nil {
		panic(fmt.Sprintf("lbsolve: candidate lookup: %v", err))
	}
	extended := make([]PartialSolution, 0, len(matches))
	for _, candidate := range matches {
		if candidate.Contains(word) {
			continue
		}
		ext, err := candidate.Extend(word)
		if err != nil {
			// The join above filtered by last letter, so a chain
			// violation here is a logic defect, not a data condition.
			panic(fmt.Sprintf("lbsolve: extending %q with %q: %v", candidate, word, err))
		}
		extended = append(extended, ext)
	}
	return extended
}

// promote publishes every chain in fresh that covers the full box
// alphabet, returning the string keys of the newly promoted chains.
// Chains re-forming an already published solution do not count as
// promoted; they rejoin the survivor set like any other candidate, so a
// generation that only re-discovers known solutions reports zero finds
// and lets the search converge. Incomplete chains update the
// closest-attempt tracker.
func (s *Solver) promote(fresh *CandidateIndex) map[string]struct{} {
	target := s.catalog.LetterCount()
	promoted := make(map[string]struct{})

	var best PartialSolution
	haveBest := false
	for _, candidate := range fresh.All() {
		if candidate.UniqueCount() != target {
			if !haveBest || candidate.UniqueCount() > best.UniqueCount() {
				best = candidate
				haveBest = true
			}
			continue
		}
		if !s.addSolution(candidate) {
			continue
		}
		promoted[candidate.String()] = struct{}{}
	}
	if haveBest {
		s.noteClosest(best)
	}
	return promoted
}

// addSolution publishes a newly completed solution under the lock and
// reports whether it was new. Solutions appear to readers one at a time,
// never as a partially built index.
func (s *Solver) addSolution(solution Solution) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solutions.Contains(solution) {
		return false
	}
	s.solutions.Insert(solution)
	return true
}

// noteClosest records the incomplete chain covering the most letters.
func (s *Solver) noteClosest(candidate PartialSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasClosest || candidate.UniqueCount() > s.closest.UniqueCount() {
		s.closest = candidate
		s.hasClosest = true
	}
}

// publishProgress records a generation-boundary stats snapshot.
func (s *Solver) publishProgress(generation int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = Stats{
		Generation: generation,
		Candidates: s.candidates.Len(),
		Solutions:  s.solutions.Len(),
	}
}

// expandTier merges one-word roots for every word in the tier, then
// extends tracked candidates through each tier word, promoting completed
// chains as they appear.
func (s *Solver) expandTier(tier int) {
	words := s.catalog.WordsWithUniqueCount(tier)

	roots := make([]PartialSolution, 0, len(words))
	for _, word := range words {
		if ps, err := NewPartialSolution(word); err == nil {
			roots = append(roots, ps)
		}
	}
	s.candidates.Merge(roots)

	for _, word := range words {
		fresh := NewCandidateIndex()
		fresh.Merge(s.extendThrough(word))
		promoted := s.promote(fresh)

		survivors := make([]PartialSolution, 0, fresh.Len())
		for _, candidate := range fresh.All() {
			if _, ok := promoted[candidate.String()]; ok {
				continue
			}
			survivors = append(survivors, candidate)
		}
		s.candidates.Merge(survivors)
	}
}
