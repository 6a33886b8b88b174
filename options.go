package lbsolve

import "time"

// defaultStopTimeout bounds how long Stop waits for the search goroutine
// when join is requested.
const defaultStopTimeout = 10 * time.Second

// Strategy selects the traversal order the solver uses over the catalog.
// Both strategies find the same solutions; they differ in discovery order.
type Strategy int

const (
	// BreadthFirst expands every tracked candidate by one word per
	// generation and stops once a generation adds no new solutions.
	BreadthFirst Strategy = iota

	// DepthFirst works through words in descending unique-letter-count
	// tiers, favoring chains that cover many letters early. Discovery
	// order changes; correctness criteria do not.
	DepthFirst
)

// Options contains solver behavior settings.
// Use DefaultOptions() for default values.
type Options struct {
	// Strategy is the traversal order over the word catalog.
	// Default: BreadthFirst.
	Strategy Strategy

	// MaxDepth caps the number of generations, which bounds the number of
	// words in any candidate chain. Zero means no cap; the breadth-first
	// search then runs until a generation adds no new solutions.
	MaxDepth int

	// StopTimeout bounds how long Stop(join=true) blocks waiting for the
	// search goroutine to exit. Default: 10s.
	StopTimeout time.Duration
}

// DefaultOptions returns default options with the breadth-first strategy.
func DefaultOptions() Options {
	return Options{
		Strategy:    BreadthFirst,
		MaxDepth:    0,
		StopTimeout: defaultStopTimeout,
	}
}
