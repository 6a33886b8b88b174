package lbsolve

import "errors"

// Sentinel errors for misuse of the core types.

var (
	// ErrEmptySequence is returned when a partial solution is built from
	// zero words.
	ErrEmptySequence = errors.New("partial solution needs at least one word")

	// ErrChainBroken is returned by Extend when the new word's first
	// letter does not match the chain's last letter. The solver treats
	// this as an assertion failure: its expansion join filters by last
	// letter before extending, so the error can only mean a logic defect.
	ErrChainBroken = errors.New("first letter of new word does not match last letter of last word")

	// ErrInvalidLookup is returned by index lookups given a key that was
	// not built with one of the LookupKey constructors.
	ErrInvalidLookup = errors.New("provided lookup key is not valid")

	// ErrAlreadyStarted is returned by Start when the solver has already
	// been started.
	ErrAlreadyStarted = errors.New("solver already started")
)
