// SPDX-License-Identifier: MIT

package match

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/motif/mapping"
)

var (
	// ErrGraphNil is returned when the pattern or target graph is nil.
	ErrGraphNil = errors.New("match: graph is nil")

	// ErrOrientationMismatch is returned when exactly one graph is directed.
	ErrOrientationMismatch = errors.New("match: pattern and target orientation differ")

	// ErrInvalidOrder is returned when the vertex order is not a permutation
	// of the pattern vertices.
	ErrInvalidOrder = errors.New("match: invalid vertex order")

	// ErrNilCallback is returned when Run receives a nil callback.
	ErrNilCallback = errors.New("match: callback is nil")

	// ErrSearchInProgress is returned when Run is called on a Searcher that is
	// already running, typically from inside its own callback.
	ErrSearchInProgress = errors.New("match: search already in progress")

	// ErrUnknownVariant is returned by LookupVariant for an unregistered name.
	ErrUnknownVariant = errors.New("match: unknown variant")

	// ErrInvariantViolated is the panic value raised by WithAssertions when
	// the mapping or the dynamic counts lose consistency.
	ErrInvariantViolated = errors.New("match: search invariant violated")
)

// Signal is the cooperative cancellation signal returned by callbacks and
// propagated up the recursion.
type Signal uint8

const (
	// Continue asks the engine to keep enumerating.
	Continue Signal = iota
	// Stop unwinds the search immediately.
	Stop
)

// String returns "continue" or "stop".
func (s Signal) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// Callback receives every complete mapping. The mapping is owned by the
// engine and valid only for the duration of the call; copy what you need
// (Pairs, Targets) before returning.
type Callback func(m *mapping.Mapping) Signal

// Strength selects the adjacency-consistency predicate.
type Strength uint8

const (
	// Induced requires target edges among mapped vertices to have pattern
	// counterparts (induced subgraph isomorphism).
	Induced Strength = iota
	// Mono allows extra target edges (subgraph monomorphism).
	Mono
)

// String returns "induced" or "mono".
func (s Strength) String() string {
	switch s {
	case Induced:
		return "induced"
	case Mono:
		return "mono"
	default:
		return fmt.Sprintf("Strength(%d)", uint8(s))
	}
}

// Counting selects the structural count filter.
type Counting uint8

const (
	// CountOff disables counting.
	CountOff Counting = iota
	// CountForward bounds the pattern vertex's later-ordered neighbors by the
	// candidate's unassigned neighbors, recounted on every check.
	CountForward
	// CountBackward compares already-mapped neighbor counts on both sides,
	// recounted on every check.
	CountBackward
	// CountPrecomputed compares the static pattern backward tally with the
	// incrementally maintained target tally.
	CountPrecomputed
)

// String returns the lower-case name of c.
func (c Counting) String() string {
	switch c {
	case CountOff:
		return "off"
	case CountForward:
		return "forward"
	case CountBackward:
		return "backward"
	case CountPrecomputed:
		return "precomputed"
	default:
		return fmt.Sprintf("Counting(%d)", uint8(c))
	}
}

// Stats reports the work done by one Run.
type Stats struct {
	// States counts explore calls, terminal states included.
	States int64
	// Candidates counts (pattern, target) pairs tested for admissibility.
	Candidates int64
	// Matches counts callback invocations.
	Matches int64
	// Stopped is true when a callback returned Stop.
	Stopped bool
}
