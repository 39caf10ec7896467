// SPDX-License-Identifier: MIT

package match

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/motif/consistency"
)

// Option configures a Searcher. Option constructors panic on meaningless
// input; the engine itself never panics unless WithAssertions trips.
type Option func(*Options)

// Options holds the construction-time variant selection.
type Options struct {
	// Strength selects AdjacentMono or AdjacentInduced.
	Strength Strength

	// DegreePruning enables the degree filter.
	DegreePruning bool

	// Counting selects the structural count filter.
	Counting Counting

	// Parent restricts candidates to neighbors of the parent's image.
	Parent bool

	// VertexEquiv decides vertex compatibility; never nil after resolution.
	VertexEquiv consistency.VertexEquiv

	// EdgeEquiv decides edge compatibility; never nil after resolution.
	EdgeEquiv consistency.EdgeEquiv

	// Logger receives debug records at search start and finish.
	Logger *zap.Logger

	// Assertions re-verifies the mapping and counts after every assign and
	// release, panicking with ErrInvariantViolated on failure.
	Assertions bool
}

// DefaultOptions returns the plain induced engine:
//   - Strength Induced, no degree pruning, CountOff, no parent restriction
//   - label-free equivalence
//   - no-op logger, no assertions
func DefaultOptions() Options {
	return Options{
		Strength:      Induced,
		DegreePruning: false,
		Counting:      CountOff,
		Parent:        false,
		VertexEquiv:   consistency.AnyVertex,
		EdgeEquiv:     consistency.AnyEdge,
		Logger:        zap.NewNop(),
		Assertions:    false,
	}
}

// WithStrength selects Mono or Induced. Panics on other values.
func WithStrength(s Strength) Option {
	if s != Mono && s != Induced {
		panic(fmt.Sprintf("match: WithStrength(%v)", s))
	}
	return func(o *Options) {
		o.Strength = s
	}
}

// WithDegreePruning toggles the degree filter.
func WithDegreePruning(on bool) Option {
	return func(o *Options) {
		o.DegreePruning = on
	}
}

// WithCounting selects the structural count filter. Panics on unknown values.
func WithCounting(c Counting) Option {
	if c > CountPrecomputed {
		panic(fmt.Sprintf("match: WithCounting(%v)", c))
	}
	return func(o *Options) {
		o.Counting = c
	}
}

// WithParent toggles parent-restricted candidate scanning.
func WithParent(on bool) Option {
	return func(o *Options) {
		o.Parent = on
	}
}

// WithVertexEquiv installs a vertex compatibility predicate. Panics on nil.
func WithVertexEquiv(fn consistency.VertexEquiv) Option {
	if fn == nil {
		panic("match: WithVertexEquiv(nil)")
	}
	return func(o *Options) {
		o.VertexEquiv = fn
	}
}

// WithEdgeEquiv installs an edge compatibility predicate. Panics on nil.
func WithEdgeEquiv(fn consistency.EdgeEquiv) Option {
	if fn == nil {
		panic("match: WithEdgeEquiv(nil)")
	}
	return func(o *Options) {
		o.EdgeEquiv = fn
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAssertions toggles the invariant checks; meant for tests and debugging.
func WithAssertions(on bool) Option {
	return func(o *Options) {
		o.Assertions = on
	}
}
