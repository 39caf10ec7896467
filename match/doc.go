// SPDX-License-Identifier: MIT

// Package match implements the backtracking engine that enumerates subgraph
// monomorphisms and induced subgraph isomorphisms from a pattern graph into
// a target graph.
//
// The engine walks a fixed vertex order of the pattern. At position k it
// scans target candidates for order[k] in ascending index order, keeps those
// that pass the enabled admissibility checks, assigns each in turn and
// recurses. Every complete mapping is handed to the caller's Callback, which
// returns Continue or Stop.
//
// Four independent pruning axes select the variant:
//
//   - Strength       Mono (non-induced) or Induced; the adjacency check is always on.
//   - DegreePruning  reject candidates whose degree is too small.
//   - Counting       CountOff, CountForward, CountBackward or CountPrecomputed.
//   - Parent         restrict candidates to target neighbors of the image of
//     the earliest already-ordered pattern neighbor.
//
// Pruning never changes the output: for fixed graphs, order and equivalence
// predicates every combination emits the same mappings in the same order.
//
// Options:
//
//   - WithStrength(s)          Mono or Induced (default Induced).
//   - WithDegreePruning(on)    degree filter.
//   - WithCounting(c)          structural count filter.
//   - WithParent(on)           parent-restricted candidates.
//   - WithVertexEquiv(fn)      vertex compatibility (default: any).
//   - WithEdgeEquiv(fn)        edge compatibility (default: any).
//   - WithLogger(l)            zap logger for search start/finish (default: no-op).
//   - WithAssertions(on)       verify the mapping invariants after every step.
//
// Cancellation:
//   - The callback returns Stop, or RunContext observes a done context; either
//     way every assignment is released before Run returns.
//
// Concurrency:
//   - A Searcher owns its mapping and counts; it runs on the caller's
//     goroutine and must not be shared by concurrent Run calls. Graphs and
//     orders are read-only and may be shared.
//
// Errors:
//
//	ErrGraphNil             - pattern or target is nil.
//	ErrOrientationMismatch  - one graph is directed, the other is not.
//	ErrInvalidOrder         - order is not a permutation of the pattern vertices.
//	ErrNilCallback          - Run received a nil callback.
//	ErrSearchInProgress     - Run was re-entered from inside a callback.
//	ErrUnknownVariant       - LookupVariant received an unregistered name.
//
// Zero mappings is a normal outcome, not an error.
package match
