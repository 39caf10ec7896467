// SPDX-License-Identifier: MIT

// Package order computes the vertex assignment order used by the matching
// engine. Every heuristic is a pure function Graph → permutation of 0..m-1,
// run once before the search and never consulted again.
//
// Heuristics:
//
//   - Identity                 0, 1, …, m-1.
//   - Degree                   descending degree, stable by index.
//   - RecursiveDegree          greedily the vertex with most edges into the
//     already chosen set; ties by degree, then index.
//   - GreatestConstraintFirst  most-constrained-first rank tuples; the order
//     the strongest engine variants are tuned for.
//
// Determinism:
//   - Every heuristic breaks full ties by the lower vertex index, so equal
//     inputs always give equal orders.
//
// Errors:
//
//	ErrNotPermutation    - Validate found a missing, repeated or out-of-range entry.
//	ErrUnknownHeuristic  - Lookup received an unregistered name.
package order
