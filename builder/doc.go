// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for the synthetic
// graphs used as matching fixtures: patterns (paths, cycles, stars, cliques)
// and targets (grids, random sparse and random regular graphs).
//
// Every constructor is a Constructor closure applied by BuildGraph to a fresh
// graph.EdgeList. Constructors append their own block of vertices, so
// composing several of them in one BuildGraph call yields their disjoint union.
//
// Topologies:
//
//	Path(n)               P_n, n ≥ 2.
//	Cycle(n)              C_n, n ≥ 3.
//	Star(n)               center plus n-1 leaves, n ≥ 2.
//	Wheel(n)              C_{n-1} plus a center joined to every rim vertex, n ≥ 4.
//	Complete(n)           K_n, n ≥ 1 (both arcs per pair when directed).
//	CompleteBipartite(a,b) K_{a,b}, left block first (left→right when directed).
//	Grid(r,c)             r×c 4-neighborhood lattice, row-major.
//	RandomSparse(n,p)     Erdős–Rényi-like G(n,p).
//	RandomRegular(n,d)    undirected d-regular graph by stub matching.
//
// Options:
//
//	WithSeed(seed)   reproducible RNG for Random* constructors.
//	WithRand(r)      explicit RNG.
//	WithLabelFn(fn)  per-edge label generator (default: unlabeled, label 0).
//
// Determinism:
//   - Same options, seed and constructor order ⇒ identical edge lists.
//
// Errors:
//
//	ErrTooFewVertices        size parameter below the documented minimum.
//	ErrInvalidProbability    p outside [0,1].
//	ErrNeedRandSource        stochastic constructor without an RNG.
//	ErrUnsupportedGraphMode  constructor incompatible with the orientation.
//	ErrConstructFailed       nil constructor or retries exhausted.
package builder
