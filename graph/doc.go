// SPDX-License-Identifier: MIT

// Package graph provides the immutable, index-based graph representations
// consumed by the matching engine and the ordering heuristics.
//
// Vertices are dense integers 0..n-1. Directedness is part of the type:
// every concrete representation is parameterized by an Orientation marker
// (Undirected or Directed), so a directed pattern can never be matched
// against an undirected target by accident.
//
// Representations:
//
//   - EdgeList[D]       mutable, list-only builder used by loaders and fixtures.
//   - AdjacencyList[D]  compact CSR rows sorted by neighbor index (pattern side).
//   - ListMat[D]        AdjacencyList plus a bit matrix for O(1) Edge (target side).
//
// Both immutable forms expose the same read-only capability surface (Graph):
//
//	NumVertices() int
//	NumEdges() int
//	Directed() bool
//	Degree(v), OutDegree(v), InDegree(v) int
//	Edges(v), OutEdges(v), InEdges(v) []Neighbor
//	Edge(u, v) (Label, bool)
//
// For undirected graphs OutEdges, InEdges and Edges return the same row and the
// three degree queries agree. For directed graphs Edges is OutEdges and
// Degree is OutDegree + InDegree.
//
// Determinism:
//   - Rows are sorted by ascending neighbor index, so every scan is reproducible.
//
// Errors:
//
//	ErrVertexOutOfRange    - endpoint outside 0..n-1.
//	ErrLoopNotAllowed      - self-loop (u == v).
//	ErrMultiEdgeNotAllowed - parallel edge between the same endpoints.
package graph
