// SPDX-License-Identifier: MIT
//
// equivalence.go - vertex and edge equivalence predicates.
//
// Contract:
//   - A VertexEquiv or EdgeEquiv must be pure and cheap; it is called once
//     per candidate check.
//   - AnyVertex and AnyEdge accept everything and are the defaults.
//
// Complexity:
//   - O(1) per call for the provided predicates.
//
// Determinism:
//   - Provided predicates depend only on their arguments.

package consistency

import "github.com/katalvlaran/motif/graph"

// VertexEquiv reports whether pattern vertex u may map to target vertex v.
type VertexEquiv func(u, v int) bool

// EdgeEquiv reports whether pattern arc p may map to target arc t.
type EdgeEquiv func(p, t graph.Arc) bool

// AnyVertex accepts every pair; it is the label-free default.
func AnyVertex(int, int) bool { return true }

// AnyEdge accepts every pair of arcs; it is the label-free default.
func AnyEdge(graph.Arc, graph.Arc) bool { return true }

// SameLabel accepts arcs with equal labels.
func SameLabel(p, t graph.Arc) bool { return p.Label == t.Label }

// VertexLabels returns a VertexEquiv accepting u → v when pattern[u] == target[v].
func VertexLabels[L comparable](pattern, target []L) VertexEquiv {
	return func(u, v int) bool { return pattern[u] == target[v] }
}
