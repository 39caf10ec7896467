// SPDX-License-Identifier: MIT
//
// adjacency.go - degree and adjacency admissibility.
//
// Contract:
//   - Predicates are pure: they read g, h and the mapping and change nothing.
//   - AdjacentMono: every pattern arc between u and a mapped vertex has a
//     matching target arc under EdgeEquiv.
//   - AdjacentInduced: AdjacentMono, and every target arc between v and a used
//     target vertex has a matching pattern arc.
//
// Complexity:
//   - DegreeCondition O(1); AdjacentMono O(deg(u)) Edge lookups;
//     AdjacentInduced adds O(deg(v)) lookups.
//
// Determinism:
//   - Results depend only on the arguments.

package consistency

import (
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/mapping"
)

// DegreeCondition reports whether pattern vertex u fits into target vertex v
// by degree: deg(u) ≤ deg(v), checked separately for out- and in-degree on
// directed graphs.
// Complexity: O(1).
func DegreeCondition[G, H graph.Graph](g G, u int, h H, v int) bool {
	if g.Directed() {
		return g.OutDegree(u) <= h.OutDegree(v) && g.InDegree(u) <= h.InDegree(v)
	}

	return g.Degree(u) <= h.Degree(v)
}

// AdjacentMono checks the monomorphism condition for u → v: for every mapped
// pattern neighbor i of u, m(i) is a target neighbor of v in the same
// direction and eq accepts the two arcs. Extra target edges are allowed.
// Complexity: O(deg(u)) Edge lookups on h.
func AdjacentMono[G, H graph.Graph](g G, u int, h H, v int, m *mapping.Mapping, eq EdgeEquiv) bool {
	for _, nb := range g.OutEdges(u) {
		j, ok := m.Image(nb.Vertex)
		if !ok {
			continue
		}
		lbl, ok := h.Edge(v, j)
		if !ok || !eq(graph.Arc{From: u, To: nb.Vertex, Label: nb.Label}, graph.Arc{From: v, To: j, Label: lbl}) {
			return false
		}
	}
	if !g.Directed() {
		return true
	}
	for _, nb := range g.InEdges(u) {
		j, ok := m.Image(nb.Vertex)
		if !ok {
			continue
		}
		lbl, ok := h.Edge(j, v)
		if !ok || !eq(graph.Arc{From: nb.Vertex, To: u, Label: nb.Label}, graph.Arc{From: j, To: v, Label: lbl}) {
			return false
		}
	}

	return true
}

// AdjacentInduced checks the induced condition for u → v: AdjacentMono, and
// for every mapped target neighbor j of v, its pre-image is a pattern
// neighbor of u in the same direction.
// Complexity: O(deg(u)) Edge lookups on h plus O(deg(v)) lookups on g.
func AdjacentInduced[G, H graph.Graph](g G, u int, h H, v int, m *mapping.Mapping, eq EdgeEquiv) bool {
	if !AdjacentMono(g, u, h, v, m, eq) {
		return false
	}
	for _, nb := range h.OutEdges(v) {
		i, ok := m.PreImage(nb.Vertex)
		if !ok {
			continue
		}
		if _, ok = g.Edge(u, i); !ok {
			return false
		}
	}
	if !h.Directed() {
		return true
	}
	for _, nb := range h.InEdges(v) {
		i, ok := m.PreImage(nb.Vertex)
		if !ok {
			continue
		}
		if _, ok = g.Edge(i, u); !ok {
			return false
		}
	}

	return true
}
