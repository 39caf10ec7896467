// SPDX-License-Identifier: MIT
//
// parents.go - parent relation for candidate restriction.
//
// Contract:
//   - The parent of x is the earliest-ordered neighbor of x placed before x.
//   - For one parent reachable both ways, the arc parent → x wins.
//   - Vertices with no earlier neighbor have ok == false and scan all targets.
//
// Complexity:
//   - Time: O(V + E).
//   - Space: O(V).
//
// Determinism:
//   - Depends only on g and the order positions.

package match

import "github.com/katalvlaran/motif/graph"

// parentLink ties a pattern vertex to its earliest-ordered earlier neighbor.
// out is true when the pattern arc runs parent → vertex, so candidates are
// the out-neighbors of the parent's image; false means in-neighbors.
type parentLink struct {
	vertex int
	out    bool
	ok     bool
}

// parentLinks computes the parent relation for every pattern vertex under
// pos. Arcs into x (parent → x) are preferred over arcs out of x when both
// reach the same parent; undirected graphs only ever produce out links.
// Complexity: O(V + E).
func parentLinks[G graph.Graph](g G, pos []int) []parentLink {
	links := make([]parentLink, g.NumVertices())
	for x := range links {
		best := parentLink{}
		bestPos := pos[x]
		for _, nb := range g.InEdges(x) {
			if pos[nb.Vertex] < bestPos {
				best = parentLink{vertex: nb.Vertex, out: true, ok: true}
				bestPos = pos[nb.Vertex]
			}
		}
		if g.Directed() {
			for _, nb := range g.OutEdges(x) {
				if pos[nb.Vertex] < bestPos {
					best = parentLink{vertex: nb.Vertex, out: false, ok: true}
					bestPos = pos[nb.Vertex]
				}
			}
		}
		links[x] = best
	}

	return links
}
