// SPDX-License-Identifier: MIT
//
// gcf.go - GreatestConstraintFirst.
//
// Contract:
//   - Picks, step by step, the unchosen vertex with the greatest rank
//     (chosen neighbors, then frontier neighbors, then open degree).
//   - The first pick is the vertex of greatest degree.
//   - Ties go to the lower vertex index.
//
// Complexity:
//   - Time: O(V² + Σ deg²).
//   - Space: O(V).
//
// Determinism:
//   - Output depends only on g.

package order

import "github.com/katalvlaran/motif/graph"

// vertex states for GreatestConstraintFirst
const (
	unvisited = iota // not chosen, no chosen neighbor
	frontier         // not chosen, adjacent to a chosen vertex
	visited          // chosen
)

// rank is the selection key of one vertex; the index is the final tie-break.
type rank struct {
	chosen   int // neighbors already chosen
	frontier int // neighbors on the frontier
	open     int // starts at degree; drops when an unvisited neighbor is chosen
}

func (r rank) less(o rank) bool {
	if r.chosen != o.chosen {
		return r.chosen < o.chosen
	}
	if r.frontier != o.frontier {
		return r.frontier < o.frontier
	}

	return r.open < o.open
}

// GreatestConstraintFirst orders vertices most-constrained-first.
//
// Each step picks the unchosen vertex with the largest rank
// (chosen, frontier, open); the lower index wins full ties. Then:
//   - if the pick was unvisited, its neighbors lose one open;
//   - if it was on the frontier, its neighbors lose one frontier;
//   - every neighbor gains one chosen, and each unvisited neighbor joins the
//     frontier, giving one frontier to each of its own neighbors.
//
// Complexity: O(m² + Σ deg²) time, O(m) space.
func GreatestConstraintFirst(g graph.Graph) []int {
	m := g.NumVertices()
	ranks := make([]rank, m)
	state := make([]uint8, m)
	for v := range ranks {
		ranks[v].open = g.Degree(v)
	}

	out := make([]int, 0, m)
	for len(out) < m {
		u := -1
		for v := 0; v < m; v++ {
			if state[v] == visited {
				continue
			}
			if u < 0 || ranks[u].less(ranks[v]) {
				u = v
			}
		}

		switch state[u] {
		case unvisited:
			forEachNeighbor(g, u, func(w int) { ranks[w].open-- })
		case frontier:
			forEachNeighbor(g, u, func(w int) { ranks[w].frontier-- })
		}
		state[u] = visited
		out = append(out, u)

		forEachNeighbor(g, u, func(v int) {
			ranks[v].chosen++
			if state[v] != unvisited {
				return
			}
			state[v] = frontier
			forEachNeighbor(g, v, func(w int) { ranks[w].frontier++ })
		})
	}

	return out
}
