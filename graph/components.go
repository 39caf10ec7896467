// SPDX-License-Identifier: MIT

package graph

// Components returns the weakly connected components of g. Each component
// lists its vertices in ascending order; components are ordered by their
// smallest vertex.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the BFS queue.
func Components(g Graph) [][]int {
	n := g.NumVertices()
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}

	var count int
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if comp[s] >= 0 {
			continue
		}
		// BFS over arcs in both directions
		comp[s] = count
		queue = append(queue[:0], s)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, nb := range g.OutEdges(u) {
				if comp[nb.Vertex] < 0 {
					comp[nb.Vertex] = count
					queue = append(queue, nb.Vertex)
				}
			}
			if !g.Directed() {
				continue
			}
			for _, nb := range g.InEdges(u) {
				if comp[nb.Vertex] < 0 {
					comp[nb.Vertex] = count
					queue = append(queue, nb.Vertex)
				}
			}
		}
		count++
	}

	out := make([][]int, count)
	for v, c := range comp {
		out[c] = append(out[c], v)
	}

	return out
}

// Connected reports whether g has at most one weakly connected component.
func Connected(g Graph) bool {
	return len(Components(g)) <= 1
}
