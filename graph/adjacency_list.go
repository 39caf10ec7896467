// SPDX-License-Identifier: MIT

package graph

import "sort"

// AdjacencyList is the compact, immutable adjacency-list representation.
// Rows are stored back to back (CSR layout) and sorted by neighbor index.
// Edge lookups binary-search the source row, so it suits the pattern graph,
// which the engine only scans sequentially.
//
// Safe for concurrent readers.
type AdjacencyList[D Orientation] struct {
	outOff []int      // row u of outAdj is outAdj[outOff[u]:outOff[u+1]]
	outAdj []Neighbor // all out-rows (all rows when undirected)
	inOff  []int      // directed only
	inAdj  []Neighbor // directed only
	edges  int
}

// NewAdjacencyList freezes src. The result holds every vertex, edge and
// label of src; later changes to src are not observed.
// Complexity: O(V + E log Δ).
func NewAdjacencyList[D Orientation](src *EdgeList[D]) *AdjacencyList[D] {
	g := &AdjacencyList[D]{edges: src.edges}
	g.outOff, g.outAdj = compress(src.out)
	if IsDirected[D]() {
		g.inOff, g.inAdj = compress(src.in)
	}

	return g
}

// compress packs rows into one sorted CSR block.
func compress(rows [][]Neighbor) ([]int, []Neighbor) {
	off := make([]int, len(rows)+1)
	for i, r := range rows {
		off[i+1] = off[i] + len(r)
	}
	adj := make([]Neighbor, off[len(rows)])
	for i, r := range rows {
		row := adj[off[i]:off[i+1]]
		copy(row, r)
		sort.Slice(row, func(a, b int) bool { return row[a].Vertex < row[b].Vertex })
	}

	return off, adj
}

// NumVertices returns n.
func (g *AdjacencyList[D]) NumVertices() int { return len(g.outOff) - 1 }

// NumEdges returns the edge count; undirected edges count once.
func (g *AdjacencyList[D]) NumEdges() int { return g.edges }

// Directed reports the orientation fixed by D.
func (g *AdjacencyList[D]) Directed() bool { return IsDirected[D]() }

// OutEdges returns the sorted heads of the arcs leaving v.
func (g *AdjacencyList[D]) OutEdges(v int) []Neighbor {
	lo, hi := g.outOff[v], g.outOff[v+1]
	return g.outAdj[lo:hi:hi]
}

// InEdges returns the sorted tails of the arcs entering v.
func (g *AdjacencyList[D]) InEdges(v int) []Neighbor {
	if g.inOff == nil {
		return g.OutEdges(v)
	}
	lo, hi := g.inOff[v], g.inOff[v+1]
	return g.inAdj[lo:hi:hi]
}

// Edges returns the neighbors of v; for directed graphs, the out-neighbors.
func (g *AdjacencyList[D]) Edges(v int) []Neighbor { return g.OutEdges(v) }

// OutDegree returns len(OutEdges(v)).
func (g *AdjacencyList[D]) OutDegree(v int) int { return g.outOff[v+1] - g.outOff[v] }

// InDegree returns len(InEdges(v)).
func (g *AdjacencyList[D]) InDegree(v int) int {
	if g.inOff == nil {
		return g.OutDegree(v)
	}
	return g.inOff[v+1] - g.inOff[v]
}

// Degree returns the number of neighbors of v, or OutDegree+InDegree when directed.
func (g *AdjacencyList[D]) Degree(v int) int {
	if g.inOff == nil {
		return g.OutDegree(v)
	}
	return g.OutDegree(v) + g.InDegree(v)
}

// Edge reports whether u→v exists and returns its label.
// Complexity: O(log deg(u)).
func (g *AdjacencyList[D]) Edge(u, v int) (Label, bool) {
	row := g.OutEdges(u)
	i := sort.Search(len(row), func(i int) bool { return row[i].Vertex >= v })
	if i < len(row) && row[i].Vertex == v {
		return row[i].Label, true
	}

	return 0, false
}

// ListMat returns the hybrid list-plus-matrix form of g. The CSR rows are
// shared, not copied.
// Complexity: O(V² / 64 + E).
func (g *AdjacencyList[D]) ListMat() *ListMat[D] {
	return newListMat(g)
}
