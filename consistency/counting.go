// SPDX-License-Identifier: MIT
//
// counting.go - neighbor tallies for count pruning.
//
// Contract:
//   - A Tally splits neighbor counts by direction; undirected graphs use Out.
//   - StaticTallies partitions each pattern vertex's neighbors into earlier
//     and later positions of the order.
//   - DynamicCounts mirrors the mapping: Add and Remove must be paired with
//     Assign and Unassign of the same target vertex.
//
// Complexity:
//   - StaticTallies O(V + E); per-vertex counts O(deg).
//
// Determinism:
//   - Pure functions of their inputs; DynamicCounts is single-owner.

package consistency

import (
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/mapping"
)

// Tally counts neighbors of one vertex in some partition, split by direction.
// Out counts heads of arcs leaving the vertex, In counts tails of arcs
// entering it. Undirected graphs use Out only.
type Tally struct {
	Out int
	In  int
}

// Equal reports exact equality in both directions.
func (t Tally) Equal(o Tally) bool { return t == o }

// Within reports t ≤ o in both directions.
func (t Tally) Within(o Tally) bool { return t.Out <= o.Out && t.In <= o.In }

// MappedNeighbors counts the neighbors of pattern vertex u that are assigned in m.
// Complexity: O(deg(u)).
func MappedNeighbors[G graph.Graph](g G, u int, m *mapping.Mapping) Tally {
	var t Tally
	for _, nb := range g.OutEdges(u) {
		if m.Mapped(nb.Vertex) {
			t.Out++
		}
	}
	if g.Directed() {
		for _, nb := range g.InEdges(u) {
			if m.Mapped(nb.Vertex) {
				t.In++
			}
		}
	}

	return t
}

// MappedTargetNeighbors counts the neighbors of target vertex v that are
// images in m.
// Complexity: O(deg(v)).
func MappedTargetNeighbors[H graph.Graph](h H, v int, m *mapping.Mapping) Tally {
	var t Tally
	for _, nb := range h.OutEdges(v) {
		if m.Used(nb.Vertex) {
			t.Out++
		}
	}
	if h.Directed() {
		for _, nb := range h.InEdges(v) {
			if m.Used(nb.Vertex) {
				t.In++
			}
		}
	}

	return t
}

// FreeTargetNeighbors counts the neighbors of target vertex v that are not
// images in m.
// Complexity: O(deg(v)).
func FreeTargetNeighbors[H graph.Graph](h H, v int, m *mapping.Mapping) Tally {
	used := MappedTargetNeighbors(h, v, m)
	t := Tally{Out: h.OutDegree(v) - used.Out}
	if h.Directed() {
		t.In = h.InDegree(v) - used.In
	}

	return t
}

// StaticTallies splits the neighbors of every pattern vertex by position in
// ord: backward[u] counts neighbors placed before u, forward[u] those after.
// ord must be a valid permutation of g's vertices.
// Complexity: O(V + E).
func StaticTallies[G graph.Graph](g G, ord []int) (backward, forward []Tally) {
	m := g.NumVertices()
	pos := make([]int, m)
	for i, v := range ord {
		pos[v] = i
	}
	backward = make([]Tally, m)
	forward = make([]Tally, m)

	for u := 0; u < m; u++ {
		for _, nb := range g.OutEdges(u) {
			if pos[nb.Vertex] < pos[u] {
				backward[u].Out++
			} else {
				forward[u].Out++
			}
		}
		if !g.Directed() {
			continue
		}
		for _, nb := range g.InEdges(u) {
			if pos[nb.Vertex] < pos[u] {
				backward[u].In++
			} else {
				forward[u].In++
			}
		}
	}

	return backward, forward
}

// DynamicCounts maintains, for every target vertex, the Tally of its
// neighbors that are currently assigned. Add and Remove are exact inverses,
// so any sequence netting to the same assignment leaves identical counts.
// Not safe for concurrent use.
type DynamicCounts[H graph.Graph] struct {
	h H
	t []Tally
}

// NewDynamicCounts returns all-zero counts for the target h.
func NewDynamicCounts[H graph.Graph](h H) *DynamicCounts[H] {
	return &DynamicCounts[H]{h: h, t: make([]Tally, h.NumVertices())}
}

// Add records that target vertex v became assigned.
// Complexity: O(deg(v)).
func (c *DynamicCounts[H]) Add(v int) { c.shift(v, 1) }

// Remove reverts a previous Add(v).
// Complexity: O(deg(v)).
func (c *DynamicCounts[H]) Remove(v int) { c.shift(v, -1) }

// At returns the Tally of assigned neighbors of v.
func (c *DynamicCounts[H]) At(v int) Tally { return c.t[v] }

// Zero reports whether every count is zero.
func (c *DynamicCounts[H]) Zero() bool {
	for _, t := range c.t {
		if t != (Tally{}) {
			return false
		}
	}

	return true
}

func (c *DynamicCounts[H]) shift(v, d int) {
	if !c.h.Directed() {
		for _, nb := range c.h.OutEdges(v) {
			c.t[nb.Vertex].Out += d
		}
		return
	}
	// v→w: v is an assigned in-neighbor of w
	for _, nb := range c.h.OutEdges(v) {
		c.t[nb.Vertex].In += d
	}
	// w→v: v is an assigned out-neighbor of w
	for _, nb := range c.h.InEdges(v) {
		c.t[nb.Vertex].Out += d
	}
}
