// SPDX-License-Identifier: MIT

package graph

import "fmt"

// arcKey identifies an edge for duplicate detection. Undirected keys are
// normalized so that u < v.
type arcKey struct{ u, v int }

// EdgeList is the simple, mutable, list-only graph that loaders and builders
// fill. It is not safe for concurrent mutation. Freeze it into an
// AdjacencyList or a ListMat before searching.
type EdgeList[D Orientation] struct {
	out   [][]Neighbor // out[u]: heads of arcs u→v (all neighbors when undirected)
	in    [][]Neighbor // in[v]: tails of arcs u→v; nil when undirected
	seen  map[arcKey]struct{}
	edges int
}

// NewEdgeList creates an edge list with n isolated vertices.
// A negative n is treated as zero.
// Complexity: O(n).
func NewEdgeList[D Orientation](n int) *EdgeList[D] {
	if n < 0 {
		n = 0
	}
	l := &EdgeList[D]{
		out:  make([][]Neighbor, n),
		seen: make(map[arcKey]struct{}),
	}
	if IsDirected[D]() {
		l.in = make([][]Neighbor, n)
	}

	return l
}

// NumVertices returns the current vertex count.
func (l *EdgeList[D]) NumVertices() int { return len(l.out) }

// NumEdges returns the number of edges added so far.
func (l *EdgeList[D]) NumEdges() int { return l.edges }

// Directed reports the orientation fixed by D.
func (l *EdgeList[D]) Directed() bool { return IsDirected[D]() }

// AddVertex appends an isolated vertex and returns its index.
// Complexity: O(1) amortized.
func (l *EdgeList[D]) AddVertex() int {
	l.out = append(l.out, nil)
	if l.in != nil {
		l.in = append(l.in, nil)
	}

	return len(l.out) - 1
}

// AddEdge inserts the edge u→v (u-v when undirected) with the given label.
// Complexity: O(1) amortized.
func (l *EdgeList[D]) AddEdge(u, v int, label Label) error {
	n := len(l.out)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("graph: AddEdge(%d→%d) with %d vertices: %w", u, v, n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("graph: AddEdge(%d→%d): %w", u, v, ErrLoopNotAllowed)
	}
	key := l.key(u, v)
	if _, dup := l.seen[key]; dup {
		return fmt.Errorf("graph: AddEdge(%d→%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	l.seen[key] = struct{}{}

	l.out[u] = append(l.out[u], Neighbor{Vertex: v, Label: label})
	if l.in != nil {
		l.in[v] = append(l.in[v], Neighbor{Vertex: u, Label: label})
	} else {
		// undirected: mirror
		l.out[v] = append(l.out[v], Neighbor{Vertex: u, Label: label})
	}
	l.edges++

	return nil
}

// HasEdge reports whether u→v was added (u-v when undirected).
// Out-of-range indices report false.
func (l *EdgeList[D]) HasEdge(u, v int) bool {
	_, ok := l.seen[l.key(u, v)]
	return ok
}

// Arcs returns every edge once, grouped by source vertex in ascending order
// and, within a source, in insertion order. Undirected edges are reported
// with From < To.
// Complexity: O(V + E).
func (l *EdgeList[D]) Arcs() []Arc {
	arcs := make([]Arc, 0, l.edges)
	directed := l.in != nil
	for u, row := range l.out {
		for _, nb := range row {
			if !directed && nb.Vertex < u {
				continue
			}
			arcs = append(arcs, Arc{From: u, To: nb.Vertex, Label: nb.Label})
		}
	}

	return arcs
}

func (l *EdgeList[D]) key(u, v int) arcKey {
	if l.in == nil && u > v {
		u, v = v, u
	}
	return arcKey{u: u, v: v}
}
