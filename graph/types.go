// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrVertexOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Label is an edge label. Zero is the unlabeled value.
type Label int64

// Neighbor is one adjacency entry: the vertex on the other end and the label
// of the connecting edge.
type Neighbor struct {
	// Vertex is the neighbor index.
	Vertex int

	// Label is the label of the edge to Vertex.
	Label Label
}

// Arc is an oriented edge together with both endpoints.
// Edge equivalence predicates receive one Arc from the pattern and one from the target.
type Arc struct {
	From  int
	To    int
	Label Label
}

// Graph is the read-only capability surface shared by every immutable
// representation. Vertex arguments must lie in 0..NumVertices()-1.
// Returned rows are owned by the graph and must not be modified.
type Graph interface {
	// NumVertices returns n.
	NumVertices() int

	// NumEdges returns the number of edges (undirected edges count once).
	NumEdges() int

	// Directed reports the orientation fixed by the type parameter.
	Directed() bool

	// Degree returns the total degree of v.
	Degree(v int) int

	// OutDegree returns the number of arcs leaving v.
	OutDegree(v int) int

	// InDegree returns the number of arcs entering v.
	InDegree(v int) int

	// Edges returns the neighbors of v (out-neighbors for directed graphs).
	Edges(v int) []Neighbor

	// OutEdges returns the heads of the arcs leaving v.
	OutEdges(v int) []Neighbor

	// InEdges returns the tails of the arcs entering v.
	InEdges(v int) []Neighbor

	// Edge reports whether the edge u→v exists and returns its label.
	Edge(u, v int) (Label, bool)
}

// Sink is the mutable surface fixture builders and loaders write into.
// EdgeList implements it.
type Sink interface {
	NumVertices() int
	Directed() bool
	AddVertex() int
	AddEdge(u, v int, label Label) error
	HasEdge(u, v int) bool
}

// Compile-time interface checks.
var (
	_ Graph = (*AdjacencyList[Undirected])(nil)
	_ Graph = (*AdjacencyList[Directed])(nil)
	_ Graph = (*ListMat[Undirected])(nil)
	_ Graph = (*ListMat[Directed])(nil)
	_ Sink  = (*EdgeList[Undirected])(nil)
	_ Sink  = (*EdgeList[Directed])(nil)
)
