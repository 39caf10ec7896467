// SPDX-License-Identifier: MIT

package graph

import "github.com/bits-and-blooms/bitset"

// ListMat pairs an AdjacencyList with a dense presence bit matrix, giving
// O(1) Edge lookups for the target graph. Labels are kept in a second
// n×n matrix only when at least one edge carries a non-zero label.
//
// Memory: n²/8 bytes for presence, plus 8·n² bytes when labeled.
// Safe for concurrent readers.
type ListMat[D Orientation] struct {
	*AdjacencyList[D]

	n      int
	bits   *bitset.BitSet // bit u*n+v set iff u→v
	labels []Label        // nil when every label is zero
}

// NewListMat freezes src into the hybrid representation.
// Complexity: O(V² / 64 + E log Δ).
func NewListMat[D Orientation](src *EdgeList[D]) *ListMat[D] {
	return newListMat(NewAdjacencyList(src))
}

func newListMat[D Orientation](a *AdjacencyList[D]) *ListMat[D] {
	n := a.NumVertices()
	m := &ListMat[D]{
		AdjacencyList: a,
		n:             n,
		bits:          bitset.New(uint(n * n)),
	}

	labeled := false
	for u := 0; u < n; u++ {
		for _, nb := range a.OutEdges(u) {
			i := u*n + nb.Vertex
			m.bits.Set(uint(i))
			if nb.Label != 0 {
				labeled = true
			}
		}
	}
	if labeled {
		m.labels = make([]Label, n*n)
		for u := 0; u < n; u++ {
			for _, nb := range a.OutEdges(u) {
				m.labels[u*n+nb.Vertex] = nb.Label
			}
		}
	}

	return m
}

// Edge reports whether u→v exists and returns its label.
// Complexity: O(1).
func (m *ListMat[D]) Edge(u, v int) (Label, bool) {
	i := u*m.n + v
	if !m.bits.Test(uint(i)) {
		return 0, false
	}
	if m.labels == nil {
		return 0, true
	}

	return m.labels[i], true
}
