// SPDX-License-Identifier: MIT
//
// order.go - simple heuristics, validation and the name registry.
//
// Contract:
//   - Every heuristic returns a permutation of 0..V-1 and never mutates g.
//   - Ties between equal keys go to the lower vertex index.
//   - Validate rejects wrong length, out-of-range and duplicate entries with
//     ErrNotPermutation.
//
// Complexity:
//   - Identity O(V), Degree O(V log V), RecursiveDegree O(V · (V + E)).
//
// Determinism:
//   - Output depends only on g; no randomness.

package order

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/motif/graph"
)

var (
	// ErrNotPermutation indicates an order that is not a permutation of 0..m-1.
	ErrNotPermutation = errors.New("order: not a permutation")

	// ErrUnknownHeuristic indicates Lookup was asked for an unregistered name.
	ErrUnknownHeuristic = errors.New("order: unknown heuristic")
)

// Heuristic computes an assignment order for the pattern graph g.
type Heuristic func(g graph.Graph) []int

// Identity returns 0, 1, …, m-1.
func Identity(g graph.Graph) []int {
	out := make([]int, g.NumVertices())
	for i := range out {
		out[i] = i
	}

	return out
}

// Degree sorts vertices by descending degree; equal degrees keep index order.
// Complexity: O(m log m).
func Degree(g graph.Graph) []int {
	out := Identity(g)
	sort.SliceStable(out, func(a, b int) bool {
		return g.Degree(out[a]) > g.Degree(out[b])
	})

	return out
}

// RecursiveDegree repeatedly picks, among the remaining vertices, the one with
// the most arcs into the already chosen set. Ties go to the higher degree,
// then to the lower index.
// Complexity: O(m · (m + E)).
func RecursiveDegree(g graph.Graph) []int {
	m := g.NumVertices()
	out := make([]int, 0, m)
	chosen := make([]bool, m)

	for len(out) < m {
		best, bestLinks := -1, -1
		for v := 0; v < m; v++ {
			if chosen[v] {
				continue
			}
			links := 0
			forEachNeighbor(g, v, func(w int) {
				if chosen[w] {
					links++
				}
			})
			if best < 0 || links > bestLinks || (links == bestLinks && g.Degree(v) > g.Degree(best)) {
				best, bestLinks = v, links
			}
		}
		chosen[best] = true
		out = append(out, best)
	}

	return out
}

// Validate checks that ord is a permutation of 0..m-1.
// Complexity: O(m).
func Validate(ord []int, m int) error {
	if len(ord) != m {
		return fmt.Errorf("order: length %d, want %d: %w", len(ord), m, ErrNotPermutation)
	}
	seen := make([]bool, m)
	for i, v := range ord {
		if v < 0 || v >= m {
			return fmt.Errorf("order: position %d holds %d outside [0,%d): %w", i, v, m, ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("order: position %d repeats vertex %d: %w", i, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Positions returns the inverse permutation: Positions(ord)[ord[i]] == i.
// ord must be a valid permutation.
func Positions(ord []int) []int {
	pos := make([]int, len(ord))
	for i, v := range ord {
		pos[v] = i
	}

	return pos
}

// registry maps the names accepted by Lookup.
var registry = map[string]Heuristic{
	"identity": Identity,
	"degree":   Degree,
	"rdeg":     RecursiveDegree,
	"gcf":      GreatestConstraintFirst,
}

// Lookup returns the heuristic registered under name:
// "identity", "degree", "rdeg" or "gcf".
func Lookup(name string) (Heuristic, error) {
	h, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("order: %q: %w", name, ErrUnknownHeuristic)
	}

	return h, nil
}

// Names returns the registered heuristic names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// forEachNeighbor visits every arc neighbor of v: out- and in-neighbors when
// directed (a vertex joined both ways is visited twice), plain neighbors otherwise.
func forEachNeighbor(g graph.Graph, v int, fn func(w int)) {
	for _, nb := range g.OutEdges(v) {
		fn(nb.Vertex)
	}
	if !g.Directed() {
		return
	}
	for _, nb := range g.InEdges(v) {
		fn(nb.Vertex)
	}
}
