package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motif/builder"
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/match"
	"github.com/katalvlaran/motif/mapping"
)

func edgeList[D graph.Orientation](t testing.TB, n int, edges [][2]int) *graph.EdgeList[D] {
	t.Helper()
	l := graph.NewEdgeList[D](n)
	for _, e := range edges {
		require.NoError(t, l.AddEdge(e[0], e[1], 0))
	}
	return l
}

func pattern[D graph.Orientation](t testing.TB, n int, edges [][2]int) *graph.AdjacencyList[D] {
	t.Helper()
	return graph.NewAdjacencyList(edgeList[D](t, n, edges))
}

func target[D graph.Orientation](t testing.TB, n int, edges [][2]int) *graph.ListMat[D] {
	t.Helper()
	return graph.NewListMat(edgeList[D](t, n, edges))
}

func build[D graph.Orientation](t testing.TB, seed int64, ctor builder.Constructor, opts ...builder.BuilderOption) *graph.EdgeList[D] {
	t.Helper()
	l, err := builder.BuildGraph[D](append([]builder.BuilderOption{builder.WithSeed(seed)}, opts...), ctor)
	require.NoError(t, err)
	return l
}

// variantOptions returns the options for variant v at strength s, with
// assertions switched on.
func variantOptions(v match.Variant, s match.Strength, extra ...match.Option) []match.Option {
	opts := append(v.Options(), match.WithStrength(s), match.WithAssertions(true))
	return append(opts, extra...)
}

// collect runs s and returns every match as its target image.
func collect[G, H graph.Graph](t testing.TB, g G, h H, ord []int, opts ...match.Option) [][]int {
	t.Helper()
	var out [][]int
	_, err := match.Run(g, h, ord, func(m *mapping.Mapping) match.Signal {
		out = append(out, m.Targets())
		return match.Continue
	}, opts...)
	require.NoError(t, err)
	return out
}

// bruteForce counts matches by trying every injective map. sameLabel
// additionally requires equal edge labels.
func bruteForce(g, h graph.Graph, induced, sameLabel bool) int {
	m, n := g.NumVertices(), h.NumVertices()
	img := make([]int, m)
	used := make([]bool, n)
	var count int

	valid := func() bool {
		for a := 0; a < m; a++ {
			for b := 0; b < m; b++ {
				if a == b {
					continue
				}
				pl, pe := g.Edge(a, b)
				tl, te := h.Edge(img[a], img[b])
				if pe && (!te || (sameLabel && pl != tl)) {
					return false
				}
				if induced && te && !pe {
					return false
				}
			}
		}
		return true
	}

	var rec func(k int)
	rec = func(k int) {
		if k == m {
			if valid() {
				count++
			}
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			img[k] = v
			rec(k + 1)
			used[v] = false
		}
	}
	rec(0)

	return count
}
