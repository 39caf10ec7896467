package match_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/motif/builder"
	"github.com/katalvlaran/motif/consistency"
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/mapping"
	"github.com/katalvlaran/motif/match"
	"github.com/katalvlaran/motif/order"
)

var (
	path3 = [][2]int{{0, 1}, {1, 2}}
	tri   = [][2]int{{0, 1}, {1, 2}, {0, 2}}
	edge  = [][2]int{{0, 1}}
)

func TestScenarios_AllVariants(t *testing.T) {
	tests := []struct {
		name        string
		pn          int
		pEdges      [][2]int
		tn          int
		tEdges      [][2]int
		mono, induc int64
	}{
		{"path3 in K3", 3, path3, 3, tri, 6, 0},
		{"K3 in K3", 3, tri, 3, tri, 6, 6},
		{"edge in two isolated", 2, edge, 2, nil, 0, 0},
		{"edge in path3", 2, edge, 3, path3, 4, 4},
		{"path3 in path3", 3, path3, 3, path3, 2, 2},
	}
	for _, tc := range tests {
		g := pattern[graph.Undirected](t, tc.pn, tc.pEdges)
		h := target[graph.Undirected](t, tc.tn, tc.tEdges)
		for _, v := range match.Variants() {
			t.Run(tc.name+"/"+v.Name, func(t *testing.T) {
				n, err := match.Count(g, h, nil, variantOptions(v, match.Mono)...)
				require.NoError(t, err)
				assert.Equal(t, tc.mono, n, "mono")

				n, err = match.Count(g, h, nil, variantOptions(v, match.Induced)...)
				require.NoError(t, err)
				assert.Equal(t, tc.induc, n, "induced")
			})
		}
	}
}

func TestDirected_Scenarios(t *testing.T) {
	arc := pattern[graph.Directed](t, 2, edge)
	twoCycle := target[graph.Directed](t, 2, [][2]int{{0, 1}, {1, 0}})
	dpath := pattern[graph.Directed](t, 3, path3)
	dcycle := target[graph.Directed](t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	for _, v := range match.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			n, err := match.Count(arc, twoCycle, nil, variantOptions(v, match.Mono)...)
			require.NoError(t, err)
			assert.EqualValues(t, 2, n, "arc into 2-cycle, mono")

			n, err = match.Count(arc, twoCycle, nil, variantOptions(v, match.Induced)...)
			require.NoError(t, err)
			assert.EqualValues(t, 0, n, "reverse arc breaks induced")

			n, err = match.Count(dpath, dcycle, nil, variantOptions(v, match.Mono)...)
			require.NoError(t, err)
			assert.EqualValues(t, 3, n, "path into 3-cycle, mono")

			n, err = match.Count(dpath, dcycle, nil, variantOptions(v, match.Induced)...)
			require.NoError(t, err)
			assert.EqualValues(t, 0, n, "closing arc breaks induced")
		})
	}
}

func TestRun_StopAfterFirst(t *testing.T) {
	g := pattern[graph.Undirected](t, 2, edge)
	h := graph.NewListMat(build[graph.Undirected](t, 1, builder.Complete(5)))

	for _, v := range match.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			s, err := match.NewSearcher(g, h, nil, variantOptions(v, match.Induced)...)
			require.NoError(t, err)

			calls := 0
			st, err := s.Run(func(*mapping.Mapping) match.Signal {
				calls++
				return match.Stop
			})
			require.NoError(t, err)
			assert.Equal(t, 1, calls)
			assert.EqualValues(t, 1, st.Matches)
			assert.True(t, st.Stopped)
			assert.True(t, s.Mapping().Empty(), "rollback after stop")
			assert.True(t, s.Mapping().Consistent())

			// a second run sees fresh counts and the full result
			st, err = s.Run(func(*mapping.Mapping) match.Signal { return match.Continue })
			require.NoError(t, err)
			assert.EqualValues(t, 20, st.Matches)
			assert.False(t, st.Stopped)
			assert.True(t, s.Mapping().Empty())
		})
	}
}

func TestRun_MutualInverseDuringSearch(t *testing.T) {
	g := pattern[graph.Undirected](t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	h := graph.NewListMat(build[graph.Undirected](t, 7, builder.Grid(3, 3)))

	for _, v := range match.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			s, err := match.NewSearcher(g, h, nil, variantOptions(v, match.Mono)...)
			require.NoError(t, err)

			_, err = s.Run(func(m *mapping.Mapping) match.Signal {
				require.True(t, m.Complete())
				require.True(t, m.Consistent())
				for _, p := range m.Pairs() {
					u, ok := m.PreImage(p.Target)
					require.True(t, ok)
					require.Equal(t, p.Pattern, u)
				}
				return match.Continue
			})
			require.NoError(t, err)
			assert.True(t, s.Mapping().Empty())
		})
	}
}

func TestRun_RollbackAfterPanic(t *testing.T) {
	g := pattern[graph.Undirected](t, 3, path3)
	h := target[graph.Undirected](t, 3, tri)
	s, err := match.NewSearcher(g, h, nil, match.WithStrength(match.Mono), match.WithCounting(match.CountPrecomputed))
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = s.Run(func(*mapping.Mapping) match.Signal { panic("boom") })
	})
	assert.True(t, s.Mapping().Empty())

	n := 0
	_, err = s.Run(func(*mapping.Mapping) match.Signal { n++; return match.Continue })
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestRun_Deterministic(t *testing.T) {
	g := pattern[graph.Undirected](t, 3, path3)
	h := graph.NewListMat(build[graph.Undirected](t, 3, builder.RandomSparse(10, 0.4)))
	opts := variantOptions(mustVariant(t, match.DefaultVariant), match.Mono)

	first := collect(t, g, h, nil, opts...)
	second := collect(t, g, h, nil, opts...)
	require.NotEmpty(t, first)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("runs differ (-first +second):\n%s", diff)
	}
}

func TestRun_EmptyPatternAndOversizedPattern(t *testing.T) {
	empty := pattern[graph.Undirected](t, 0, nil)
	h := target[graph.Undirected](t, 3, path3)

	got := collect(t, empty, h, nil)
	assert.Equal(t, [][]int{{}}, got, "the empty mapping is the single match")

	big := pattern[graph.Undirected](t, 4, nil)
	st, err := match.Run(big, h, nil, func(*mapping.Mapping) match.Signal { return match.Continue })
	require.NoError(t, err)
	assert.Equal(t, match.Stats{}, st)
}

func TestRun_Labels(t *testing.T) {
	pl := graph.NewEdgeList[graph.Undirected](3)
	require.NoError(t, pl.AddEdge(0, 1, 1))
	require.NoError(t, pl.AddEdge(1, 2, 2))
	tl := graph.NewEdgeList[graph.Undirected](3)
	require.NoError(t, tl.AddEdge(0, 1, 1))
	require.NoError(t, tl.AddEdge(1, 2, 2))
	require.NoError(t, tl.AddEdge(0, 2, 2))
	g, h := graph.NewAdjacencyList(pl), graph.NewListMat(tl)

	got := collect(t, g, h, []int{0, 1, 2}, match.WithStrength(match.Mono), match.WithEdgeEquiv(consistency.SameLabel))
	// 0-1 must land on the only label-1 edge; 1-2 then needs label 2
	assert.Equal(t, [][]int{{0, 1, 2}, {1, 0, 2}}, got)

	colors := []string{"r", "g", "b"}
	got = collect(t, g, h, nil,
		match.WithStrength(match.Mono),
		match.WithVertexEquiv(consistency.VertexLabels(colors, colors)),
	)
	assert.Equal(t, [][]int{{0, 1, 2}}, got)
}

func TestRun_Context(t *testing.T) {
	g := pattern[graph.Undirected](t, 2, edge)
	h := target[graph.Undirected](t, 3, tri)
	s, err := match.NewSearcher(g, h, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st, err := s.RunContext(ctx, func(*mapping.Mapping) match.Signal { return match.Continue })
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, st.Stopped)
	assert.Zero(t, st.Matches)
	assert.True(t, s.Mapping().Empty())
}

func TestCollect_Limit(t *testing.T) {
	g := pattern[graph.Undirected](t, 2, edge)
	h := target[graph.Undirected](t, 3, tri)

	got, err := match.Collect(g, h, []int{0, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {0, 2}}, got)

	all, err := match.Collect(g, h, []int{0, 1}, 0)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestNewSearcher_Errors(t *testing.T) {
	g := pattern[graph.Undirected](t, 3, path3)
	h := target[graph.Undirected](t, 3, tri)

	var nilPattern *graph.AdjacencyList[graph.Undirected]
	_, err := match.NewSearcher(nilPattern, h, nil)
	assert.ErrorIs(t, err, match.ErrGraphNil)

	var nilTarget *graph.ListMat[graph.Undirected]
	_, err = match.NewSearcher(g, nilTarget, nil)
	assert.ErrorIs(t, err, match.ErrGraphNil)

	_, err = match.NewSearcher(g, target[graph.Directed](t, 3, tri), nil)
	assert.ErrorIs(t, err, match.ErrOrientationMismatch)

	_, err = match.NewSearcher(g, h, []int{0, 0, 1})
	assert.ErrorIs(t, err, match.ErrInvalidOrder)
	assert.ErrorIs(t, err, order.ErrNotPermutation)

	_, err = match.NewSearcher(g, h, []int{0, 1})
	assert.ErrorIs(t, err, match.ErrInvalidOrder)
}

func TestRun_Errors(t *testing.T) {
	g := pattern[graph.Undirected](t, 2, edge)
	h := target[graph.Undirected](t, 3, tri)
	s, err := match.NewSearcher(g, h, nil)
	require.NoError(t, err)

	_, err = s.Run(nil)
	assert.ErrorIs(t, err, match.ErrNilCallback)

	var inner error
	_, err = s.Run(func(*mapping.Mapping) match.Signal {
		_, inner = s.Run(func(*mapping.Mapping) match.Signal { return match.Continue })
		return match.Stop
	})
	require.NoError(t, err)
	assert.ErrorIs(t, inner, match.ErrSearchInProgress)

	// usable again once the outer run returned
	st, err := s.Run(func(*mapping.Mapping) match.Signal { return match.Continue })
	require.NoError(t, err)
	assert.EqualValues(t, 6, st.Matches)
}

func TestParent(t *testing.T) {
	// 0→1, 2→1, isolated 3
	g := pattern[graph.Directed](t, 4, [][2]int{{0, 1}, {2, 1}})
	h := target[graph.Directed](t, 4, [][2]int{{0, 1}, {2, 1}})
	s, err := match.NewSearcher(g, h, []int{0, 1, 2, 3}, match.WithParent(true))
	require.NoError(t, err)

	_, _, ok := s.Parent(0)
	assert.False(t, ok, "first vertex")

	p, out, ok := s.Parent(1)
	assert.True(t, ok)
	assert.Equal(t, 0, p)
	assert.True(t, out, "arc runs parent → vertex")

	p, out, ok = s.Parent(2)
	assert.True(t, ok)
	assert.Equal(t, 1, p)
	assert.False(t, out, "arc runs vertex → parent")

	_, _, ok = s.Parent(3)
	assert.False(t, ok, "isolated vertex scans every target")

	plain, err := match.NewSearcher(g, h, nil)
	require.NoError(t, err)
	_, _, ok = plain.Parent(1)
	assert.False(t, ok, "no parents without WithParent")
}

func TestStats(t *testing.T) {
	g := pattern[graph.Undirected](t, 3, path3)
	h := target[graph.Undirected](t, 3, tri)

	st, err := match.Run(g, h, []int{0, 1, 2}, func(*mapping.Mapping) match.Signal { return match.Continue },
		match.WithStrength(match.Mono))
	require.NoError(t, err)
	// 1 root + 3 + 6 + 6 leaves; 3 + 9 + 18 candidate tests
	assert.Equal(t, match.Stats{States: 16, Candidates: 30, Matches: 6}, st)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := pattern[graph.Undirected](t, 3, path3)
	h := target[graph.Undirected](t, 3, tri)

	_, err := match.Count(g, h, nil, match.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "search started", entries[0].Message)
	assert.Equal(t, "match", entries[0].LoggerName)
	assert.Equal(t, "search finished", entries[1].Message)
	assert.EqualValues(t, 0, entries[1].ContextMap()["matches"])
}

func TestOptions(t *testing.T) {
	o := match.DefaultOptions()
	assert.Equal(t, match.Induced, o.Strength)
	assert.Equal(t, match.CountOff, o.Counting)
	assert.False(t, o.DegreePruning)
	assert.False(t, o.Parent)

	assert.Panics(t, func() { match.WithStrength(match.Strength(9)) })
	assert.Panics(t, func() { match.WithCounting(match.Counting(9)) })
	assert.Panics(t, func() { match.WithVertexEquiv(nil) })
	assert.Panics(t, func() { match.WithEdgeEquiv(nil) })
	assert.NotPanics(t, func() { match.WithLogger(nil) })
}

func TestVariants(t *testing.T) {
	vs := match.Variants()
	require.Len(t, vs, 16)
	assert.Equal(t, "plain", vs[0].Name)

	v, err := match.LookupVariant(match.DefaultVariant)
	require.NoError(t, err)
	assert.Equal(t, match.Variant{
		Name: match.DefaultVariant, DegreePruning: true, Counting: match.CountPrecomputed, Parent: true,
	}, v)

	_, err = match.LookupVariant("nope")
	assert.ErrorIs(t, err, match.ErrUnknownVariant)

	vs[0].Name = "mutated"
	assert.Equal(t, "plain", match.Variants()[0].Name, "registry is copied")
}

func mustVariant(t testing.TB, name string) match.Variant {
	t.Helper()
	v, err := match.LookupVariant(name)
	require.NoError(t, err)
	return v
}
