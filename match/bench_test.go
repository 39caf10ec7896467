package match_test

import (
	"testing"

	"github.com/katalvlaran/motif/builder"
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/mapping"
	"github.com/katalvlaran/motif/match"
	"github.com/katalvlaran/motif/order"
)

func BenchmarkVariants(b *testing.B) {
	g := graph.NewAdjacencyList(build[graph.Undirected](b, 1, builder.Cycle(5)))
	h := graph.NewListMat(build[graph.Undirected](b, 2, builder.RandomSparse(60, 0.1)))
	ord := order.GreatestConstraintFirst(g)
	cb := func(*mapping.Mapping) match.Signal { return match.Continue }

	for _, v := range match.Variants() {
		b.Run(v.Name, func(b *testing.B) {
			s, err := match.NewSearcher(g, h, ord, append(v.Options(), match.WithStrength(match.Induced))...)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err = s.Run(cb); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
