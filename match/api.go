// SPDX-License-Identifier: MIT

package match

import (
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/mapping"
)

// Run builds a Searcher for g, h and ord and runs it once with cb.
func Run[G, H graph.Graph](g G, h H, ord []int, cb Callback, opts ...Option) (Stats, error) {
	s, err := NewSearcher(g, h, ord, opts...)
	if err != nil {
		return Stats{}, err
	}

	return s.Run(cb)
}

// Count returns the number of matches of g in h.
func Count[G, H graph.Graph](g G, h H, ord []int, opts ...Option) (int64, error) {
	st, err := Run(g, h, ord, func(*mapping.Mapping) Signal { return Continue }, opts...)

	return st.Matches, err
}

// Collect returns up to limit matches, each as the target image of pattern
// vertices 0..m-1. limit ≤ 0 collects every match.
func Collect[G, H graph.Graph](g G, h H, ord []int, limit int, opts ...Option) ([][]int, error) {
	var out [][]int
	_, err := Run(g, h, ord, func(m *mapping.Mapping) Signal {
		out = append(out, m.Targets())
		if limit > 0 && len(out) >= limit {
			return Stop
		}
		return Continue
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}
