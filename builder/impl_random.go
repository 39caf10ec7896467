// SPDX-License-Identifier: MIT
//
// impl_random.go - RandomSparse(n, p) and RandomRegular(n, d).
//
// RandomSparse:
//   - Undirected: one Bernoulli(p) trial per unordered pair {i,j}, i<j.
//   - Directed: one trial per ordered pair (i,j), i≠j.
//   - Trials run in lexicographic order, so a fixed seed fixes the graph.
//   - An RNG is required unless p ∈ {0, 1}.
//
// RandomRegular:
//   - Undirected only; 0 ≤ d < n and n·d even.
//   - Stub matching with bounded retries; rejected matchings (loops or
//     parallel edges) are resampled.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motif/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	minRandomVertices       = 1
	probMin                 = 0.0
	probMax                 = 1.0
	maxStubMatchingAttempts = 64
)

// RandomSparse returns a Constructor sampling G(n, p).
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := addBlock(g, n)
		keep := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}
			return cfg.rng.Float64() < p
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomRegular returns a Constructor sampling an undirected d-regular graph
// on n vertices.
// Complexity: O(n·d) per attempt, at most maxStubMatchingAttempts attempts.
func RandomRegular(n, d int) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRandomVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n || (n*d)%2 != 0 {
			return fmt.Errorf("%s: need 0 ≤ d < n and n·d even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		base := addBlock(g, n)
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simpleMatching(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := link(g, cfg, methodRandomRegular, base+stubs[i], base+stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple matching after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simpleMatching reports whether consecutive stub pairs form neither loops
// nor parallel edges.
func simpleMatching(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[[2]int{u, v}]; dup {
			return false
		}
		seen[[2]int{u, v}] = struct{}{}
	}

	return true
}
