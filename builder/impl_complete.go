// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) and CompleteBipartite(a, b).
//
// Contract:
//   - Complete emits every pair {i,j}, i<j, in lexicographic order; directed
//     graphs get both arcs i→j and j→i.
//   - CompleteBipartite appends the left block (a vertices) then the right
//     block (b vertices) and emits left→right arcs in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motif/graph"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionNodes       = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addBlock(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := linkBoth(g, cfg, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{a,b}.
// Complexity: O(a·b).
func CompleteBipartite(a, b int) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if a < minPartitionNodes || b < minPartitionNodes {
			return fmt.Errorf("%s: sides %d,%d < min=%d: %w",
				methodCompleteBipartite, a, b, minPartitionNodes, ErrTooFewVertices)
		}
		left := addBlock(g, a)
		right := addBlock(g, b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := link(g, cfg, methodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
