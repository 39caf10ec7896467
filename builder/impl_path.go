// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges i→i+1 for i = 0..n-2 in increasing order.
//   - Cycle: n ≥ 3, the path edges plus the closing edge (n-1)→0.
//   - Orientation follows the edge list; arcs point forward along the ring.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motif/graph"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that appends the simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := addBlock(g, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that appends the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := addBlock(g, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
