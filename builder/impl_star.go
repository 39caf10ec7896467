// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - The center is the first vertex of the block; leaves / rim follow.
//   - Spokes are emitted center→leaf in increasing leaf order and mirrored
//     leaf→center when the graph is directed.
//   - Wheel emits the rim cycle first, then the spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motif/graph"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that appends a star with one center and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := addBlock(g, n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := linkBoth(g, cfg, methodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that appends W_n: a rim cycle of n-1 vertices
// and a center adjacent to all of them.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g graph.Sink, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		center := addBlock(g, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := link(g, cfg, methodWheel, center+1+i, center+1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err := linkBoth(g, cfg, methodWheel, center, center+1+i); err != nil {
				return err
			}
		}

		return nil
	}
}
