// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/motif/graph"
)

// LabelFn produces an edge label from an optional RNG. It must be
// deterministic for a given RNG state.
type LabelFn func(rng *rand.Rand) graph.Label

// Unlabeled always returns the zero label.
func Unlabeled(*rand.Rand) graph.Label { return 0 }

// ConstantLabel returns a LabelFn that always yields l.
func ConstantLabel(l graph.Label) LabelFn {
	return func(*rand.Rand) graph.Label { return l }
}

// UniformLabel returns a LabelFn drawing uniformly from [0, k).
// With a nil RNG it yields 0. Panics if k < 1.
func UniformLabel(k int) LabelFn {
	if k < 1 {
		panic(fmt.Sprintf("builder: UniformLabel(k=%d), want k ≥ 1", k))
	}
	return func(rng *rand.Rand) graph.Label {
		if rng == nil {
			return 0
		}
		return graph.Label(rng.Intn(k))
	}
}
