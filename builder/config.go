// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/motif/graph"
)

// builderConfig aggregates the knobs constructors read.
// It is passed by value; constructors must not retain it.
type builderConfig struct {
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// labelFn produces the label of each emitted edge.
	labelFn LabelFn
}

// newBuilderConfig starts from deterministic defaults (no RNG, unlabeled
// edges) and applies opts in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		labelFn: Unlabeled,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// label draws the next edge label.
func (c builderConfig) label() graph.Label {
	return c.labelFn(c.rng)
}
