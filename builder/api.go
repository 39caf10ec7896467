// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/motif/graph"
)

// Constructor appends one topology to g using the resolved builderConfig.
// Constructors validate their parameters first, add their own vertices via
// g.AddVertex, emit edges in a documented stable order and return sentinel
// errors instead of panicking.
type Constructor func(g graph.Sink, cfg builderConfig) error

// BuildGraph creates an empty EdgeList with orientation D, resolves bopts and
// applies cons in order. The first constructor error is returned wrapped with
// "BuildGraph: %w"; no partial result is returned.
//
// Complexity: Σ cost of the constructors plus O(len(bopts)).
func BuildGraph[D graph.Orientation](bopts []BuilderOption, cons ...Constructor) (*graph.EdgeList[D], error) {
	g := graph.NewEdgeList[D](0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing sink, e.g. to extend a loaded graph.
func Apply(g graph.Sink, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addBlock appends n vertices and returns the index of the first one.
// Vertices of one block are contiguous.
func addBlock(g graph.Sink, n int) int {
	base := g.NumVertices()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	return base
}

// link adds u→v with a fresh label, wrapping failures with method context.
func link(g graph.Sink, cfg builderConfig, method string, u, v int) error {
	if err := g.AddEdge(u, v, cfg.label()); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}

	return nil
}

// linkBoth adds u→v, and v→u as well when g is directed.
func linkBoth(g graph.Sink, cfg builderConfig, method string, u, v int) error {
	if err := link(g, cfg, method, u, v); err != nil {
		return err
	}
	if g.Directed() {
		return link(g, cfg, method, v, u)
	}

	return nil
}
