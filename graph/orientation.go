// SPDX-License-Identifier: MIT

package graph

// Orientation is the compile-time directedness marker. It is satisfied only
// by Undirected and Directed.
type Orientation interface {
	Undirected | Directed
	directed() bool
}

// Undirected marks graphs whose edges have no direction.
type Undirected struct{}

// Directed marks graphs whose edges are arcs u→v.
type Directed struct{}

func (Undirected) directed() bool { return false }

func (Directed) directed() bool { return true }

// IsDirected reports the orientation carried by D.
func IsDirected[D Orientation]() bool {
	var d D
	return d.directed()
}
