// SPDX-License-Identifier: MIT
//
// mapping.go - partial injective vertex mapping.
//
// Contract:
//   - Forward and inverse maps are exact inverses after every call.
//   - Assign refuses an assigned pattern vertex or a used target vertex.
//   - Out-of-range indices panic like slice indexing.
//
// Complexity:
//   - Assign, Unassign, Image, PreImage O(1); Clear and Consistent O(m + n).
//
// Determinism:
//   - Pairs and Targets list pattern vertices in ascending order.

// Package mapping holds the partial vertex mapping maintained by the
// matching engine: a forward map from pattern vertices to target vertices
// and its inverse, kept as exact inverses of each other at all times.
//
// Empty slots are explicit. Image and PreImage return (index, ok); callers
// never see an out-of-range "unassigned" index.
package mapping

import "fmt"

// Pair is one assignment pattern vertex → target vertex.
type Pair struct {
	Pattern int
	Target  int
}

// Mapping is a partial injective map from 0..m-1 (pattern) into 0..n-1 (target).
// It is owned by exactly one search; it is not safe for concurrent use.
type Mapping struct {
	// Slots store index+1; zero is the empty slot.
	img  []int // pattern → target
	pre  []int // target → pattern
	size int
}

// New returns an empty mapping for a pattern of m vertices and a target of n.
// Complexity: O(m + n).
func New(m, n int) *Mapping {
	return &Mapping{img: make([]int, m), pre: make([]int, n)}
}

// PatternSize returns m.
func (mp *Mapping) PatternSize() int { return len(mp.img) }

// TargetSize returns n.
func (mp *Mapping) TargetSize() int { return len(mp.pre) }

// Len returns the number of assigned pairs.
func (mp *Mapping) Len() int { return mp.size }

// Empty reports whether no pair is assigned.
func (mp *Mapping) Empty() bool { return mp.size == 0 }

// Complete reports whether every pattern vertex is assigned.
func (mp *Mapping) Complete() bool { return mp.size == len(mp.img) }

// Image returns the target assigned to pattern vertex u.
func (mp *Mapping) Image(u int) (int, bool) {
	s := mp.img[u]
	return s - 1, s != 0
}

// PreImage returns the pattern vertex assigned to target vertex v.
func (mp *Mapping) PreImage(v int) (int, bool) {
	s := mp.pre[v]
	return s - 1, s != 0
}

// Mapped reports whether pattern vertex u is assigned.
func (mp *Mapping) Mapped(u int) bool { return mp.img[u] != 0 }

// Used reports whether target vertex v is the image of some pattern vertex.
func (mp *Mapping) Used(v int) bool { return mp.pre[v] != 0 }

// Assign records u → v on both sides. It reports false, leaving the mapping
// unchanged, when u is already assigned or v is already used.
// Complexity: O(1).
func (mp *Mapping) Assign(u, v int) bool {
	if mp.img[u] != 0 || mp.pre[v] != 0 {
		return false
	}
	mp.img[u] = v + 1
	mp.pre[v] = u + 1
	mp.size++

	return true
}

// Unassign clears the pair containing pattern vertex u on both sides and
// returns the target it was mapped to.
// Complexity: O(1).
func (mp *Mapping) Unassign(u int) (int, bool) {
	s := mp.img[u]
	if s == 0 {
		return 0, false
	}
	mp.pre[s-1] = 0
	mp.img[u] = 0
	mp.size--

	return s - 1, true
}

// Clear empties the mapping.
// Complexity: O(m + n).
func (mp *Mapping) Clear() {
	clear(mp.img)
	clear(mp.pre)
	mp.size = 0
}

// Pairs returns a copy of the assigned pairs in ascending pattern order.
func (mp *Mapping) Pairs() []Pair {
	out := make([]Pair, 0, mp.size)
	for u, s := range mp.img {
		if s != 0 {
			out = append(out, Pair{Pattern: u, Target: s - 1})
		}
	}

	return out
}

// Targets returns a copy of the forward map for a complete mapping: element
// u is the image of pattern vertex u. It returns nil when the mapping is
// not complete.
func (mp *Mapping) Targets() []int {
	if !mp.Complete() {
		return nil
	}
	out := make([]int, len(mp.img))
	for u, s := range mp.img {
		out[u] = s - 1
	}

	return out
}

// Consistent verifies the mutual-inverse invariant: every assigned pattern
// slot points at a target slot pointing back, and the pair count matches
// on both sides.
// Complexity: O(m + n).
func (mp *Mapping) Consistent() bool {
	var fwd, inv int
	for u, s := range mp.img {
		if s == 0 {
			continue
		}
		fwd++
		if s > len(mp.pre) || mp.pre[s-1] != u+1 {
			return false
		}
	}
	for v, s := range mp.pre {
		if s == 0 {
			continue
		}
		inv++
		if s > len(mp.img) || mp.img[s-1] != v+1 {
			return false
		}
	}

	return fwd == mp.size && inv == mp.size
}

// String renders the assigned pairs as "[0→3 1→5]".
func (mp *Mapping) String() string {
	return fmt.Sprint(mp.Pairs())
}

// String renders the pair as "u→v".
func (p Pair) String() string {
	return fmt.Sprintf("%d→%d", p.Pattern, p.Target)
}
