// SPDX-License-Identifier: MIT

// Package amalfi reads and writes the unlabeled binary graph format of the
// MIVIA ARG database ("amalfi" files).
//
// A file is a sequence of little-endian 16-bit words:
//
//	n                        vertex count
//	k_0  t_0,0 ... t_0,k0-1  out-arcs of vertex 0
//	...
//	k_n-1 ...                out-arcs of vertex n-1
//
// Arcs are directed. Reading into an undirected EdgeList adds every arc as
// an edge and tolerates the mirrored arc the writer emits for it.
//
// Errors:
//
//	ErrTruncated    - the input ends inside the header or an adjacency row.
//	ErrBadVertex    - an arc target is out of range, a self-loop or a duplicate.
//	ErrTrailingData - bytes remain after the last declared row.
//	ErrTooLarge     - Write received a graph with more than 65535 vertices.
//
// All errors carry the offending position and match with errors.Is.
package amalfi
