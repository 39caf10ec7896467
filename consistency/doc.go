// SPDX-License-Identifier: MIT

// Package consistency provides the admissibility predicates the matching
// engine composes. Each predicate answers one question about extending a
// partial mapping with the pair (u, v), u a pattern vertex and v a target
// vertex, and reads the mapping without changing it.
//
//   - DegreeCondition   pattern degree does not exceed target degree (per direction).
//   - AdjacentMono      every mapped pattern neighbor of u maps to a target
//     neighbor of v in the same direction, with equivalent edges.
//   - AdjacentInduced   AdjacentMono, and every mapped target neighbor of v
//     is the image of a pattern neighbor of u.
//
// Counting:
//
//	Tally counts neighbors per direction (Out only for undirected graphs).
//	StaticTallies precomputes, for a fixed order, how many neighbors of each
//	pattern vertex come before (backward) and after (forward) it.
//	DynamicCounts keeps the target-side backward tally up to date as target
//	vertices are assigned and released.
package consistency
