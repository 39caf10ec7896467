// Package motif finds every occurrence of a small pattern graph inside a
// larger target graph, as induced subgraph isomorphisms or as subgraph
// monomorphisms.
//
// The library is organized in layers:
//
//	graph/        - EdgeList (mutable), AdjacencyList and ListMat (immutable search inputs)
//	mapping/      - partial pattern→target mapping with explicit empty slots
//	order/        - vertex order heuristics: GreatestConstraintFirst, Degree, RecursiveDegree
//	consistency/  - equivalence predicates, degree/adjacency checks, structural counts
//	match/        - the backtracking engine and its named pruning variants
//	builder/      - deterministic synthetic graphs (paths, cycles, grids, random)
//	amalfi/       - binary graph files of the MIVIA ARG database
//	cmd/motif     - command line: count matches, generate graphs
//
// Quick start:
//
//	pl := graph.NewEdgeList[graph.Undirected](3)
//	_ = pl.AddEdge(0, 1, 0)
//	_ = pl.AddEdge(1, 2, 0)
//	g := graph.NewAdjacencyList(pl)
//	h := graph.NewListMat(targetEdgeList)
//
//	n, err := match.Count(g, h, order.GreatestConstraintFirst(g),
//		match.WithStrength(match.Mono), match.WithDegreePruning(true))
//
// Every variant of the engine reports the same matches in the same order;
// pruning only changes how much of the search tree is visited.
package motif
