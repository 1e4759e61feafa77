// Package dfs implements depth-first search and cycle finding on the
// undirected simple graphs built by core.
//
// What:
//
//   - DFS: explores each branch before backtracking, from one start vertex
//     or over the whole forest (WithFullTraversal). Pre- and post-order hooks
//     may abort the walk.
//   - FindCycle: the first simple cycle met by a full traversal, in
//     canonical rotation, or nil for a forest.
//
// Vertex states follow the usual coloring: White (unseen), Gray (on the
// recursion stack), Black (finished). In an undirected simple graph an edge
// to a Gray vertex other than the parent closes a cycle.
//
// Determinism
//
//	Vertices and NeighborIDs are sorted, so Order and the cycle returned by
//	FindCycle are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ).
//   - Memory: O(V) for the recursion stack and state maps.
package dfs
