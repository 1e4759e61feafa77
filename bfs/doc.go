// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order.
//
// It is the traversal behind the relation-graph statistics: connected
// components are the reach sets of repeated searches and a component's
// diameter is the largest eccentricity found by searching from each member.
//
// Determinism
//
//	core.Graph.NeighborIDs is sorted, and BFS enqueues neighbors in that
//	order, so Order is fully reproducible.
//
// Options
//
//   - WithContext: cancellation, checked once per dequeued vertex.
//   - WithOnVisit: callback per visited vertex; an error aborts the search.
//   - WithMaxDepth: d > 0 limits depth, d == 0 means no limit, d < 0 is
//     ErrOptionViolation.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ), the log factor from sorted neighbor lists.
//   - Memory: O(V).
package bfs
