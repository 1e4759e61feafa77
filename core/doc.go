// Package core provides a small thread-safe undirected graph keyed by string
// vertex IDs.
//
// It backs the relation graphs derived from a finite ring (zero-divisor and
// unit graphs) and is what the traversal package bfs walks.
//
// The Graph G = (V, E) is simple by default:
//
//   - edges are undirected and mirrored in the adjacency map,
//   - at most one edge joins two vertices (ErrMultiEdgeNotAllowed),
//   - self-loops are rejected unless WithLoops is given (ErrLoopNotAllowed).
//
// Concurrency:
//
//	Separate sync.RWMutex locks guard vertices (muVert) and edges plus
//	adjacency (muEdgeAdj). Lock order is always muVert -> muEdgeAdj.
//
// Determinism:
//
//	Vertices(), Edges() and NeighborIDs() return sorted results, so output
//	never depends on map iteration order.
//
// Core Methods:
//
//	AddVertex(id string) error                       // O(1)
//	HasVertex(id string) bool                        // O(1)
//	AddEdge(from, to string) (edgeID string, error)  // O(1)
//	HasEdge(from, to string) bool                    // O(1)
//	NeighborIDs(id string) ([]string, error)         // O(d log d)
//	Degree(id string) (int, error)                   // O(1)
//	Vertices() []string                              // O(V log V)
//	Edges() []*Edge                                  // O(E log E)
//	VertexCount(), EdgeCount() int                   // O(1)
package core
