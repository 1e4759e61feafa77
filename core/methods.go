// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: vertex and edge lifecycle plus read-only queries.
// Determinism:
//   - Vertices() and NeighborIDs() are sorted lexicographically.
//   - Edges() is sorted by insertion (edge IDs "e1", "e2", ... compared numerically).
// Concurrency:
//   - Mutations take the write lock of the map they touch; queries take read locks.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix yields stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]string)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id exists (empty ID => false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge joins from and to, creating missing endpoints, and returns the new
// edge ID.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Ensure both endpoints via AddVertex.
//  3. Under muEdgeAdj, reject a parallel edge, then store and mirror.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}
	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether from and to are adjacent. Order is irrelevant.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the sorted IDs adjacent to id. A self-loop lists id
// itself.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	ids := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		ids = append(ids, nb)
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of distinct neighbors of id; a self-loop counts
// once.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// edgeSeq extracts the numeric part of an edge ID.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)
	return n
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
