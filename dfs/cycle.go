// SPDX-License-Identifier: MIT
//
// File: cycle.go
// Role: first-cycle detection with three-color marking on undirected graphs.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/cayley/core"
)

// FindCycle returns the first simple cycle reached by a full traversal in
// sorted vertex order, rotated to start at its smallest vertex and oriented
// so the second vertex is smaller than the last. A self-loop is a cycle of
// length 1. Returns nil when g is a forest.
//
// Implementation:
//   - Stage 1: Color every vertex White.
//   - Stage 2: From each White vertex, recurse; an edge to a Gray vertex
//     other than the parent is a back edge and the stack slice from that
//     vertex to the current one is the cycle.
//   - Stage 3: Canonicalize the rotation and orientation.
//
// Complexity: O(V + E log Δ) time, O(V) memory.
func FindCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	f := &cycleFinder{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if f.state[v] != White {
			continue
		}
		cycle, err := f.visit(v, "")
		if err != nil {
			return nil, fmt.Errorf("FindCycle: %w", err)
		}
		if cycle != nil {
			return canonical(cycle), nil
		}
	}

	return nil, nil
}

type cycleFinder struct {
	graph *core.Graph
	state map[string]int
	path  []string
}

// visit returns the first cycle closed below id, or nil.
func (f *cycleFinder) visit(id, parent string) ([]string, error) {
	f.state[id] = Gray
	f.path = append(f.path, id)

	nbs, err := f.graph.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	for _, nid := range nbs {
		if nid == id {
			return []string{id}, nil
		}
		if nid == parent {
			continue
		}
		switch f.state[nid] {
		case Gray:
			var i int
			for i = len(f.path) - 1; f.path[i] != nid; i-- {
			}
			return append([]string(nil), f.path[i:]...), nil
		case White:
			cycle, err := f.visit(nid, id)
			if err != nil || cycle != nil {
				return cycle, err
			}
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil, nil
}

// canonical rotates c to start at its minimum and picks the orientation
// whose second element is smaller.
func canonical(c []string) []string {
	n := len(c)
	if n < 3 {
		return c
	}
	var i, m int
	for i = 1; i < n; i++ {
		if c[i] < c[m] {
			m = i
		}
	}
	out := make([]string, n)
	for i = 0; i < n; i++ {
		out[i] = c[(m+i)%n]
	}
	if out[n-1] < out[1] {
		for i = 1; i < n-i; i++ {
			out[i], out[n-i] = out[n-i], out[i]
		}
	}

	return out
}
