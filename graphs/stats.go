// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: connectivity and cycle statistics of a derived graph, computed with
// dfs (components, first cycle) and bfs (diameters, girth).

package graphs

import (
	"fmt"

	"github.com/katalvlaran/cayley/bfs"
	"github.com/katalvlaran/cayley/core"
	"github.com/katalvlaran/cayley/dfs"
)

// Component is one connected component with its diameter (longest shortest
// path, in edges). Members are sorted ascending.
type Component struct {
	Members  []string `json:"members" yaml:"members"`
	Diameter int      `json:"diameter" yaml:"diameter"`
}

// Summary describes the shape of a derived graph.
//
// Girth is the length of a shortest cycle, 0 for a forest. Cycle is the
// first cycle a depth-first walk meets, in canonical rotation; nil for a
// forest.
type Summary struct {
	Vertices   int         `json:"vertices" yaml:"vertices"`
	Edges      int         `json:"edges" yaml:"edges"`
	Components []Component `json:"components" yaml:"components"`
	Connected  bool        `json:"connected" yaml:"connected"`
	Girth      int         `json:"girth" yaml:"girth"`
	Cycle      []string    `json:"cycle,omitempty" yaml:"cycle,omitempty"`
}

// Stats computes vertex and edge counts, connected components with their
// diameters, the girth and one witness cycle. Components are ordered by
// their smallest member; isolated vertices are components of diameter 0.
// An empty graph has no components and is not connected.
//
// Returns nil for a nil (absent) graph.
//
// Implementation:
//   - Stage 1: Copy g into a core.Graph.
//   - Stage 2: DFS from each unvisited vertex (sorted order) to collect components.
//   - Stage 3: BFS from every member; the component diameter is the largest
//     eccentricity, and every non-tree edge (u, v) bounds the girth by
//     depth(u) + depth(v) + 1. The minimum over all sources is exact.
//   - Stage 4: dfs.FindCycle for the witness.
//
// Complexity: O(V·(V + E log Δ)).
func Stats(g *Graph) (*Summary, error) {
	if g == nil {
		return nil, nil
	}
	cg, err := g.ToCore()
	if err != nil {
		return nil, fmt.Errorf("Stats: %w", err)
	}

	sum := &Summary{Vertices: cg.VertexCount(), Edges: cg.EdgeCount(), Components: []Component{}}
	all := cg.Vertices()
	seen := make(map[string]bool, len(all))
	for _, v := range all {
		if seen[v] {
			continue
		}
		res, err := dfs.DFS(cg, v)
		if err != nil {
			return nil, fmt.Errorf("Stats: %w", err)
		}
		var members []string
		for _, u := range all {
			if res.Visited[u] {
				seen[u] = true
				members = append(members, u)
			}
		}
		d, girth, err := sweep(cg, members)
		if err != nil {
			return nil, fmt.Errorf("Stats: %w", err)
		}
		sum.Components = append(sum.Components, Component{Members: members, Diameter: d})
		if girth > 0 && (sum.Girth == 0 || girth < sum.Girth) {
			sum.Girth = girth
		}
	}
	sum.Connected = len(sum.Components) == 1

	if sum.Cycle, err = dfs.FindCycle(cg); err != nil {
		return nil, fmt.Errorf("Stats: %w", err)
	}

	return sum, nil
}

// sweep runs BFS from every member and returns the component diameter and
// its girth (0 if acyclic).
func sweep(cg *core.Graph, members []string) (diameter, girth int, err error) {
	edges := cg.Edges()
	for _, m := range members {
		res, err := bfs.BFS(cg, m)
		if err != nil {
			return 0, 0, err
		}
		if e := res.Eccentricity(); e > diameter {
			diameter = e
		}
		for _, e := range edges {
			du, okU := res.Depth[e.From]
			dv, okV := res.Depth[e.To]
			if !okU || !okV || res.Parent[e.From] == e.To || res.Parent[e.To] == e.From {
				continue
			}
			if c := du + dv + 1; girth == 0 || c < girth {
				girth = c
			}
		}
	}

	return diameter, girth, nil
}
