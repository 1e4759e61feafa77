// SPDX-License-Identifier: MIT
//
// File: graphs.go
// Role: derive the zero-divisor and unit graphs of a classified structure.
// Determinism:
//   - Nodes follow the declared element order; edges are emitted for i < j in
//     ascending (i, j) order.

// Package graphs derives relation graphs from a finite ring-like structure.
//
// A derived graph is returned as *Graph. A nil *Graph means "absent" (the
// identity it depends on does not exist), which is distinct from a Graph with
// no nodes or no edges.
package graphs

import (
	"github.com/katalvlaran/cayley/classify"
	"github.com/katalvlaran/cayley/core"
	"github.com/katalvlaran/cayley/structure"
)

// Edge is an unordered pair of element labels, smaller declared index first.
type Edge [2]string

// Graph is a plain node/edge list ready for layout or serialization.
type Graph struct {
	Nodes []string `json:"nodes" yaml:"nodes"`
	Edges []Edge   `json:"edges" yaml:"edges"`
}

// ZeroDivisor builds the zero-divisor graph: every element except zero is a
// node, and i, j (i != j) are joined iff i * j == zero. Only i < j is scanned,
// so edges are undirected and never self-loops.
//
// Returns nil when zero is not found.
// Complexity: O(n²).
func ZeroDivisor(s *structure.Structure, zero classify.Identity) *Graph {
	if s == nil || !zero.Found {
		return nil
	}
	n := s.Size()
	g := &Graph{Nodes: []string{}, Edges: []Edge{}}
	var i, j int
	for i = 0; i < n; i++ {
		if i == zero.Index {
			continue
		}
		g.Nodes = append(g.Nodes, s.Labels.Label(i))
	}
	for i = 0; i < n; i++ {
		if i == zero.Index {
			continue
		}
		for j = i + 1; j < n; j++ {
			if j == zero.Index {
				continue
			}
			if v, _ := s.Mul.Cell(i, j); v == zero.Index {
				g.Edges = append(g.Edges, Edge{s.Labels.Label(i), s.Labels.Label(j)})
			}
		}
	}

	return g
}

// Unit builds the unit graph: nodes are elements other than zero and one that
// have a two-sided multiplicative inverse; units i, j are joined iff
// i * j == one or j * i == one.
//
// Returns nil when one is not found. When zero is not found no element is
// excluded as zero.
// Complexity: O(n²).
func Unit(s *structure.Structure, zero, one classify.Identity) *Graph {
	if s == nil || !one.Found {
		return nil
	}
	n := s.Size()
	var units []int
	var i, j int
	for i = 0; i < n; i++ {
		if i == one.Index || (zero.Found && i == zero.Index) {
			continue
		}
		for j = 0; j < n; j++ {
			l, _ := s.Mul.Cell(i, j)
			r, _ := s.Mul.Cell(j, i)
			if l == one.Index && r == one.Index {
				units = append(units, i)
				break
			}
		}
	}

	g := &Graph{Nodes: make([]string, 0, len(units)), Edges: []Edge{}}
	for _, u := range units {
		g.Nodes = append(g.Nodes, s.Labels.Label(u))
	}
	for i = 0; i < len(units); i++ {
		for j = i + 1; j < len(units); j++ {
			a, b := units[i], units[j]
			ab, _ := s.Mul.Cell(a, b)
			ba, _ := s.Mul.Cell(b, a)
			if ab == one.Index || ba == one.Index {
				g.Edges = append(g.Edges, Edge{s.Labels.Label(a), s.Labels.Label(b)})
			}
		}
	}

	return g
}

// HasEdge reports whether a and b are joined, in either order.
func (g *Graph) HasEdge(a, b string) bool {
	if g == nil {
		return false
	}
	for _, e := range g.Edges {
		if (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a) {
			return true
		}
	}

	return false
}

// ToCore copies g into a core.Graph for traversal. Returns nil for a nil g.
func (g *Graph) ToCore() (*core.Graph, error) {
	if g == nil {
		return nil, nil
	}
	cg := core.NewGraph()
	for _, v := range g.Nodes {
		if err := cg.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges {
		if _, err := cg.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return cg, nil
}
