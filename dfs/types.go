// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: vertex states, options, sentinel errors and the Result of a walk.

package dfs

import (
	"context"
	"errors"
)

// Vertex states during a walk.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // all descendants explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a walk.
type Option func(*Options)

// Options holds the parameters of one walk.
type Options struct {
	// Ctx allows cancellation; checked once per discovered vertex.
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	// An error aborts the walk.
	OnVisit func(id string) error

	// OnExit, if non-nil, runs after a vertex's descendants are explored,
	// before it is appended to Order. An error aborts the walk.
	OnExit func(id string) error

	// FullTraversal restarts from every unvisited vertex in sorted order.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, single-source mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context. A nil ctx keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithFullTraversal covers every component, not only the start's.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a walk.
type Result struct {
	// Order lists vertices in finishing (post-order) sequence.
	Order []string

	// Depth is the tree depth of each visited vertex; roots have depth 0.
	Depth map[string]int

	// Parent maps each non-root visited vertex to its discoverer.
	Parent map[string]string

	// Visited flags reached vertices.
	Visited map[string]bool
}
