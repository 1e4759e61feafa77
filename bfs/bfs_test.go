package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/bfs"
	"github.com/katalvlaran/cayley/core"
)

// path builds the undirected path v[0]-v[1]-...-v[k].
func path(t *testing.T, v ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(v); i++ {
		_, err := g.AddEdge(v[i], v[i+1])
		require.NoError(t, err)
	}

	return g
}

func TestBFS_OrderAndDepth(t *testing.T) {
	g := path(t, "A", "B", "C", "D")
	_, err := g.AddEdge("A", "E")
	require.NoError(t, err)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E", "C", "D"}, res.Order)
	assert.Equal(t, 3, res.Depth["D"])
	assert.Equal(t, 3, res.Eccentricity())

	p, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p)
}

func TestBFS_Unreachable(t *testing.T) {
	g := path(t, "A", "B")
	require.NoError(t, g.AddVertex("Z"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.NotContains(t, res.Depth, "Z")
	_, err = res.PathTo("Z")
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(path(t, "A", "B", "C", "D"), "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	_, err = bfs.BFS(path(t, "A", "B"), "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "A")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	stop := errors.New("stop")
	_, err = bfs.BFS(path(t, "A", "B"), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(path(t, "A", "B"), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
