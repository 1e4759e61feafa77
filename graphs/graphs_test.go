package graphs_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/classify"
	"github.com/katalvlaran/cayley/graphs"
	"github.com/katalvlaran/cayley/structure"
)

// zn returns integers mod n with multiplication given by mul.
func zn(t *testing.T, n int, mul func(x, y int) int) *structure.Structure {
	t.Helper()
	elems := make([]string, n)
	for i := range elems {
		elems[i] = strconv.Itoa(i)
	}
	add := make([][]string, n)
	mt := make([][]string, n)
	for i := 0; i < n; i++ {
		add[i] = make([]string, n)
		mt[i] = make([]string, n)
		for j := 0; j < n; j++ {
			add[i][j] = elems[(i+j)%n]
			mt[i][j] = elems[mul(i, j)%n]
		}
	}
	s, err := structure.New(elems, add, mt)
	require.NoError(t, err)

	return s
}

func product(x, y int) int { return x * y }

// identities classifies s and returns its identities.
func identities(t *testing.T, s *structure.Structure) (zero, one classify.Identity) {
	t.Helper()
	c, err := classify.Classify(s)
	require.NoError(t, err)

	return c.AdditiveIdentity, c.MultiplicativeIdentity
}

func TestZeroDivisor(t *testing.T) {
	s := zn(t, 6, product)
	zero, _ := identities(t, s)

	g := graphs.ZeroDivisor(s, zero)
	require.NotNil(t, g)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, g.Nodes)
	assert.Equal(t, []graphs.Edge{{"2", "3"}, {"3", "4"}}, g.Edges)
	assert.True(t, g.HasEdge("4", "3"))
}

// TestZeroDivisor_NoSelfLoops: in Z4, 2 * 2 = 0 but no edge is drawn.
func TestZeroDivisor_NoSelfLoops(t *testing.T) {
	s := zn(t, 4, product)
	zero, _ := identities(t, s)

	g := graphs.ZeroDivisor(s, zero)
	require.NotNil(t, g)
	assert.Equal(t, []string{"1", "2", "3"}, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestZeroDivisor_Absent(t *testing.T) {
	s := zn(t, 3, product)
	assert.Nil(t, graphs.ZeroDivisor(s, classify.Identity{}))
	var g *graphs.Graph
	assert.False(t, g.HasEdge("a", "b"))
}

func TestUnit(t *testing.T) {
	s := zn(t, 5, product)
	zero, one := identities(t, s)

	g := graphs.Unit(s, zero, one)
	require.NotNil(t, g)
	assert.Equal(t, []string{"2", "3", "4"}, g.Nodes)
	assert.Equal(t, []graphs.Edge{{"2", "3"}}, g.Edges)
}

// TestUnit_AbsentVersusEmpty separates a missing identity (nil) from a ring
// whose only unit is one (empty graph).
func TestUnit_AbsentVersusEmpty(t *testing.T) {
	null := zn(t, 3, func(x, y int) int { return 0 })
	zero, one := identities(t, null)
	assert.False(t, one.Found)
	assert.Nil(t, graphs.Unit(null, zero, one))

	z4 := zn(t, 4, product)
	zero, one = identities(t, z4)
	g := graphs.Unit(z4, zero, one)
	require.NotNil(t, g)
	assert.Equal(t, []string{"3"}, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestStats(t *testing.T) {
	s := zn(t, 6, product)
	zero, _ := identities(t, s)

	sum, err := graphs.Stats(graphs.ZeroDivisor(s, zero))
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Vertices)
	assert.Equal(t, 2, sum.Edges)
	assert.False(t, sum.Connected)
	assert.Equal(t, []graphs.Component{
		{Members: []string{"1"}, Diameter: 0},
		{Members: []string{"2", "3", "4"}, Diameter: 2},
		{Members: []string{"5"}, Diameter: 0},
	}, sum.Components)
}

func TestStats_EdgeCases(t *testing.T) {
	sum, err := graphs.Stats(nil)
	require.NoError(t, err)
	assert.Nil(t, sum)

	sum, err = graphs.Stats(&graphs.Graph{})
	require.NoError(t, err)
	assert.Empty(t, sum.Components)
	assert.False(t, sum.Connected)

	sum, err = graphs.Stats(&graphs.Graph{Nodes: []string{"a", "b"}, Edges: []graphs.Edge{{"a", "b"}}})
	require.NoError(t, err)
	assert.True(t, sum.Connected)
	assert.Equal(t, 1, sum.Components[0].Diameter)
}

func TestStats_Cycles(t *testing.T) {
	sum, err := graphs.Stats(&graphs.Graph{
		Nodes: []string{"a", "b", "c", "d", "e"},
		Edges: []graphs.Edge{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}, {"d", "e"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Girth)
	assert.Equal(t, []string{"a", "b", "c", "d"}, sum.Cycle)
	assert.Equal(t, 3, sum.Components[0].Diameter)

	sum, err = graphs.Stats(&graphs.Graph{
		Nodes: []string{"a", "b", "c", "x", "y", "z", "w"},
		Edges: []graphs.Edge{
			{"x", "y"}, {"y", "z"}, {"z", "w"}, {"w", "x"},
			{"a", "b"}, {"b", "c"}, {"c", "a"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Girth)
	assert.Equal(t, []string{"a", "b", "c"}, sum.Cycle)
	assert.Len(t, sum.Components, 2)

	s := zn(t, 6, product)
	zero, _ := identities(t, s)
	sum, err = graphs.Stats(graphs.ZeroDivisor(s, zero))
	require.NoError(t, err)
	assert.Zero(t, sum.Girth)
	assert.Nil(t, sum.Cycle)
}
