// Package matrix_test contains unit tests for Table.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/matrix"
)

// TestNewTable_Shape ensures NewTable rejects negative sides and accepts zero.
func TestNewTable_Shape(t *testing.T) {
	_, err := matrix.NewTable(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := matrix.NewTable(0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Size())
	require.Empty(t, empty.Rows())
}

// TestFromRows_NonSquare ensures ragged or rectangular input is rejected.
func TestFromRows_NonSquare(t *testing.T) {
	_, err := matrix.FromRows([][]int{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromRows([][]int{{0, 1, 2}, {1, 2, 0}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestGetSet_OutOfRange ensures checked accessors return ErrOutOfRange.
func TestGetSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewTable(2)
	require.NoError(t, err)

	_, err = m.Get(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Get(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	_, ok := m.Cell(5, 5)
	require.False(t, ok)
}

// TestTranspose_Equal checks that a symmetric table equals its transpose and
// an asymmetric one does not.
func TestTranspose_Equal(t *testing.T) {
	sym, err := matrix.FromRows([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.True(t, sym.Equal(sym.Transpose()))

	asym, err := matrix.FromRows([][]int{{0, 0}, {1, 1}})
	require.NoError(t, err)
	tr := asym.Transpose()
	require.False(t, asym.Equal(tr))
	require.Equal(t, [][]int{{0, 1}, {0, 1}}, tr.Rows())
	require.True(t, asym.Equal(tr.Transpose()))
}

// TestClone_Independent ensures Clone and Rows never alias the source.
func TestClone_Independent(t *testing.T) {
	m, err := matrix.FromRows([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := m.Get(0, 0)
	require.Equal(t, 0, v)

	rows := m.Rows()
	rows[1][1] = 42
	v, _ = m.Get(1, 1)
	require.Equal(t, 0, v)
}

// TestEqual_Nil covers nil handling and size mismatch.
func TestEqual_Nil(t *testing.T) {
	var a, b *matrix.Table
	require.True(t, a.Equal(b))

	m, _ := matrix.NewTable(1)
	require.False(t, a.Equal(m))
	require.False(t, m.Equal(a))

	n, _ := matrix.NewTable(2)
	require.False(t, m.Equal(n))
}

// TestString formats one row per line.
func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1]\n[1, 0]\n", m.String())
}
