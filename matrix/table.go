// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Table, a square row-major int matrix storing an operation in index form.
// Determinism:
//   - Rows() and String() enumerate rows then columns in ascending index order.
// Concurrency:
//   - A Table is not synchronized. The analysis pipeline never mutates a table
//     after construction, so concurrent readers are safe.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is an n×n matrix of element indices.
// n is the side, data holds n*n cells in row-major order.
type Table struct {
	n    int   // side length
	data []int // flat backing storage, len == n*n
}

// NewTable creates an n×n Table filled with zeros.
// n == 0 is allowed and yields an empty table (the empty structure).
// Complexity: O(n²) time and memory.
func NewTable(n int) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewTable(%d): %w", n, ErrBadShape)
	}

	return &Table{n: n, data: make([]int, n*n)}, nil
}

// FromRows copies rows into a new Table.
// Every row must have exactly len(rows) cells, otherwise ErrNonSquare.
// Cell values are copied verbatim; range is not checked here.
// Complexity: O(n²).
func FromRows(rows [][]int) (*Table, error) {
	n := len(rows)
	t := &Table{n: n, data: make([]int, n*n)}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		copy(t.data[i*n:(i+1)*n], rows[i])
	}

	return t, nil
}

// Size returns the side length n.
func (t *Table) Size() int {
	return t.n
}

// Cell returns the value at (i, j) and true, or (0, false) if (i, j) is
// outside the table. It is the hot-path accessor for the axiom scans, which
// feed cell values back in as indices and must survive non-closed tables.
// Complexity: O(1).
func (t *Table) Cell(i, j int) (int, bool) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, false
	}

	return t.data[i*t.n+j], true
}

// Get returns the value at (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (t *Table) Get(i, j int) (int, error) {
	v, ok := t.Cell(i, j)
	if !ok {
		return 0, fmt.Errorf("Table.Get(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v, nil
}

// Set assigns v at (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Table) Set(i, j, v int) error {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return fmt.Errorf("Table.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	t.data[i*t.n+j] = v

	return nil
}

// Transpose returns a new Table u with u[i][j] == t[j][i].
// Complexity: O(n²).
func (t *Table) Transpose() *Table {
	u := &Table{n: t.n, data: make([]int, len(t.data))}
	var i, j int
	for i = 0; i < t.n; i++ {
		for j = 0; j < t.n; j++ {
			u.data[j*t.n+i] = t.data[i*t.n+j]
		}
	}

	return u
}

// Equal reports whether t and u have the same side and identical cells.
// Two nil tables are equal; a nil and a non-nil table are not.
// Complexity: O(n²).
func (t *Table) Equal(u *Table) bool {
	if t == nil || u == nil {
		return t == u
	}
	if t.n != u.n {
		return false
	}
	for k := range t.data {
		if t.data[k] != u.data[k] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of t.
// Complexity: O(n²).
func (t *Table) Clone() *Table {
	data := make([]int, len(t.data))
	copy(data, t.data)

	return &Table{n: t.n, data: data}
}

// Rows exports the table as freshly allocated rows, the shape expected by
// heatmap renderers.
// Complexity: O(n²).
func (t *Table) Rows() [][]int {
	rows := make([][]int, t.n)
	var i int
	for i = 0; i < t.n; i++ {
		row := make([]int, t.n)
		copy(row, t.data[i*t.n:(i+1)*t.n])
		rows[i] = row
	}

	return rows
}

// String implements fmt.Stringer, one bracketed row per line.
func (t *Table) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < t.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < t.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(t.data[i*t.n+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
