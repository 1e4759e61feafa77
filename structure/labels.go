// SPDX-License-Identifier: MIT
//
// File: labels.go
// Role: Labels, the bijection between element labels and dense indices 0..n-1.
// Determinism:
//   - Index order is exactly the declared element order.
// Concurrency:
//   - Labels is immutable after NewLabels; safe for concurrent readers.

package structure

import (
	"fmt"

	"github.com/katalvlaran/cayley/matrix"
)

// Labels owns the ordered element list and its reverse lookup.
// It is built once per analysis and shared read-only by every check.
type Labels struct {
	order []string       // index -> label
	index map[string]int // label -> index
}

// NewLabels validates elements and builds the bijection.
//
// Implementation:
//   - Stage 1: Reject empty labels (ErrEmptyElement).
//   - Stage 2: Reject repeated labels (ErrDuplicateElement), naming both positions.
//   - Stage 3: Copy the list so the caller's slice is never retained.
//
// Complexity: O(n) time and space.
func NewLabels(elements []string) (*Labels, error) {
	l := &Labels{
		order: make([]string, len(elements)),
		index: make(map[string]int, len(elements)),
	}
	for i, e := range elements {
		if e == "" {
			return nil, fmt.Errorf("NewLabels: element %d: %w", i, ErrEmptyElement)
		}
		if prev, dup := l.index[e]; dup {
			return nil, fmt.Errorf("NewLabels: %q at positions %d and %d: %w", e, prev, i, ErrDuplicateElement)
		}
		l.index[e] = i
		l.order[i] = e
	}

	return l, nil
}

// Len returns the number of elements n.
func (l *Labels) Len() int { return len(l.order) }

// Index returns the position of label and whether it is declared.
// Complexity: O(1).
func (l *Labels) Index(label string) (int, bool) {
	i, ok := l.index[label]
	return i, ok
}

// Label returns the label at index i. Indices outside [0, n) only arise
// from non-closed programmatic tables; they render as "#i" so witnesses
// stay printable.
// Complexity: O(1).
func (l *Labels) Label(i int) string {
	if i < 0 || i >= len(l.order) {
		return fmt.Sprintf("#%d", i)
	}

	return l.order[i]
}

// Elements returns a copy of the declared element list.
func (l *Labels) Elements() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)

	return out
}

// LabelsOf maps a list of indices to labels, preserving order.
func (l *Labels) LabelsOf(idx []int) []string {
	if len(idx) == 0 {
		return nil
	}
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = l.Label(i)
	}

	return out
}

// IndexTable translates a table of labels into index form.
// name ("add", "mul") only decorates error messages.
//
// Errors:
//   - ErrInvalidTable if raw is not n×n, or a cell is not a declared label.
//
// Complexity: O(n²).
func (l *Labels) IndexTable(name string, raw [][]string) (*matrix.Table, error) {
	n := len(l.order)
	if len(raw) != n {
		return nil, fmt.Errorf("IndexTable(%s): %d rows, want %d: %w", name, len(raw), n, ErrInvalidTable)
	}
	rows := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		if len(raw[i]) != n {
			return nil, fmt.Errorf("IndexTable(%s): row %d has %d cells, want %d: %w", name, i, len(raw[i]), n, ErrInvalidTable)
		}
		rows[i] = make([]int, n)
		for j = 0; j < n; j++ {
			v, ok := l.index[raw[i][j]]
			if !ok {
				return nil, fmt.Errorf("IndexTable(%s): cell (%d,%d) = %q is not an element: %w", name, i, j, raw[i][j], ErrInvalidTable)
			}
			rows[i][j] = v
		}
	}

	// Shape was checked above, so FromRows cannot fail here.
	return matrix.FromRows(rows)
}

// LabelTable maps an index table back to labels. It is the inverse of
// IndexTable for every table IndexTable accepts.
//
// Errors:
//   - ErrNilStructure for a nil table.
//   - ErrInvalidTable if the side differs from n or a cell is outside [0, n).
//
// Complexity: O(n²).
func (l *Labels) LabelTable(t *matrix.Table) ([][]string, error) {
	if t == nil {
		return nil, fmt.Errorf("LabelTable: %w", ErrNilStructure)
	}
	n := len(l.order)
	if t.Size() != n {
		return nil, fmt.Errorf("LabelTable: side %d, want %d: %w", t.Size(), n, ErrInvalidTable)
	}
	out := make([][]string, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]string, n)
		for j = 0; j < n; j++ {
			v, _ := t.Cell(i, j)
			if v < 0 || v >= n {
				return nil, fmt.Errorf("LabelTable: cell (%d,%d) = %d: %w", i, j, v, ErrInvalidTable)
			}
			out[i][j] = l.order[v]
		}
	}

	return out, nil
}
