// SPDX-License-Identifier: MIT
// Package: cayley/structure
//
// errors.go - sentinel errors for the structure package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (table name, row, column, label) is attached with %w at the
//     failure site, never baked into the sentinel text.
//   • Validation order: element list first, then the addition table, then
//     the multiplication table. The first problem found is returned.

package structure

import "errors"

// ErrDuplicateElement indicates that the element list repeats a label.
var ErrDuplicateElement = errors.New("structure: duplicate element")

// ErrEmptyElement indicates an empty label. Labels double as graph vertex
// IDs downstream, where the empty string is reserved.
var ErrEmptyElement = errors.New("structure: empty element label")

// ErrInvalidTable indicates that an operation table is not n×n for the
// declared n, or that a cell names a label outside the element set.
var ErrInvalidTable = errors.New("structure: invalid operation table")

// ErrNilStructure indicates that a nil *Structure or nil table was supplied.
var ErrNilStructure = errors.New("structure: nil structure")
