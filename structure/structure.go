// SPDX-License-Identifier: MIT
//
// File: structure.go
// Role: Raw input shape and the validated Structure triple (labels, add, mul).

// Package structure turns labeled Cayley tables into index form.
//
// It is the single entry point for untrusted input: New validates the element
// list and both tables and either returns a fully indexed Structure or an
// error wrapping ErrDuplicateElement, ErrEmptyElement or ErrInvalidTable.
// Nothing downstream re-validates.
package structure

import (
	"fmt"

	"github.com/katalvlaran/cayley/matrix"
)

// Raw is a structure as supplied by a caller: declared elements plus the two
// operation tables written with those labels.
type Raw struct {
	Elements []string   `json:"elements" yaml:"elements"`
	Add      [][]string `json:"add" yaml:"add"`
	Mul      [][]string `json:"mul" yaml:"mul"`
}

// Structure is the validated triple (elements, addition, multiplication) in
// index form. It is read-only once built and is threaded explicitly into
// every check, classifier and graph derivation.
type Structure struct {
	Labels *Labels
	Add    *matrix.Table
	Mul    *matrix.Table
}

// New validates and indexes a labeled structure.
//
// Implementation:
//   - Stage 1: NewLabels (duplicates, empty labels).
//   - Stage 2: IndexTable for "add", then for "mul".
//
// Errors:
//   - ErrDuplicateElement, ErrEmptyElement, ErrInvalidTable (wrapped with context).
//
// Complexity: O(n²).
func New(elements []string, add, mul [][]string) (*Structure, error) {
	labels, err := NewLabels(elements)
	if err != nil {
		return nil, fmt.Errorf("structure.New: %w", err)
	}
	addT, err := labels.IndexTable("add", add)
	if err != nil {
		return nil, fmt.Errorf("structure.New: %w", err)
	}
	mulT, err := labels.IndexTable("mul", mul)
	if err != nil {
		return nil, fmt.Errorf("structure.New: %w", err)
	}

	return &Structure{Labels: labels, Add: addT, Mul: mulT}, nil
}

// FromRaw is New applied to a Raw value.
func FromRaw(r Raw) (*Structure, error) {
	return New(r.Elements, r.Add, r.Mul)
}

// FromTables assembles a Structure from tables built in index form. Only the
// shape is checked: cells may fall outside [0, n), which the closure checks
// then report as a normal failed verdict.
//
// Errors:
//   - ErrNilStructure if any argument is nil.
//   - ErrInvalidTable if a table's side differs from labels.Len().
func FromTables(labels *Labels, add, mul *matrix.Table) (*Structure, error) {
	if labels == nil || add == nil || mul == nil {
		return nil, fmt.Errorf("structure.FromTables: %w", ErrNilStructure)
	}
	n := labels.Len()
	if add.Size() != n {
		return nil, fmt.Errorf("structure.FromTables: add side %d, want %d: %w", add.Size(), n, ErrInvalidTable)
	}
	if mul.Size() != n {
		return nil, fmt.Errorf("structure.FromTables: mul side %d, want %d: %w", mul.Size(), n, ErrInvalidTable)
	}

	return &Structure{Labels: labels, Add: add, Mul: mul}, nil
}

// Size returns the number of elements.
func (s *Structure) Size() int { return s.Labels.Len() }

// Raw maps the structure back to labels. It fails with ErrInvalidTable only
// for programmatic tables holding out-of-range cells.
func (s *Structure) Raw() (Raw, error) {
	add, err := s.Labels.LabelTable(s.Add)
	if err != nil {
		return Raw{}, fmt.Errorf("Structure.Raw(add): %w", err)
	}
	mul, err := s.Labels.LabelTable(s.Mul)
	if err != nil {
		return Raw{}, fmt.Errorf("Structure.Raw(mul): %w", err)
	}

	return Raw{Elements: s.Labels.Elements(), Add: add, Mul: mul}, nil
}
