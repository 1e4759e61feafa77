// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers match them with errors.Is; context is attached by wrapping
// with fmt.Errorf("Method(args): %w", ErrX) at the call site.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested side length is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Checked accessors (Get/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a row's length differs from the number of rows.
	ErrNonSquare = errors.New("matrix: table is not square")
)
