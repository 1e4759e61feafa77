// Package matrix holds operation tables in index form.
//
// A Table is an n×n row-major matrix of ints. Row i, column j stores the
// index of the element i∘j for some binary operation ∘ over n labeled
// elements. Cells are NOT required to lie in [0, n): tables built
// programmatically may break closure, and the axiom checks report it.
//
// Tables are small and dense by assumption; every operation is O(n²) at
// most and allocates a fresh result, so a Table handed to a caller is never
// shared with another.
package matrix
