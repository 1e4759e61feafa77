// Package builder generates complete labeled structures for tests, examples
// and the command line.
//
// Every generator is deterministic: the same parameters and options always
// yield the same element order and the same tables.
//
// Generators:
//
//   - IntegersMod(n):      Z_n with addition and multiplication mod n (n ≥ 1).
//   - ProductMod(m, n):    Z_m × Z_n, componentwise, labels "(a,b)".
//   - NullRing(n):         Z_n addition, every product is 0.
//   - GaloisField4():      the field with four elements, labels 0, 1, a, b.
//   - UpperTriangularZ2(): 2×2 upper-triangular matrices over Z_2, a
//     non-commutative ring with identity.
//
// Label schemes (WithLabelScheme) apply to the index-labeled generators
// (IntegersMod, NullRing and both components of ProductMod):
//
//   - DecimalLabel: "0", "1", "2", ...
//   - SymbolLabel:  "A" .. "Z", then "A1", "B1", ...
//   - ExcelLabel:   "A" .. "Z", "AA", "AB", ...
//
// Option constructors panic on meaningless input; generators never panic and
// return errors wrapping ErrTooFewElements instead.
package builder
