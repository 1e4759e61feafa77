// Package axiom implements the ring axioms as pure predicates over index
// tables.
//
// Every check is total: it accepts any square matrix.Table, including tables
// whose cells fall outside [0, n), and returns a Result rather than an error.
// A failed check carries the FIRST witness in a fixed nested-loop order (outer
// index ascending, then middle, then inner). That order is part of the
// contract: callers and tests may rely on which counterexample is reported.
//
// Checks never short-circuit across properties; each one stops at its own
// first witness.
//
// Complexity:
//
//	Closed, Commutative, FindIdentity, HasInverses,
//	ZeroDivisorFree, AllNonzeroInvertible        O(n²)
//	Associative, Distributive                    O(n³)
package axiom
