// SPDX-License-Identifier: MIT
//
// File: checks.go
// Role: the axiom predicates.
// Determinism:
//   - Every scan is a nested loop over ascending indices and returns its
//     first witness; the order is documented per function.

package axiom

import "github.com/katalvlaran/cayley/matrix"

// at composes lookups: it returns t[i][j] when the previous step succeeded
// and (i, j) is inside the table. A failed step poisons the whole chain, so
// an equation whose side leaves the table never compares equal.
func at(t *matrix.Table, i, j int, ok bool) (int, bool) {
	if !ok {
		return 0, false
	}

	return t.Cell(i, j)
}

// Closed reports whether every cell lies in [0, n).
// Scan order: i outer, j inner. Witness: (i, j).
func Closed(t *matrix.Table) Result {
	n := t.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ := t.Cell(i, j)
			if v < 0 || v >= n {
				return fails(LawClosure, i, j)
			}
		}
	}

	return holds()
}

// Associative reports whether (a∘b)∘c == a∘(b∘c) for all a, b, c.
// Scan order: a outer, b middle, c inner. Witness: (a, b, c).
func Associative(t *matrix.Table) Result {
	n := t.Size()
	var a, b, c int
	for a = 0; a < n; a++ {
		for b = 0; b < n; b++ {
			ab, abOK := t.Cell(a, b)
			for c = 0; c < n; c++ {
				left, lok := at(t, ab, c, abOK)
				bc, bcOK := t.Cell(b, c)
				right, rok := at(t, a, bc, bcOK)
				if !lok || !rok || left != right {
					return fails(LawAssociativity, a, b, c)
				}
			}
		}
	}

	return holds()
}

// FindIdentity returns the smallest e with t[e][i] == i and t[i][e] == i for
// every i. Uniqueness is not verified.
func FindIdentity(t *matrix.Table) (int, bool) {
	n := t.Size()
	var e, i int
	for e = 0; e < n; e++ {
		for i = 0; i < n; i++ {
			l, _ := t.Cell(e, i)
			r, _ := t.Cell(i, e)
			if l != i || r != i {
				break
			}
		}
		if i == n {
			return e, true
		}
	}

	return 0, false
}

// twoSidedInverse reports whether some b has t[a][b] == id and t[b][a] == id.
func twoSidedInverse(t *matrix.Table, a, id int) bool {
	n := t.Size()
	var b int
	for b = 0; b < n; b++ {
		l, _ := t.Cell(a, b)
		r, _ := t.Cell(b, a)
		if l == id && r == id {
			return true
		}
	}

	return false
}

// HasInverses reports whether every a has a two-sided inverse with respect
// to identity. Scan order: a ascending. Witness: (a).
// Callers without an identity use MissingIdentity instead.
func HasInverses(t *matrix.Table, identity int) Result {
	n := t.Size()
	var a int
	for a = 0; a < n; a++ {
		if !twoSidedInverse(t, a, identity) {
			return fails(LawInverse, a)
		}
	}

	return holds()
}

// Commutative reports whether t[i][j] == t[j][i] for all i, j, i.e. whether
// t equals its transpose. Scan order: i outer, j inner. Witness: (i, j).
// Only j > i is visited: the first failing pair in the full scan always has
// i < j, because (j, i) fails whenever (i, j) does.
func Commutative(t *matrix.Table) Result {
	n := t.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			l, _ := t.Cell(i, j)
			r, _ := t.Cell(j, i)
			if l != r {
				return fails(LawCommutativity, i, j)
			}
		}
	}

	return holds()
}

// Distributive reports whether mul distributes over add on both sides:
//
//	a*(b+c) == a*b + a*c   (left)
//	(b+c)*a == b*a + c*a   (right)
//
// Scan order: a outer, b middle, c inner; the left law is checked before the
// right law within each triple. Witness: (a, b, c) with LawLeftDistributivity
// or LawRightDistributivity.
func Distributive(add, mul *matrix.Table) Result {
	n := add.Size()
	var a, b, c int
	for a = 0; a < n; a++ {
		for b = 0; b < n; b++ {
			for c = 0; c < n; c++ {
				bc, bcOK := add.Cell(b, c)

				// Left: a*(b+c) vs a*b + a*c.
				l, lok := at(mul, a, bc, bcOK)
				ab, abOK := mul.Cell(a, b)
				ac, acOK := mul.Cell(a, c)
				r, rok := at(add, ab, ac, abOK && acOK)
				if !lok || !rok || l != r {
					return fails(LawLeftDistributivity, a, b, c)
				}

				// Right: (b+c)*a vs b*a + c*a.
				l, lok = at(mul, bc, a, bcOK)
				ba, baOK := mul.Cell(b, a)
				ca, caOK := mul.Cell(c, a)
				r, rok = at(add, ba, ca, baOK && caOK)
				if !lok || !rok || l != r {
					return fails(LawRightDistributivity, a, b, c)
				}
			}
		}
	}

	return holds()
}

// ZeroDivisorFree reports whether no a, b (both != zero) have mul[a][b] ==
// zero. Scan order: a outer, b inner. Witness: (a, b).
func ZeroDivisorFree(mul *matrix.Table, zero int) Result {
	n := mul.Size()
	var a, b int
	for a = 0; a < n; a++ {
		if a == zero {
			continue
		}
		for b = 0; b < n; b++ {
			if b == zero {
				continue
			}
			if v, _ := mul.Cell(a, b); v == zero {
				return fails(LawZeroDivisor, a, b)
			}
		}
	}

	return holds()
}

// AllNonzeroInvertible reports whether every element other than identity and
// zero has a two-sided multiplicative inverse. Scan order: a ascending.
// Witness: (a).
//
// When there is nothing to check (only zero and one exist) the result is
// NotApplicable with NoteNothingToInvert, never Holds.
func AllNonzeroInvertible(mul *matrix.Table, identity, zero int) Result {
	n := mul.Size()
	checked := false
	var a int
	for a = 0; a < n; a++ {
		if a == identity || a == zero {
			continue
		}
		checked = true
		if !twoSidedInverse(mul, a, identity) {
			return fails(LawMultiplicativeInverse, a)
		}
	}
	if !checked {
		return notApplicable(NoteNothingToInvert)
	}

	return holds()
}
