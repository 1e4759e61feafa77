// Package classify composes axiom results into named algebraic classes.
//
// Classify runs every check from package axiom over a structure.Structure and
// returns a Classification: one Property per axiom, the composite classes
// built from them, both identities, and a one-sentence Insight.
//
// Precedence of the composite classes:
//
//	AdditiveGroup   = add closed ∧ add associative ∧ add identity ∧ add inverses ∧ add commutative
//	Ring            = AdditiveGroup ∧ mul closed ∧ mul associative ∧ distributive
//	CommutativeRing = Ring ∧ mul commutative
//	IntegralDomain  = Ring ∧ mul identity ∧ mul commutative ∧ zero-divisor free
//	DivisionRing    = Ring ∧ mul identity ∧ mul inverses
//	Field           = IntegralDomain ∧ mul inverses
//
// A failed composite carries the witness of its first failing prerequisite.
//
// Two degeneracy rules are applied after composition and override every
// ring-level class (Ring through Field):
//   - additive and multiplicative identities are the same element;
//   - the structure has at most one element (applied last, so it wins).
//
// Multiplicative inverses use the three-state verdict: a structure with only
// zero and one, or with no identity at all, reports axiom.NotApplicable and is
// therefore never a field or a division ring.
//
// Complexity: O(n³) time. WithParallel spreads the independent checks over a
// bounded errgroup without changing any reported witness.
package classify
