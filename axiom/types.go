// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Verdict, Law, Witness and Result, the vocabulary shared by every check.

package axiom

import "fmt"

// Verdict is the outcome of one property check.
type Verdict uint8

const (
	// Fails means a counterexample was found (or a prerequisite is missing).
	Fails Verdict = iota
	// Holds means the property was verified over every tuple.
	Holds
	// NotApplicable means the property could not be evaluated, e.g. there is
	// no multiplicative identity to invert against. It is never reported as
	// Holds.
	NotApplicable
)

// String returns "fails", "holds" or "not_applicable".
func (v Verdict) String() string {
	switch v {
	case Holds:
		return "holds"
	case Fails:
		return "fails"
	case NotApplicable:
		return "not_applicable"
	default:
		return fmt.Sprintf("verdict(%d)", uint8(v))
	}
}

// MarshalText encodes the verdict by name for JSON and YAML output.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Law names the equation a Witness violates.
type Law uint8

const (
	LawClosure Law = iota + 1
	LawAssociativity
	LawIdentity
	LawInverse
	LawCommutativity
	LawLeftDistributivity
	LawRightDistributivity
	LawZeroDivisor
	LawMultiplicativeInverse
)

// String returns a short stable name for the law.
func (l Law) String() string {
	switch l {
	case LawClosure:
		return "closure"
	case LawAssociativity:
		return "associativity"
	case LawIdentity:
		return "identity"
	case LawInverse:
		return "inverse"
	case LawCommutativity:
		return "commutativity"
	case LawLeftDistributivity:
		return "left distributivity"
	case LawRightDistributivity:
		return "right distributivity"
	case LawZeroDivisor:
		return "zero divisor"
	case LawMultiplicativeInverse:
		return "multiplicative inverse"
	default:
		return fmt.Sprintf("law(%d)", uint8(l))
	}
}

// Witness is a concrete counterexample in index form.
//
// Elements holds the offending indices in the order the scan visited them:
//   - closure, commutativity, zero divisor: (i, j)
//   - associativity, distributivity:         (a, b, c)
//   - inverse, multiplicative inverse:      (a)
//   - identity:                             empty (no identity exists)
type Witness struct {
	Law      Law
	Elements []int
}

// Result is a verdict plus an optional witness.
// Witness is non-nil iff Verdict == Fails. Note explains NotApplicable.
type Result struct {
	Verdict Verdict
	Witness *Witness
	Note    string
}

// Holds reports whether the verdict is Holds.
func (r Result) Holds() bool { return r.Verdict == Holds }

// holds is the passing Result.
func holds() Result { return Result{Verdict: Holds} }

// fails builds a failing Result with a witness.
func fails(law Law, elems ...int) Result {
	return Result{Verdict: Fails, Witness: &Witness{Law: law, Elements: elems}}
}

// notApplicable builds a NotApplicable Result carrying note.
func notApplicable(note string) Result {
	return Result{Verdict: NotApplicable, Note: note}
}

// MissingIdentity is the Result of an inverse check when the operation has
// no identity element at all.
func MissingIdentity() Result {
	return fails(LawIdentity)
}

// Notes attached to NotApplicable results.
const (
	NoteNoAdditiveIdentity       = "no additive identity"
	NoteNoMultiplicativeIdentity = "no multiplicative identity"
	NoteNothingToInvert          = "no nonzero elements to verify multiplicative inverses"
)
