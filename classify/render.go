// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: turn index-form axiom results into labeled Properties.

package classify

import (
	"fmt"

	"github.com/katalvlaran/cayley/axiom"
	"github.com/katalvlaran/cayley/structure"
)

// Operator symbols used in equations.
const (
	opAdd = "+"
	opMul = "*"
)

// renderer binds the labels and operator symbol for one table.
type renderer struct {
	labels *structure.Labels
	op     string
	zero   string // additive identity label, for zero-divisor equations
}

// property converts r into a Property with a labeled witness.
func (rd renderer) property(r axiom.Result) Property {
	p := Property{Verdict: r.Verdict, Note: r.Note}
	if r.Witness != nil {
		p.Witness = &Witness{
			Elements: rd.labels.LabelsOf(r.Witness.Elements),
			Equation: rd.equation(r.Witness),
		}
	}

	return p
}

// equation renders the violated equation for w.
func (rd renderer) equation(w *axiom.Witness) string {
	l := rd.labels.Label
	e := w.Elements
	op := rd.op
	switch w.Law {
	case axiom.LawClosure:
		return fmt.Sprintf("%s %s %s = invalid", l(e[0]), op, l(e[1]))
	case axiom.LawAssociativity:
		a, b, c := l(e[0]), l(e[1]), l(e[2])
		return fmt.Sprintf("(%s %s %s) %s %s != %s %s (%s %s %s)", a, op, b, op, c, a, op, b, op, c)
	case axiom.LawIdentity:
		return "no identity element"
	case axiom.LawInverse:
		return fmt.Sprintf("%s has no inverse", l(e[0]))
	case axiom.LawCommutativity:
		i, j := l(e[0]), l(e[1])
		return fmt.Sprintf("%s %s %s != %s %s %s", i, op, j, j, op, i)
	case axiom.LawLeftDistributivity:
		a, b, c := l(e[0]), l(e[1]), l(e[2])
		return fmt.Sprintf("%s * (%s + %s) != %s * %s + %s * %s", a, b, c, a, b, a, c)
	case axiom.LawRightDistributivity:
		a, b, c := l(e[0]), l(e[1]), l(e[2])
		return fmt.Sprintf("(%s + %s) * %s != %s * %s + %s * %s", b, c, a, b, a, c, a)
	case axiom.LawZeroDivisor:
		return fmt.Sprintf("%s * %s = %s", l(e[0]), l(e[1]), rd.zero)
	case axiom.LawMultiplicativeInverse:
		return fmt.Sprintf("%s has no multiplicative inverse", l(e[0]))
	default:
		return w.Law.String() + " violated"
	}
}

// identityProperty reports an identity search as a Property.
func identityProperty(id Identity) Property {
	if id.Found {
		return Property{Verdict: axiom.Holds}
	}

	return Property{Verdict: axiom.Fails, Witness: &Witness{Equation: "no identity element"}}
}
