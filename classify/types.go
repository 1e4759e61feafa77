// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: the Classification record and its parts (Property, Witness, Identity).

package classify

import (
	"encoding/json"

	"github.com/katalvlaran/cayley/axiom"
)

// Witness is a counterexample rendered with element labels.
// Elements lists the offending labels in scan order (may be empty, e.g. for
// a missing identity); Equation states the violated equation.
type Witness struct {
	Elements []string `json:"elements,omitempty" yaml:"elements,omitempty"`
	Equation string   `json:"equation" yaml:"equation"`
}

// Property is one named verdict of the classification.
// Witness is non-nil iff Verdict is axiom.Fails; Note explains NotApplicable.
type Property struct {
	Verdict axiom.Verdict `json:"verdict" yaml:"verdict"`
	Witness *Witness      `json:"witness,omitempty" yaml:"witness,omitempty"`
	Note    string        `json:"note,omitempty" yaml:"note,omitempty"`
}

// Holds reports whether the property was verified.
func (p Property) Holds() bool { return p.Verdict == axiom.Holds }

// Identity is an identity element search result. Found == false is the
// explicit "not found" marker; Index and Label are meaningless then.
type Identity struct {
	Index int
	Label string
	Found bool
}

// MarshalJSON encodes a found identity as its label and a missing one as null.
func (id Identity) MarshalJSON() ([]byte, error) {
	if !id.Found {
		return []byte("null"), nil
	}

	return json.Marshal(id.Label)
}

// MarshalYAML mirrors MarshalJSON.
func (id Identity) MarshalYAML() (interface{}, error) {
	if !id.Found {
		return nil, nil
	}

	return id.Label, nil
}

// Classification is the full verdict record for one structure.
//
// Field groups follow the precedence of the classes they build:
//   - additive group: AddClosed .. AddCommutative, composed into AdditiveGroup
//   - ring: AdditiveGroup, MulClosed, MulAssociative, Distributive
//   - commutative ring: Ring, MulCommutative
//   - integral domain: Ring, MulIdentity, MulCommutative, ZeroDivisorFree
//   - division ring: Ring, MulIdentity, MulInverses
//   - field: IntegralDomain, MulInverses
type Classification struct {
	AddClosed      Property `json:"add_closed" yaml:"add_closed"`
	AddAssociative Property `json:"add_associative" yaml:"add_associative"`
	AddIdentity    Property `json:"add_identity" yaml:"add_identity"`
	AddInverses    Property `json:"add_inverses" yaml:"add_inverses"`
	AddCommutative Property `json:"add_commutative" yaml:"add_commutative"`
	AdditiveGroup  Property `json:"additive_group" yaml:"additive_group"`

	MulClosed      Property `json:"mul_closed" yaml:"mul_closed"`
	MulAssociative Property `json:"mul_associative" yaml:"mul_associative"`
	Distributive   Property `json:"distributive" yaml:"distributive"`
	Ring           Property `json:"ring" yaml:"ring"`

	MulCommutative  Property `json:"mul_commutative" yaml:"mul_commutative"`
	CommutativeRing Property `json:"commutative_ring" yaml:"commutative_ring"`

	MulIdentity     Property `json:"mul_identity" yaml:"mul_identity"`
	ZeroDivisorFree Property `json:"zero_divisor_free" yaml:"zero_divisor_free"`
	IntegralDomain  Property `json:"integral_domain" yaml:"integral_domain"`

	MulInverses  Property `json:"mul_inverses" yaml:"mul_inverses"`
	DivisionRing Property `json:"division_ring" yaml:"division_ring"`
	Field        Property `json:"field" yaml:"field"`

	AdditiveIdentity       Identity `json:"additive_identity" yaml:"additive_identity"`
	MultiplicativeIdentity Identity `json:"multiplicative_identity" yaml:"multiplicative_identity"`

	// Insight summarizes the tightest class reached and why the next one fails.
	Insight string `json:"insight" yaml:"insight"`
}

// HasZeroDivisors reports whether a zero divisor pair was found.
// It is false when the check was not applicable (no additive identity).
func (c *Classification) HasZeroDivisors() bool {
	return c.ZeroDivisorFree.Verdict == axiom.Fails
}

// Class names, tightest first.
const (
	ClassField           = "field"
	ClassIntegralDomain  = "integral domain"
	ClassDivisionRing    = "division ring"
	ClassCommutativeRing = "commutative ring"
	ClassRing            = "ring"
	ClassNone            = "none"
)

// Tightest returns the name of the tightest class the structure belongs to.
// An integral domain that is also a division ring is a field, so the two
// never tie.
func (c *Classification) Tightest() string {
	switch {
	case c.Field.Holds():
		return ClassField
	case c.IntegralDomain.Holds():
		return ClassIntegralDomain
	case c.DivisionRing.Holds():
		return ClassDivisionRing
	case c.CommutativeRing.Holds():
		return ClassCommutativeRing
	case c.Ring.Holds():
		return ClassRing
	default:
		return ClassNone
	}
}
