// SPDX-License-Identifier: MIT
//
// File: insight.go
// Role: the one-sentence summary of a Classification.
// Determinism:
//   - Reasons are collected in a fixed priority order and only read the
//     already-composed Properties; nothing is recomputed here.

package classify

import (
	"strings"

	"github.com/katalvlaran/cayley/axiom"
)

// Fixed insight sentences.
const (
	insightCoincide    = "This cannot be a ring or field because the additive and multiplicative identities are the same."
	insightTooSmall    = "This set cannot form a ring or field because it contains at most one element."
	insightNotRing     = "This structure does not form a ring."
	insightField       = "This is a finite field."
	insightDomain      = "This is an integral domain, but not a field because "
	insightDivision    = "This is a division ring, but not a field because "
	insightRingNeither = ", but it is neither an integral domain nor a division ring because "
)

// reason pairs an explanation with the predicate that triggers it.
type reason struct {
	text  string
	fires func(c *Classification) bool
}

func fails(p Property) bool { return !p.Holds() }

// ringReasons explain why a structure is not a ring, in priority order.
var ringReasons = []reason{
	{"addition is not closed", func(c *Classification) bool { return fails(c.AddClosed) }},
	{"addition is not associative", func(c *Classification) bool { return fails(c.AddAssociative) }},
	{"addition has no identity", func(c *Classification) bool { return fails(c.AddIdentity) }},
	{"not all elements have additive inverses", func(c *Classification) bool { return fails(c.AddInverses) }},
	{"addition is not commutative", func(c *Classification) bool { return fails(c.AddCommutative) }},
	{"multiplication is not closed", func(c *Classification) bool { return fails(c.MulClosed) }},
	{"multiplication is not associative", func(c *Classification) bool { return fails(c.MulAssociative) }},
	{"multiplication is not distributive over addition", func(c *Classification) bool { return fails(c.Distributive) }},
}

// Reason keys for the classes above a ring.
const (
	reasonInverses = iota
	reasonUnverifiedInverses
	reasonNoIdentity
	reasonNonCommutative
	reasonZeroDivisors
	reasonNonDistributive
)

// upperReasons explain why a ring misses a tighter class, in priority order.
// The inverse reasons only fire when a multiplicative identity exists; without
// one the missing identity is the explanation.
var upperReasons = []reason{
	reasonInverses: {"not all nonzero elements have multiplicative inverses", func(c *Classification) bool {
		return c.MultiplicativeIdentity.Found && c.MulInverses.Verdict == axiom.Fails
	}},
	reasonUnverifiedInverses: {"multiplicative inverses could not be verified for any nonzero element", func(c *Classification) bool {
		return c.MultiplicativeIdentity.Found && c.MulInverses.Verdict == axiom.NotApplicable
	}},
	reasonNoIdentity:      {"there is no multiplicative identity", func(c *Classification) bool { return !c.MultiplicativeIdentity.Found }},
	reasonNonCommutative:  {"multiplication is not commutative", func(c *Classification) bool { return fails(c.MulCommutative) }},
	reasonZeroDivisors:    {"there are zero divisors", func(c *Classification) bool { return fails(c.ZeroDivisorFree) }},
	reasonNonDistributive: {"multiplication is not distributive over addition", func(c *Classification) bool { return fails(c.Distributive) }},
}

// Reasons relevant to each class above a ring.
var (
	domainReasons   = []int{reasonNoIdentity, reasonNonCommutative, reasonZeroDivisors, reasonNonDistributive}
	divisionReasons = []int{reasonInverses, reasonUnverifiedInverses, reasonNoIdentity, reasonNonDistributive}
	fieldReasons    = []int{reasonInverses, reasonUnverifiedInverses, reasonNoIdentity, reasonNonCommutative, reasonZeroDivisors, reasonNonDistributive}
)

// firstReason returns the highest-priority key among keys that fires, or -1.
func firstReason(c *Classification, keys []int) int {
	for _, k := range keys {
		if upperReasons[k].fires(c) {
			return k
		}
	}

	return -1
}

// insight builds the summary sentence for c.
func insight(c *Classification, d degeneracy) string {
	switch d {
	case identitiesCoincide:
		return insightCoincide
	case tooSmall:
		return insightTooSmall
	}

	if !c.Ring.Holds() {
		var texts []string
		for _, r := range ringReasons {
			if r.fires(c) {
				texts = append(texts, r.text)
			}
		}
		if len(texts) == 0 {
			return insightNotRing
		}

		return "This is not a ring because " + JoinReasons(texts) + "."
	}

	switch {
	case c.Field.Holds():
		return insightField
	case c.IntegralDomain.Holds():
		return insightDomain + upperText(firstReason(c, fieldReasons)) + "."
	case c.DivisionRing.Holds():
		return insightDivision + upperText(firstReason(c, fieldReasons)) + "."
	}

	// Collect the first reason of each missed class, deduplicated and kept in
	// priority order.
	picked := map[int]bool{}
	if k := firstReason(c, domainReasons); k >= 0 {
		picked[k] = true
	}
	if k := firstReason(c, divisionReasons); k >= 0 {
		picked[k] = true
	}
	var texts []string
	for k := range upperReasons {
		if picked[k] {
			texts = append(texts, upperReasons[k].text)
		}
	}

	kind := "This is a ring"
	if c.CommutativeRing.Holds() {
		kind = "This is a commutative ring"
	}

	return kind + insightRingNeither + JoinReasons(texts) + "."
}

// upperText returns the text for key, or a generic phrase for -1.
func upperText(k int) string {
	if k < 0 {
		return "some multiplicative property fails"
	}

	return upperReasons[k].text
}

// JoinReasons joins reasons grammatically:
//
//	[]            -> ""
//	[a]           -> "a"
//	[a b]         -> "a and b"
//	[a b c ...]   -> "a, b, and c"
func JoinReasons(reasons []string) string {
	switch len(reasons) {
	case 0:
		return ""
	case 1:
		return reasons[0]
	case 2:
		return reasons[0] + " and " + reasons[1]
	default:
		return strings.Join(reasons[:len(reasons)-1], ", ") + ", and " + reasons[len(reasons)-1]
	}
}
