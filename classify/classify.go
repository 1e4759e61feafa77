// SPDX-License-Identifier: MIT
//
// File: classify.go
// Role: run the axiom checks over a Structure and compose the named classes.
// Determinism:
//   - Each check stores its Result in its own slot; running checks in
//     parallel never changes which witness is reported.
// Concurrency:
//   - Classify is safe for concurrent use; it only reads the Structure.

package classify

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cayley/axiom"
	"github.com/katalvlaran/cayley/structure"
)

// Fixed notes for the degeneracy overrides.
const (
	NoteIdentitiesCoincide = "additive and multiplicative identities coincide"
	NoteTooSmall           = "structure has at most one element"
)

// ErrOptionViolation indicates an invalid option value.
var ErrOptionViolation = errors.New("classify: option violation")

// Option configures Classify.
type Option func(*options)

type options struct {
	workers int
}

// WithParallel runs independent checks on up to workers goroutines.
// workers == 1 is the sequential default. Panics if workers < 1.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic(fmt.Sprintf("WithParallel(%d): %v", workers, ErrOptionViolation))
	}

	return func(o *options) { o.workers = workers }
}

// results holds the raw per-check outcomes in index form.
type results struct {
	addClosed, addAssoc, addComm axiom.Result
	mulClosed, mulAssoc, mulComm axiom.Result
	distributive                 axiom.Result

	addID, mulID       int
	addFound, mulFound bool

	addInv, zeroDivFree, mulInv axiom.Result
}

// Classify evaluates every property of s and composes the classification.
//
// Implementation:
//   - Stage 1: Run the identity-independent checks (closure, associativity,
//     commutativity of both operations, distributivity, identity search).
//   - Stage 2: Run the identity-dependent checks (additive inverses,
//     zero divisors, multiplicative inverses).
//   - Stage 3: Compose the composite classes from their prerequisites.
//   - Stage 4: Apply the degeneracy overrides; the cardinality rule is last.
//   - Stage 5: Build the insight from the composed Properties only.
//
// Complexity: O(n³) time, O(1) extra space beyond the result.
func Classify(s *structure.Structure, opts ...Option) (*Classification, error) {
	if s == nil || s.Labels == nil || s.Add == nil || s.Mul == nil {
		return nil, fmt.Errorf("Classify: %w", structure.ErrNilStructure)
	}
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	var r results
	run(o.workers,
		func() { r.addClosed = axiom.Closed(s.Add) },
		func() { r.addAssoc = axiom.Associative(s.Add) },
		func() { r.addComm = axiom.Commutative(s.Add) },
		func() { r.mulClosed = axiom.Closed(s.Mul) },
		func() { r.mulAssoc = axiom.Associative(s.Mul) },
		func() { r.mulComm = axiom.Commutative(s.Mul) },
		func() { r.distributive = axiom.Distributive(s.Add, s.Mul) },
		func() { r.addID, r.addFound = axiom.FindIdentity(s.Add) },
		func() { r.mulID, r.mulFound = axiom.FindIdentity(s.Mul) },
	)
	run(o.workers,
		func() {
			if r.addFound {
				r.addInv = axiom.HasInverses(s.Add, r.addID)
			} else {
				r.addInv = axiom.MissingIdentity()
			}
		},
		func() {
			if r.addFound {
				r.zeroDivFree = axiom.ZeroDivisorFree(s.Mul, r.addID)
			} else {
				r.zeroDivFree = axiom.Result{Verdict: axiom.NotApplicable, Note: axiom.NoteNoAdditiveIdentity}
			}
		},
		func() {
			switch {
			case !r.mulFound:
				r.mulInv = axiom.Result{Verdict: axiom.NotApplicable, Note: axiom.NoteNoMultiplicativeIdentity}
			case !r.addFound:
				r.mulInv = axiom.Result{Verdict: axiom.NotApplicable, Note: axiom.NoteNoAdditiveIdentity}
			default:
				r.mulInv = axiom.AllNonzeroInvertible(s.Mul, r.mulID, r.addID)
			}
		},
	)

	c := compose(s.Labels, &r)
	d := degenerate(c, s.Size())
	override(c, d)
	c.Insight = insight(c, d)

	return c, nil
}

// run executes tasks sequentially or on an errgroup bounded by workers.
func run(workers int, tasks ...func()) {
	if workers <= 1 {
		for _, task := range tasks {
			task()
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, task := range tasks {
		g.Go(func() error {
			task()
			return nil
		})
	}
	_ = g.Wait()
}

// compose renders the raw results and builds the composite classes.
func compose(labels *structure.Labels, r *results) *Classification {
	c := &Classification{
		AdditiveIdentity:       identity(labels, r.addID, r.addFound),
		MultiplicativeIdentity: identity(labels, r.mulID, r.mulFound),
	}
	add := renderer{labels: labels, op: opAdd}
	mul := renderer{labels: labels, op: opMul, zero: c.AdditiveIdentity.Label}

	c.AddClosed = add.property(r.addClosed)
	c.AddAssociative = add.property(r.addAssoc)
	c.AddIdentity = identityProperty(c.AdditiveIdentity)
	c.AddInverses = add.property(r.addInv)
	c.AddCommutative = add.property(r.addComm)
	c.AdditiveGroup = all(c.AddClosed, c.AddAssociative, c.AddIdentity, c.AddInverses, c.AddCommutative)

	c.MulClosed = mul.property(r.mulClosed)
	c.MulAssociative = mul.property(r.mulAssoc)
	c.Distributive = mul.property(r.distributive)
	c.Ring = all(c.AdditiveGroup, c.MulClosed, c.MulAssociative, c.Distributive)

	c.MulCommutative = mul.property(r.mulComm)
	c.CommutativeRing = all(c.Ring, c.MulCommutative)

	c.MulIdentity = identityProperty(c.MultiplicativeIdentity)
	c.ZeroDivisorFree = mul.property(r.zeroDivFree)
	c.IntegralDomain = all(c.Ring, c.MulIdentity, c.MulCommutative, c.ZeroDivisorFree)

	c.MulInverses = mul.property(r.mulInv)
	c.DivisionRing = all(c.Ring, c.MulIdentity, c.MulInverses)
	c.Field = all(c.IntegralDomain, c.MulInverses)

	return c
}

// all holds iff every prerequisite holds. Otherwise it fails with the first
// failing prerequisite's witness; a NotApplicable prerequisite contributes
// its note as the equation.
func all(prereqs ...Property) Property {
	for _, p := range prereqs {
		switch p.Verdict {
		case axiom.Holds:
			continue
		case axiom.NotApplicable:
			return Property{Verdict: axiom.Fails, Witness: &Witness{Equation: p.Note}}
		default:
			return Property{Verdict: axiom.Fails, Witness: p.Witness}
		}
	}

	return Property{Verdict: axiom.Holds}
}

func identity(labels *structure.Labels, i int, found bool) Identity {
	if !found {
		return Identity{}
	}

	return Identity{Index: i, Label: labels.Label(i), Found: true}
}

// degeneracy identifies which override, if any, applies.
type degeneracy uint8

const (
	notDegenerate degeneracy = iota
	identitiesCoincide
	tooSmall
)

// degenerate reports the override in force; tooSmall wins over coincidence.
func degenerate(c *Classification, n int) degeneracy {
	switch {
	case n <= 1:
		return tooSmall
	case c.AdditiveIdentity.Found && c.MultiplicativeIdentity.Found &&
		c.AdditiveIdentity.Index == c.MultiplicativeIdentity.Index:
		return identitiesCoincide
	default:
		return notDegenerate
	}
}

// override forces every ring-level class to fail for degenerate structures.
// AdditiveGroup and the individual axioms keep their computed verdicts.
func override(c *Classification, d degeneracy) {
	var w *Witness
	switch d {
	case identitiesCoincide:
		w = &Witness{Elements: []string{c.AdditiveIdentity.Label}, Equation: NoteIdentitiesCoincide}
	case tooSmall:
		w = &Witness{Equation: NoteTooSmall}
	default:
		return
	}
	forced := Property{Verdict: axiom.Fails, Witness: w}
	c.Ring = forced
	c.CommutativeRing = forced
	c.IntegralDomain = forced
	c.DivisionRing = forced
	c.Field = forced
}
