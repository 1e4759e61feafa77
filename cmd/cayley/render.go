package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cayley/analysis"
	"github.com/katalvlaran/cayley/axiom"
	"github.com/katalvlaran/cayley/classify"
	"github.com/katalvlaran/cayley/graphs"
)

// Verdict marks.
const (
	markHolds = "✓"
	markFails = "✗"
	markNA    = "-"
)

type namedProperty struct {
	name string
	get  func(*classify.Classification) classify.Property
}

// rows is the printed order: axioms first, each class after its prerequisites.
var rows = []namedProperty{
	{"closed under addition", func(c *classify.Classification) classify.Property { return c.AddClosed }},
	{"addition is associative", func(c *classify.Classification) classify.Property { return c.AddAssociative }},
	{"additive identity exists", func(c *classify.Classification) classify.Property { return c.AddIdentity }},
	{"additive inverses exist", func(c *classify.Classification) classify.Property { return c.AddInverses }},
	{"addition is commutative", func(c *classify.Classification) classify.Property { return c.AddCommutative }},
	{"abelian group under addition", func(c *classify.Classification) classify.Property { return c.AdditiveGroup }},
	{"closed under multiplication", func(c *classify.Classification) classify.Property { return c.MulClosed }},
	{"multiplication is associative", func(c *classify.Classification) classify.Property { return c.MulAssociative }},
	{"distributive", func(c *classify.Classification) classify.Property { return c.Distributive }},
	{"ring", func(c *classify.Classification) classify.Property { return c.Ring }},
	{"multiplication is commutative", func(c *classify.Classification) classify.Property { return c.MulCommutative }},
	{"commutative ring", func(c *classify.Classification) classify.Property { return c.CommutativeRing }},
	{"multiplicative identity exists", func(c *classify.Classification) classify.Property { return c.MulIdentity }},
	{"no zero divisors", func(c *classify.Classification) classify.Property { return c.ZeroDivisorFree }},
	{"integral domain", func(c *classify.Classification) classify.Property { return c.IntegralDomain }},
	{"nonzero elements invertible", func(c *classify.Classification) classify.Property { return c.MulInverses }},
	{"division ring", func(c *classify.Classification) classify.Property { return c.DivisionRing }},
	{"field", func(c *classify.Classification) classify.Property { return c.Field }},
}

// renderText prints the console report.
func renderText(w io.Writer, rep *analysis.Report) {
	c := rep.Classification
	fmt.Fprintf(w, "Elements: %s\n", strings.Join(rep.Tables.Elements, ", "))
	fmt.Fprintf(w, "Additive identity: %s\n", identityText(rep.AdditiveIdentity))
	fmt.Fprintf(w, "Multiplicative identity: %s\n\n", identityText(rep.MultiplicativeIdentity))

	for _, r := range rows {
		p := r.get(c)
		switch p.Verdict {
		case axiom.Holds:
			fmt.Fprintf(w, "  %s %s\n", markHolds, r.name)
		case axiom.Fails:
			fmt.Fprintf(w, "  %s %s", markFails, r.name)
			if p.Witness != nil {
				fmt.Fprintf(w, ": %s", p.Witness.Equation)
			}
			fmt.Fprintln(w)
		default:
			fmt.Fprintf(w, "  %s %s (not applicable: %s)\n", markNA, r.name, p.Note)
		}
	}

	fmt.Fprintf(w, "\nClass: %s\n", c.Tightest())
	fmt.Fprintf(w, "%s\n", c.Insight)
	renderGraph(w, "Zero-divisor graph", rep.ZeroDivisorGraph)
	renderGraph(w, "Unit graph", rep.UnitGraph)
}

func identityText(id classify.Identity) string {
	if !id.Found {
		return "none"
	}

	return id.Label
}

func renderGraph(w io.Writer, title string, g *graphs.Graph) {
	if g == nil {
		fmt.Fprintf(w, "%s: absent\n", title)
		return
	}
	edges := make([]string, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, e[0]+"-"+e[1])
	}
	fmt.Fprintf(w, "%s: %d nodes, edges [%s]\n", title, len(g.Nodes), strings.Join(edges, " "))
}
