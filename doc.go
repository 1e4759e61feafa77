// Package cayley classifies finite algebraic structures given by their
// Cayley tables.
//
// 🚀 What is cayley?
//
//	Hand it a set of labeled elements plus an addition and a multiplication
//	table, and it tells you whether the structure is a ring, a commutative
//	ring, an integral domain, a division ring or a field. Every failed
//	property comes with the first counterexample found, and a one-paragraph
//	insight explains why the next class up is out of reach.
//
// ✨ Pipeline:
//
//	structure/ - labels + tables -> validated index form (Raw, Structure)
//	matrix/    - the n×n index Table behind each operation
//	axiom/     - the individual axiom checks, each with a witness
//	classify/  - composition into named classes, degeneracy rules, insight
//	core/      - undirected simple graph primitives
//	bfs/, dfs/ - traversals behind graph statistics
//	graphs/    - zero-divisor and unit graphs with their statistics
//	builder/   - ready-made structures: Z_n, Z_m × Z_n, GF(4), null rings,
//	             upper-triangular 2×2 matrices over Z_2
//	analysis/  - one-call facade returning a Report
//
// Outer surfaces live under cmd/cayley (CLI) and internal/httpapi (HTTP).
//
// Quick example (integers mod 4):
//
//	in, _ := builder.Build(builder.IntegersMod(4))
//	rep, _ := analysis.Analyze(in)
//	fmt.Println(rep.Classification.Insight)
//	// This is a commutative ring, but it is neither an integral domain nor a
//	// division ring because not all nonzero elements have multiplicative
//	// inverses and there are zero divisors.
//
//	go get github.com/katalvlaran/cayley
package cayley
