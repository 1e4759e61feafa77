package axiom_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/axiom"
	"github.com/katalvlaran/cayley/matrix"
)

// table is a test helper wrapping matrix.FromRows.
func table(t *testing.T, rows [][]int) *matrix.Table {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// modTable returns x∘y = f(x,y) mod n for all x, y.
func modTable(t *testing.T, n int, f func(x, y int) int) *matrix.Table {
	t.Helper()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = ((f(i, j) % n) + n) % n
		}
	}

	return table(t, rows)
}

func add(x, y int) int { return x + y }
func mul(x, y int) int { return x * y }

// requireWitness asserts a failing result with the given law and tuple.
func requireWitness(t *testing.T, r axiom.Result, law axiom.Law, elems ...int) {
	t.Helper()
	require.Equal(t, axiom.Fails, r.Verdict)
	require.NotNil(t, r.Witness)
	assert.Equal(t, law, r.Witness.Law)
	assert.Equal(t, elems, r.Witness.Elements)
}

func TestClosed(t *testing.T) {
	assert.True(t, axiom.Closed(modTable(t, 5, add)).Holds())

	open := table(t, [][]int{{0, 1}, {1, 5}})
	requireWitness(t, axiom.Closed(open), axiom.LawClosure, 1, 1)

	negative := table(t, [][]int{{0, -1}, {1, 0}})
	requireWitness(t, axiom.Closed(negative), axiom.LawClosure, 0, 1)
}

// TestAssociative_FirstWitness uses x∘y = -x-y mod 3, a Latin square where
// (a∘b)∘c == a∘(b∘c) iff a == c. The first failing triple is (0,0,1).
func TestAssociative_FirstWitness(t *testing.T) {
	latin := table(t, [][]int{
		{0, 2, 1},
		{2, 1, 0},
		{1, 0, 2},
	})
	requireWitness(t, axiom.Associative(latin), axiom.LawAssociativity, 0, 0, 1)
	assert.True(t, axiom.Associative(modTable(t, 6, mul)).Holds())
}

// TestAssociative_NotClosed ensures composed lookups leaving the table are
// reported as a failure rather than a panic.
func TestAssociative_NotClosed(t *testing.T) {
	open := table(t, [][]int{{0, 1}, {1, 5}})
	requireWitness(t, axiom.Associative(open), axiom.LawAssociativity, 0, 1, 1)
}

func TestFindIdentity(t *testing.T) {
	e, ok := axiom.FindIdentity(modTable(t, 7, add))
	assert.True(t, ok)
	assert.Equal(t, 0, e)

	e, ok = axiom.FindIdentity(modTable(t, 7, mul))
	assert.True(t, ok)
	assert.Equal(t, 1, e)

	_, ok = axiom.FindIdentity(table(t, [][]int{{0, 2, 1}, {2, 1, 0}, {1, 0, 2}}))
	assert.False(t, ok)

	empty, _ := matrix.NewTable(0)
	_, ok = axiom.FindIdentity(empty)
	assert.False(t, ok)
}

func TestHasInverses(t *testing.T) {
	assert.True(t, axiom.HasInverses(modTable(t, 6, add), 0).Holds())

	// Multiplication mod 4 against identity 1: 0 has no inverse.
	requireWitness(t, axiom.HasInverses(modTable(t, 4, mul), 1), axiom.LawInverse, 0)

	r := axiom.MissingIdentity()
	requireWitness(t, r, axiom.LawIdentity)
	assert.Empty(t, r.Witness.Elements)
}

func TestCommutative(t *testing.T) {
	assert.True(t, axiom.Commutative(modTable(t, 5, mul)).Holds())

	left := table(t, [][]int{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}) // x∘y = x
	requireWitness(t, axiom.Commutative(left), axiom.LawCommutativity, 0, 1)
}

// TestCommutative_MatchesTranspose checks, over random tables, that the
// verdict is true iff the table equals its transpose.
func TestCommutative_MatchesTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(5)
		rows := make([][]int, n)
		for i := range rows {
			rows[i] = make([]int, n)
			for j := range rows[i] {
				rows[i][j] = rng.Intn(n)
			}
		}
		// Make roughly half of them symmetric.
		if iter%2 == 0 {
			for i := 0; i < n; i++ {
				for j := 0; j < i; j++ {
					rows[i][j] = rows[j][i]
				}
			}
		}
		m := table(t, rows)
		assert.Equal(t, m.Equal(m.Transpose()), axiom.Commutative(m).Holds(), "table:\n%s", m)
	}
}

func TestDistributive(t *testing.T) {
	assert.True(t, axiom.Distributive(modTable(t, 6, add), modTable(t, 6, mul)).Holds())

	xor := table(t, [][]int{{0, 1}, {1, 0}})

	// x*y = 1 breaks the left law at the very first triple.
	ones := table(t, [][]int{{1, 1}, {1, 1}})
	requireWitness(t, axiom.Distributive(xor, ones), axiom.LawLeftDistributivity, 0, 0, 0)

	// x*y = y satisfies the left law everywhere; the right law fails first at (1,0,0).
	right := table(t, [][]int{{0, 1}, {0, 1}})
	requireWitness(t, axiom.Distributive(xor, right), axiom.LawRightDistributivity, 1, 0, 0)
}

func TestZeroDivisorFree(t *testing.T) {
	assert.True(t, axiom.ZeroDivisorFree(modTable(t, 13, mul), 0).Holds())
	requireWitness(t, axiom.ZeroDivisorFree(modTable(t, 4, mul), 0), axiom.LawZeroDivisor, 2, 2)
	requireWitness(t, axiom.ZeroDivisorFree(modTable(t, 6, mul), 0), axiom.LawZeroDivisor, 2, 3)
}

func TestAllNonzeroInvertible(t *testing.T) {
	assert.True(t, axiom.AllNonzeroInvertible(modTable(t, 13, mul), 1, 0).Holds())
	requireWitness(t, axiom.AllNonzeroInvertible(modTable(t, 4, mul), 1, 0), axiom.LawMultiplicativeInverse, 2)

	// Z2: only zero and one exist, nothing is checked.
	r := axiom.AllNonzeroInvertible(modTable(t, 2, mul), 1, 0)
	assert.Equal(t, axiom.NotApplicable, r.Verdict)
	assert.Nil(t, r.Witness)
	assert.Equal(t, axiom.NoteNothingToInvert, r.Note)
	assert.False(t, r.Holds())
}

func TestVerdict_Text(t *testing.T) {
	b, err := axiom.NotApplicable.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "not_applicable", string(b))
	assert.Equal(t, "holds", axiom.Holds.String())
	assert.Equal(t, "fails", axiom.Fails.String())
	assert.Equal(t, "associativity", axiom.LawAssociativity.String())
}
