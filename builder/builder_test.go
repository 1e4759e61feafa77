package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/builder"
	"github.com/katalvlaran/cayley/classify"
)

func classifyGen(t *testing.T, gen builder.Generator, opts ...builder.BuilderOption) *classify.Classification {
	t.Helper()
	s, err := builder.BuildStructure(gen, opts...)
	require.NoError(t, err)
	c, err := classify.Classify(s)
	require.NoError(t, err)

	return c
}

func TestIntegersMod(t *testing.T) {
	raw, err := builder.Build(builder.IntegersMod(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, raw.Elements)
	assert.Equal(t, []string{"2", "0", "1"}, raw.Add[2])
	assert.Equal(t, []string{"0", "2", "1"}, raw.Mul[2])

	assert.Equal(t, classify.ClassField, classifyGen(t, builder.IntegersMod(13)).Tightest())
	assert.Equal(t, classify.ClassCommutativeRing, classifyGen(t, builder.IntegersMod(4)).Tightest())
}

func TestLabelSchemes(t *testing.T) {
	raw, err := builder.Build(builder.IntegersMod(3), builder.WithSymbolLabels())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, raw.Elements)
	assert.Equal(t, []string{"C", "A", "B"}, raw.Add[2])

	raw, err = builder.Build(builder.IntegersMod(28), builder.WithExcelLabels())
	require.NoError(t, err)
	assert.Equal(t, "AB", raw.Elements[27])

	tests := []struct {
		name string
		fn   builder.LabelFn
		in   int
		want string
	}{
		{"decimal", builder.DecimalLabel, 42, "42"},
		{"symbol-first", builder.SymbolLabel, 0, "A"},
		{"symbol-last", builder.SymbolLabel, 25, "Z"},
		{"symbol-wrap", builder.SymbolLabel, 27, "B1"},
		{"excel-single", builder.ExcelLabel, 25, "Z"},
		{"excel-double", builder.ExcelLabel, 26, "AA"},
		{"excel-ZZ", builder.ExcelLabel, 701, "ZZ"},
		{"excel-AAA", builder.ExcelLabel, 702, "AAA"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.in))
		})
	}

	assert.Panics(t, func() { builder.SymbolLabel(-1) })
	assert.Panics(t, func() { builder.ExcelLabel(-1) })
	assert.Panics(t, func() { builder.WithLabelScheme(nil) })
}

func TestProductMod(t *testing.T) {
	raw, err := builder.Build(builder.ProductMod(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"(0,0)", "(0,1)", "(1,0)", "(1,1)"}, raw.Elements)
	assert.Equal(t, "(1,0)", raw.Add[1][3]) // (0,1) + (1,1)
	assert.Equal(t, "(0,1)", raw.Mul[1][3]) // (0,1) * (1,1)

	c := classifyGen(t, builder.ProductMod(2, 2))
	assert.Equal(t, classify.ClassCommutativeRing, c.Tightest())
	assert.Equal(t, "(1,1)", c.MultiplicativeIdentity.Label)
	assert.Equal(t, []string{"(0,1)", "(1,0)"}, c.ZeroDivisorFree.Witness.Elements)
}

func TestGaloisField4(t *testing.T) {
	c := classifyGen(t, builder.GaloisField4())
	assert.True(t, c.Field.Holds())
	assert.Equal(t, "This is a finite field.", c.Insight)
}

func TestUpperTriangularZ2(t *testing.T) {
	c := classifyGen(t, builder.UpperTriangularZ2())
	assert.True(t, c.Ring.Holds())
	assert.False(t, c.CommutativeRing.Holds())
	assert.Equal(t, "(1,0,1)", c.MultiplicativeIdentity.Label)
	require.NotNil(t, c.MulCommutative.Witness)
	assert.Equal(t, "(0,0,1) * (0,1,0) != (0,1,0) * (0,0,1)", c.MulCommutative.Witness.Equation)
	assert.Equal(t, classify.ClassRing, c.Tightest())
	assert.Equal(t,
		"This is a ring, but it is neither an integral domain nor a division ring because "+
			"not all nonzero elements have multiplicative inverses and multiplication is not commutative.",
		c.Insight)
}

func TestNullRing(t *testing.T) {
	c := classifyGen(t, builder.NullRing(4))
	assert.True(t, c.CommutativeRing.Holds())
	assert.False(t, c.MultiplicativeIdentity.Found)
}

func TestBuild_Errors(t *testing.T) {
	for _, gen := range []builder.Generator{
		builder.IntegersMod(0), builder.NullRing(-1), builder.ProductMod(0, 3),
	} {
		_, err := builder.Build(gen)
		assert.ErrorIs(t, err, builder.ErrTooFewElements)
	}
	_, err := builder.Build(nil)
	assert.ErrorIs(t, err, builder.ErrNilGenerator)
}
