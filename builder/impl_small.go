// SPDX-License-Identifier: MIT
//
// File: impl_small.go
// Role: fixed small structures: GF(4) and upper-triangular 2×2 matrices over Z_2.
// These ignore the label scheme; their labels are part of their definition.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/structure"
)

// gf4Labels lists GF(4) = Z_2[x]/(x²+x+1) by bit pattern: a = x, b = x+1.
var gf4Labels = []string{"0", "1", "a", "b"}

// gf4Mul is the multiplication table by index: a*a = b, a*b = 1, b*b = a.
var gf4Mul = [4][4]int{
	{0, 0, 0, 0},
	{0, 1, 2, 3},
	{0, 2, 3, 1},
	{0, 3, 1, 2},
}

// GaloisField4 returns a Generator for the four-element field. Addition is
// XOR of the bit patterns.
func GaloisField4() Generator {
	return func(builderConfig) (structure.Raw, error) {
		return fromOps(gf4Labels,
			func(i, j int) int { return i ^ j },
			func(i, j int) int { return gf4Mul[i][j] },
		), nil
	}
}

// UpperTriangularZ2 returns a Generator for the matrices
//
//	[a b]
//	[0 d]   a, b, d ∈ Z_2
//
// with index a*4 + b*2 + d and label "(a,b,d)". Addition is entrywise XOR;
// multiplication is (a,b,d)(a',b',d') = (aa', ab'+bd', dd') mod 2. The
// identity is (1,0,1).
func UpperTriangularZ2() Generator {
	return func(builderConfig) (structure.Raw, error) {
		labels := make([]string, 8)
		for i := range labels {
			a, b, d := unpackUT(i)
			labels[i] = fmt.Sprintf("(%d,%d,%d)", a, b, d)
		}

		return fromOps(labels,
			func(i, j int) int { return i ^ j },
			func(i, j int) int {
				a, b, d := unpackUT(i)
				a2, b2, d2 := unpackUT(j)
				return packUT(a*a2, a*b2+b*d2, d*d2)
			},
		), nil
	}
}

func unpackUT(i int) (a, b, d int) { return (i >> 2) & 1, (i >> 1) & 1, i & 1 }

func packUT(a, b, d int) int { return (a%2)<<2 | (b%2)<<1 | d%2 }
