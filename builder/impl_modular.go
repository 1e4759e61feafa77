// SPDX-License-Identifier: MIT
//
// File: impl_modular.go
// Role: generators built from modular arithmetic: Z_n, Z_m × Z_n, null rings.
// Determinism:
//   - Elements are listed by ascending index; ProductMod uses index a*n + b.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/structure"
)

const (
	methodIntegersMod = "IntegersMod"
	methodProductMod  = "ProductMod"
	methodNullRing    = "NullRing"
	minModulus        = 1
)

// IntegersMod returns a Generator for Z_n = {0..n-1} with + and * mod n.
// n = 1 yields the one-element structure.
func IntegersMod(n int) Generator {
	return func(cfg builderConfig) (structure.Raw, error) {
		if n < minModulus {
			return structure.Raw{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodIntegersMod, n, minModulus, ErrTooFewElements)
		}

		return fromOps(labelsFor(cfg.labelFn, n),
			func(i, j int) int { return (i + j) % n },
			func(i, j int) int { return (i * j) % n },
		), nil
	}
}

// NullRing returns a Generator for Z_n addition with the zero product
// x * y = 0: a commutative ring without multiplicative identity for n ≥ 2.
func NullRing(n int) Generator {
	return func(cfg builderConfig) (structure.Raw, error) {
		if n < minModulus {
			return structure.Raw{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodNullRing, n, minModulus, ErrTooFewElements)
		}

		return fromOps(labelsFor(cfg.labelFn, n),
			func(i, j int) int { return (i + j) % n },
			func(int, int) int { return 0 },
		), nil
	}
}

// ProductMod returns a Generator for Z_m × Z_n with componentwise operations.
// The pair (a, b) has index a*n + b and label "(la,lb)" where la, lb come
// from the label scheme.
func ProductMod(m, n int) Generator {
	return func(cfg builderConfig) (structure.Raw, error) {
		if m < minModulus || n < minModulus {
			return structure.Raw{}, fmt.Errorf("%s: m=%d n=%d, min=%d: %w", methodProductMod, m, n, minModulus, ErrTooFewElements)
		}
		labels := make([]string, 0, m*n)
		var a, b int
		for a = 0; a < m; a++ {
			for b = 0; b < n; b++ {
				labels = append(labels, "("+cfg.labelFn(a)+","+cfg.labelFn(b)+")")
			}
		}
		combine := func(f func(x, y, mod int) int) func(i, j int) int {
			return func(i, j int) int {
				return f(i/n, j/n, m)*n + f(i%n, j%n, n)
			}
		}

		return fromOps(labels,
			combine(func(x, y, mod int) int { return (x + y) % mod }),
			combine(func(x, y, mod int) int { return (x * y) % mod }),
		), nil
	}
}
