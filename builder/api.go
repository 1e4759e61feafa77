// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: the Generator type and the Build entry points.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cayley/structure"
)

// ErrTooFewElements indicates a size parameter below the generator's minimum.
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrNilGenerator indicates Build was called without a generator.
var ErrNilGenerator = errors.New("builder: nil generator")

// Generator produces a labeled structure from the resolved configuration.
// Generators validate their parameters and return sentinel errors; they never
// panic.
type Generator func(cfg builderConfig) (structure.Raw, error)

// Build resolves opts and runs gen.
//
// Errors:
//   - ErrNilGenerator, or the generator's error wrapped as "Build: %w".
//
// Complexity: that of the generator, O(n²) for every generator here.
func Build(gen Generator, opts ...BuilderOption) (structure.Raw, error) {
	if gen == nil {
		return structure.Raw{}, fmt.Errorf("Build: %w", ErrNilGenerator)
	}
	raw, err := gen(newBuilderConfig(opts...))
	if err != nil {
		return structure.Raw{}, fmt.Errorf("Build: %w", err)
	}

	return raw, nil
}

// BuildStructure is Build followed by structure.FromRaw.
func BuildStructure(gen Generator, opts ...BuilderOption) (*structure.Structure, error) {
	raw, err := Build(gen, opts...)
	if err != nil {
		return nil, err
	}
	s, err := structure.FromRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("BuildStructure: %w", err)
	}

	return s, nil
}

// fromOps tabulates add and mul over indices 0..n-1 using the given labels.
// Both functions must return indices in [0, n).
func fromOps(labels []string, add, mul func(i, j int) int) structure.Raw {
	n := len(labels)
	raw := structure.Raw{
		Elements: append([]string(nil), labels...),
		Add:      make([][]string, n),
		Mul:      make([][]string, n),
	}
	var i, j int
	for i = 0; i < n; i++ {
		raw.Add[i] = make([]string, n)
		raw.Mul[i] = make([]string, n)
		for j = 0; j < n; j++ {
			raw.Add[i][j] = labels[add(i, j)]
			raw.Mul[i][j] = labels[mul(i, j)]
		}
	}

	return raw
}
