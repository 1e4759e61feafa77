// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and the resolved builderConfig.
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - newBuilderConfig applies options in order; later overrides earlier.

package builder

// BuilderOption customizes a generator run.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by generators. It is passed by
// value, so generators cannot leak changes back to callers.
type builderConfig struct {
	// labelFn maps an element index to its label.
	labelFn LabelFn
}

// newBuilderConfig starts from DecimalLabel and applies opts in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{labelFn: DecimalLabel}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLabelScheme sets the index -> label function. Panics on nil.
func WithLabelScheme(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}

	return func(c *builderConfig) { c.labelFn = fn }
}

// WithSymbolLabels is WithLabelScheme(SymbolLabel).
func WithSymbolLabels() BuilderOption { return WithLabelScheme(SymbolLabel) }

// WithExcelLabels is WithLabelScheme(ExcelLabel).
func WithExcelLabels() BuilderOption { return WithLabelScheme(ExcelLabel) }
