// SPDX-License-Identifier: MIT
//
// File: analysis.go
// Role: one-call facade: labeled input -> validated structure -> classification
// -> derived graphs -> Report.

// Package analysis runs the full pipeline for one labeled structure.
//
// Analyze validates the input first; on malformed input it returns an error
// and no Report. A structure that fails every axiom is not an error: its
// Report simply carries failed verdicts with witnesses.
package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cayley/classify"
	"github.com/katalvlaran/cayley/graphs"
	"github.com/katalvlaran/cayley/internal/logging"
	"github.com/katalvlaran/cayley/structure"
)

// ErrTooManyElements indicates the input exceeds the configured element limit.
var ErrTooManyElements = errors.New("analysis: too many elements")

// Input is a labeled structure: declared elements plus both tables.
type Input = structure.Raw

// Tables holds the index form of both operations, for heatmap rendering.
// Rows are indexed in the order of Elements.
type Tables struct {
	Elements []string `json:"elements" yaml:"elements"`
	Add      [][]int  `json:"add" yaml:"add"`
	Mul      [][]int  `json:"mul" yaml:"mul"`
}

// Report is the complete result of one analysis.
//
// ZeroDivisorGraph and UnitGraph are nil when the identity they depend on
// does not exist; their Stats are nil in the same cases.
type Report struct {
	Classification         *classify.Classification `json:"classification" yaml:"classification"`
	AdditiveIdentity       classify.Identity        `json:"additive_identity" yaml:"additive_identity"`
	MultiplicativeIdentity classify.Identity        `json:"multiplicative_identity" yaml:"multiplicative_identity"`
	ZeroDivisorGraph       *graphs.Graph            `json:"zero_divisor_graph" yaml:"zero_divisor_graph"`
	UnitGraph              *graphs.Graph            `json:"unit_graph" yaml:"unit_graph"`
	ZeroDivisorStats       *graphs.Summary          `json:"zero_divisor_stats,omitempty" yaml:"zero_divisor_stats,omitempty"`
	UnitStats              *graphs.Summary          `json:"unit_stats,omitempty" yaml:"unit_stats,omitempty"`
	Tables                 Tables                   `json:"tables" yaml:"tables"`
}

// Option configures Analyze.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	workers     int
	maxElements int
}

// WithLogger sets the logger for the per-analysis debug record. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("analysis: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithParallel forwards to classify.WithParallel. workers <= 1 keeps the
// sequential path.
func WithParallel(workers int) Option {
	return func(o *options) { o.workers = workers }
}

// WithMaxElements rejects inputs with more than n elements
// (ErrTooManyElements). n <= 0 disables the limit.
func WithMaxElements(n int) Option {
	return func(o *options) { o.maxElements = n }
}

// Analyze runs the pipeline on in.
//
// Implementation:
//   - Stage 1: Enforce the element limit, then structure.FromRaw.
//   - Stage 2: classify.Classify.
//   - Stage 3: Derive both graphs from the identities and summarize them.
//   - Stage 4: Export the index tables.
//
// Errors:
//   - ErrTooManyElements; structure.ErrDuplicateElement, ErrEmptyElement,
//     ErrInvalidTable. All are returned before any axiom runs.
//
// Complexity: O(n³).
func Analyze(in Input, opts ...Option) (*Report, error) {
	o := options{logger: logging.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()

	if o.maxElements > 0 && len(in.Elements) > o.maxElements {
		return nil, fmt.Errorf("Analyze: %d elements, limit %d: %w", len(in.Elements), o.maxElements, ErrTooManyElements)
	}
	s, err := structure.FromRaw(in)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	var copts []classify.Option
	if o.workers > 1 {
		copts = append(copts, classify.WithParallel(o.workers))
	}
	c, err := classify.Classify(s, copts...)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	r := &Report{
		Classification:         c,
		AdditiveIdentity:       c.AdditiveIdentity,
		MultiplicativeIdentity: c.MultiplicativeIdentity,
		ZeroDivisorGraph:       graphs.ZeroDivisor(s, c.AdditiveIdentity),
		UnitGraph:              graphs.Unit(s, c.AdditiveIdentity, c.MultiplicativeIdentity),
		Tables: Tables{
			Elements: s.Labels.Elements(),
			Add:      s.Add.Rows(),
			Mul:      s.Mul.Rows(),
		},
	}
	if r.ZeroDivisorStats, err = graphs.Stats(r.ZeroDivisorGraph); err != nil {
		return nil, fmt.Errorf("Analyze: zero-divisor graph: %w", err)
	}
	if r.UnitStats, err = graphs.Stats(r.UnitGraph); err != nil {
		return nil, fmt.Errorf("Analyze: unit graph: %w", err)
	}

	o.logger.Debug("analysis complete",
		slog.Int("elements", s.Size()),
		slog.String("class", c.Tightest()),
		slog.Bool("zero_divisors", c.HasZeroDivisors()),
		slog.Duration("took", time.Since(start)),
	)

	return r, nil
}
