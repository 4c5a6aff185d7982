// SPDX-License-Identifier: MIT
// Package: propagraph/split
//
// types.go — sentinel errors, options, and the Result type.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Option constructors panic on nonsense values (nil RNG); runtime
//     validation surfaces as errors before any graph mutation.
package split

import (
	"errors"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/propagraph/core"
)

// Sentinel errors for the split generator.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Random.
	ErrNilGraph = errors.New("split: graph is nil")

	// ErrBadFraction indicates a train fraction outside the open
	// interval (0,1).
	ErrBadFraction = errors.New("split: train fraction must lie in (0,1)")

	// ErrNeedRandSource indicates that no RNG was provided; supply one
	// via WithSource or WithSeed for a reproducible partition.
	ErrNeedRandSource = errors.New("split: rng is required")
)

// Result describes one generated partition.
type Result struct {
	// Train lists the vertices drawn as seeds, ascending ID order.
	Train []core.VertexID

	// Test lists the remaining gold-labeled vertices, ascending ID order.
	Test []core.VertexID

	// Injected holds the per-label injection counts of the draw
	// (bounded by the per-class cap, so possibly smaller than the number
	// of train vertices carrying the label).
	Injected map[core.LabelID]int
}

// Options configures the split generator.
type Options struct {
	src rand.Source // explicit randomness source; nil means unset
}

// Option represents a functional option for configuring Random.
type Option func(*Options)

// WithSource sets the randomness source. Panics if src is nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("split: WithSource requires a non-nil rand.Source")
	}

	return func(o *Options) { o.src = src }
}

// WithSeed derives a deterministic randomness source from the given seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.src = rand.NewSource(seed)
	}
}
