// SPDX-License-Identifier: MIT
// Package: propagraph/weighting
//
// types.go — sentinel errors, tolerances, and the Report carrier.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Parameter validation fails fast, before any graph mutation.
package weighting

import (
	"errors"

	"github.com/katalvlaran/propagraph/core"
)

// Tolerance is the floating-point slack within which the probability
// normalization invariant (p_cont + p_inj + p_abnd = 1) must hold.
const Tolerance = 1e-9

// minBeta is the smallest admissible regularization constant. β below 1
// would yield a negative continuation term (ln β < 0).
const minBeta = 1.0

// Sentinel errors for the weighting transforms.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a transform.
	ErrNilGraph = errors.New("weighting: graph is nil")

	// ErrBadSigma indicates a non-positive Gaussian kernel sigma factor.
	ErrBadSigma = errors.New("weighting: sigma factor must be positive")

	// ErrBadTopK indicates a non-positive neighbor retention bound.
	ErrBadTopK = errors.New("weighting: top-K must be positive")

	// ErrBadThreshold indicates a negative degree-pruning threshold.
	ErrBadThreshold = errors.New("weighting: prune threshold must be non-negative")

	// ErrBadBeta indicates a regularization constant below 1.
	ErrBadBeta = errors.New("weighting: beta must be >= 1")
)

// Report summarizes non-fatal findings of ComputeRandomWalk.
//
// Degenerate lists vertices with zero outgoing weight at computation time
// (fully pruned or isolated), in ascending ID order. Such vertices are
// recorded, not rejected: they keep the fallback p_cont = 0 with all mass
// on injection/abandonment.
type Report struct {
	// Degenerate holds the IDs of zero-out-weight vertices.
	Degenerate []core.VertexID
}
