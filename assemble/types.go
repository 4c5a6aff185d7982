// SPDX-License-Identifier: MIT
// Package: propagraph/assemble
//
// types.go — sentinel errors for graph assembly.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context (vertex IDs, caps) via %w wrapping.
package assemble

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed to an assembly
// operation.
// Usage: if errors.Is(err, ErrNilGraph) { /* construct the graph first */ }.
var ErrNilGraph = errors.New("assemble: graph is nil")

// ErrBadSeedCap indicates a negative per-class injection cap.
// A cap of zero is legal and means "record gold truth, inject nothing".
var ErrBadSeedCap = errors.New("assemble: max seeds per class must be non-negative")

// ErrVertexNotFound indicates a test-label record referenced a vertex
// absent from the graph — a fatal precondition violation, unlike seed
// records, which are silently dropped.
var ErrVertexNotFound = errors.New("assemble: test label references unknown vertex")
