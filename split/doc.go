// SPDX-License-Identifier: MIT
//
// Package split generates random train/test partitions over the
// gold-labeled vertices of an assembled graph.
//
// A uniformly random fraction of the gold-labeled vertices becomes
// injected seeds — respecting the assemble package's per-class cap
// semantics — and the remainder becomes test nodes. The transition model
// must be recomputed afterwards (weighting.ComputeRandomWalk); the
// pipeline package does this automatically.
//
// Randomness is explicit: stochastic behavior requires a caller-provided
// source via WithSource or WithSeed, so every partition is reproducible
// from its seed. There is no package-level RNG.
package split
