// SPDX-License-Identifier: MIT
//
// Package weighting implements the post-assembly transforms of the
// label-propagation preparation pipeline: Gaussian-kernel reweighting,
// top-K neighbor retention, degree-based pruning, and derivation of the
// per-vertex random-walk transition model.
//
// Sequencing contract (the caller owns the order, typically pipeline.Run):
//
//	GaussianKernel → RetainTopK → ComputeRandomWalk
//
// with PruneLowDegree anywhere before ComputeRandomWalk. GaussianKernel
// must run at most once — it interprets the current weights as squared
// distances, so re-application corrupts them and the contract does not
// guard against it. ComputeRandomWalk, by contrast, is safe to re-run and
// must be re-run whenever seeds or weights change: it rebuilds every
// vertex's transition state from scratch.
//
// Random-walk model. For a vertex v with total outgoing weight W(v) and
// normalized neighbor distribution p, the probability mass splits into
// continuation, injection, and abandonment:
//
//	H(v)   = -Σ p·ln p                         (neighborhood entropy)
//	c_v    = ln β / ln(β + e^{H(v)})           (0 when W(v)=0 or β=1)
//	j_v    = (1 - c_v)·√H(v)  if v has injected labels, else 0
//	z_v    = max(c_v + j_v, 1)
//	p_cont = c_v / z_v
//	p_inj  = j_v / z_v
//	p_abnd = 1 - p_cont - p_inj
//
// Higher β shifts mass between continuation and injection as a function
// of neighborhood entropy: high-entropy (uniform, hub-like) vertices give
// up continuation mass, and seed vertices convert it into injection mass.
// The three masses always sum to 1 within Tolerance, the per-neighbor
// transition entries sum to p_cont, and an isolated vertex (W(v)=0) puts
// all mass on injection/abandonment.
//
// All transforms iterate vertices in sorted-ID order and break weight ties
// by ascending VertexID, so output is reproducible run to run.
//
// Degenerate vertices (zero outgoing weight at random-walk time) are a
// warning, not an error: they are listed in the returned Report and keep
// the well-formed fallback p_cont = 0.
package weighting
