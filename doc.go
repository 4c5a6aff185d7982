// Package propagraph prepares weighted graphs for semi-supervised
// label-propagation inference: it ingests edge and seed-label records,
// assembles them into an in-memory graph with per-vertex label
// distributions, applies reweighting and pruning transforms, and derives
// the per-vertex random-walk transition model the propagation algorithm
// consumes.
//
// 🚀 What is propagraph?
//
//	A small, deterministic library that brings together:
//		• Core store: vertices, weighted adjacency, gold/injected labels
//		• Assembly: edge-list building + capped seed injection + test marking
//		• Weighting: Gaussian kernel, top-K retention, degree pruning
//		• Random walk: continuation/injection/abandonment probability model
//		• Splits: reproducible random train/test partitions
//		• Pipeline: YAML-configured orchestration of all of the above
//
// ✨ Why choose propagraph?
//
//   - Deterministic – sorted iteration, explicit RNG seeds, stable tie-breaks
//   - Strict contracts – per-class seed caps, normalization invariants,
//     fail-fast configuration
//   - Honest error policy – sentinel errors, errors.Is everywhere
//
// Everything is organized under five subpackages:
//
//	core/      — Graph, Vertex, Edge/Seed records & thread-safe catalog ops
//	assemble/  — adjacency assembly, seed injection, evaluation marking
//	weighting/ — kernel, top-K, pruning, transition probabilities
//	split/     — random train/test partition generation
//	pipeline/  — typed configuration + thin orchestrator
//
// Quick ASCII example:
//
//	    a───b───c        one seed on "a", undirected unit weights:
//	                     after the pipeline every vertex carries a
//	                     transition model with p_cont+p_inj+p_abnd = 1.
//
// Parsing of record files, on-disk graph formats, and the propagation
// loop itself are deliberately out of scope: propagraph ends where a
// fully populated, internally consistent graph begins.
package propagraph
