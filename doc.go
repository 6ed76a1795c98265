// Package ripsgo turns sampled plasma diagnostic signals into persistence
// diagrams — from raw 1-D traces to Vietoris–Rips filtrations and
// persistent homology.
//
// 🚀 What is ripsgo?
//
//	A pure, deterministic, batch library that brings together:
//		• Metrics & distance matrices: Euclidean, Manhattan, Chebyshev, Cosine, DTW
//		• Delay embedding: Takens reconstruction of time series into point clouds
//		• Vietoris–Rips filtrations: incremental construction up to a scale bound
//		• Persistent homology: Z2 boundary-matrix reduction, per-dimension diagrams
//		• Descriptive statistics: pandas-style summaries of traces and clouds
//
// ✨ Why choose ripsgo?
//
//   - Deterministic – identical inputs always produce bit-identical diagrams
//   - Bounded – explicit point/simplex/time budgets, never a silent hang
//   - Pure Go – no cgo, no global state, every invocation independent
//   - Predictable failures – typed sentinel errors, matched with errors.Is
//
// Everything is organized under flat subpackages:
//
//	metric/      — distance functions and the condensed DistanceMatrix
//	embed/       — delay (Takens) embedding and downsampling of 1-D series
//	rips/        — Vietoris–Rips filtration construction
//	persistence/ — boundary-matrix reduction and persistence diagrams
//	stats/       — descriptive statistics of traces and embedded clouds
//	tda/         — one-call façade wiring the stages together, YAML config
//	cmd/ripsgo/  — CLI over CSV inputs, single-file or whole-directory runs
//
// Quick pipeline sketch:
//
//	trace ──embed──▶ point cloud ──metric──▶ distance matrix
//	      ──rips──▶ filtration ──persistence──▶ diagram (dim, birth, death)
//
// The two failure kinds every operation reports live in this package:
// ErrInvalidInput and ErrResourceLimit. Subpackages define narrower
// sentinels that wrap them, so callers can match either the precise
// condition or the broad kind.
//
//	go get github.com/jrfloren/ripsgo
package ripsgo
