// Package rips builds Vietoris–Rips filtrations from distance matrices.
//
// 🚀 What is a Vietoris–Rips filtration?
//
//	Fix a scale ε. A set of points forms a simplex at ε iff all its
//	pairwise distances are ≤ ε. Sweeping ε from 0 upward yields a nested
//	family of simplicial complexes; each simplex is tagged with its birth
//	scale — the largest pairwise distance among its vertices.
//
// Construction is the incremental lower-neighbor expansion: vertex i only
// ever joins simplices through neighbors j < i, so every simplex is
// discovered exactly once, with its vertex list already sorted.
//
// The filtration is returned in a fixed total order:
//
//	(birth ascending, dimension ascending, vertex-lexicographic)
//
// so faces always precede cofaces and repeated runs are bit-identical.
//
// Homology convention: to report persistence in dimensions 0..MaxDimension
// the filtration must contain simplices one dimension higher (their
// appearance is what kills MaxDimension-cycles). Build therefore admits
// simplices up to dimension MaxDimension+1; the persistence package trims
// reported dimensions back to MaxDimension.
//
// Budgets: the simplex count grows combinatorially with point count and
// dimension, so Build enforces explicit Limits and an optional TimeLimit,
// failing with sentinels wrapping ripsgo.ErrResourceLimit instead of
// hanging or exhausting memory.
package rips
