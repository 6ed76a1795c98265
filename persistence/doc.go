// Package persistence computes persistence diagrams from Vietoris–Rips
// filtrations by boundary-matrix reduction over Z2.
//
// 🚀 What is persistent homology?
//
//	As the filtration scale grows, topological features appear and
//	disappear: components merge, loops form and fill in, voids close.
//	Each feature is a (birth, death) pair in its homology dimension;
//	features alive past the studied scale get death = +Inf.
//
// Algorithm (standard reduction):
//
//	Walk the filtration in order. Each simplex contributes a boundary
//	column — the filtration indices of its faces. Reduce the column by
//	repeatedly adding (symmetric difference, Z2) the column owning its
//	lowest index. An emptied column creates a class; a surviving column
//	kills the class created at its low index, yielding the pair
//	(birth of the creator, birth of the killer).
//
// Determinism: the filtration order is total and reduction is sequential,
// so identical filtrations always produce bit-identical diagrams.
//
// Zero-persistence pairs (death == birth) carry no topological signal and
// are dropped by default, matching standard Rips tooling; set
// Options.IncludeZeroPersistence to keep them — useful for closed-form
// regression fixtures where a feature fills in at its own birth scale.
//
// Budgets: reduction cost is bounded by Options.MaxColumnOps and an
// optional TimeLimit; a breach fails with a sentinel wrapping
// ripsgo.ErrResourceLimit, never a truncated diagram.
package persistence
