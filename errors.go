// Package ripsgo: cross-cutting error kinds.
// This file defines ONLY the two failure categories shared by every
// subpackage. Narrow sentinels (metric.ErrTooFewPoints, rips.ErrScaleNegative,
// …) wrap one of these, so both of the following hold for any failure err:
//
//	errors.Is(err, <narrow sentinel>)   — the precise condition
//	errors.Is(err, ripsgo.ErrInvalidInput) or errors.Is(err, ripsgo.ErrResourceLimit)
//
// No algorithm panics on user input; panics are reserved for programmer
// errors in private helpers.
package ripsgo

import "errors"

var (
	// ErrInvalidInput marks malformed or insufficient input: dimension
	// mismatches, too few points, negative scales, broken matrices.
	// Retrying with the same input always reproduces the failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResourceLimit marks a computation that would exceed a configured
	// point/simplex/operation/time budget. The engine fails fast instead of
	// returning a partial or truncated diagram.
	ErrResourceLimit = errors.New("resource limit exceeded")
)
