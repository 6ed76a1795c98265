// Package embed reconstructs point clouds from 1-D diagnostic traces via
// delay (Takens) embedding, the standard precursor to Rips analysis of a
// single-channel signal.
//
// A trace x₀…x_{N−1} embedded with dimension d and delay τ yields
// N−(d−1)·τ points, the i-th being
//
//	(x_i, x_{i+τ}, x_{i+2τ}, …, x_{i+(d−1)τ})
//
// Defaults (dimension 3, delay 10) follow common practice for pressure
// traces; Downsample bounds the sample count before embedding so the
// downstream O(n²) distance matrix stays tractable.
//
// Usage:
//
//	cloud, err := embed.Delay(trace, embed.DefaultOptions())
//
// Errors wrap ripsgo.ErrInvalidInput and are matched with errors.Is.
package embed
