// Package tda wires the analysis stages into one call: trace or point
// cloud in, persistence diagram out.
//
// Three entry points, one per input shape:
//
//	tda.AnalyzeSeries(ctx, trace, embed.DefaultOptions(), tda.DefaultOptions())
//	tda.AnalyzePoints(ctx, cloud, tda.DefaultOptions())
//	tda.AnalyzeDistances(ctx, dm, tda.DefaultOptions())
//
// Each stage is pure and deterministic; the façade adds only resolution
// of defaults (metric, automatic max scale) and cancellation checks
// between stages. A canceled context surfaces as ripsgo.ErrResourceLimit
// wrapping the context error, the same kind a budget breach reports.
//
// The YAML Config in this package carries the engine's tunables for the
// CLI: metric name, scale and dimension bounds, embedding parameters and
// resource budgets.
package tda
