// Package report presents the outcome of a benchmark sweep: a chart of the
// measured timings against the fitted growth curves, the fitted coefficients
// on standard output, and an optional YAML record of the run.
package report
