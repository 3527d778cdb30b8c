// Package harness runs a complexity sweep: for every dataset size it makes
// sure the dataset exists, times the subject once on it and records the
// sample. A single sample per size is taken; timings are wall-clock and are
// not expected to be reproducible.
package harness
