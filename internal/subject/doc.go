// Package subject defines the executable under test: something that, given a
// dataset path, runs to completion and reports how long that took.
//
// The harness only measures elapsed time. It does not inspect what the
// subject printed and does not treat a non-zero exit status as a failure.
package subject
