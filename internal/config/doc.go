// Package config defines the format-agnostic model of a benchmark
// configuration and the Loader interface used to read it. Concrete file
// formats, such as HCL, live in separate packages.
//
// Every field of Model is optional: an unset field means "keep whatever a
// lower-priority source said". Models are layered with Merge, so defaults,
// configuration files and command-line flags compose in that order.
package config
