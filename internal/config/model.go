package config

import "slices"

// Model is the benchmark configuration. Zero values (nil pointer, empty
// string, nil slice) mean "not set".
type Model struct {
	Seed       *int64
	DatasetDir string
	Sizes      []int
	Launcher   []string
	Chart      string
	Report     string
}

// Merge returns a new model holding m overlaid with every field set in
// other. Neither input is modified.
func (m *Model) Merge(other *Model) *Model {
	out := m.clone()
	if other == nil {
		return out
	}
	if other.Seed != nil {
		seed := *other.Seed
		out.Seed = &seed
	}
	if other.DatasetDir != "" {
		out.DatasetDir = other.DatasetDir
	}
	if other.Sizes != nil {
		out.Sizes = slices.Clone(other.Sizes)
	}
	if other.Launcher != nil {
		out.Launcher = slices.Clone(other.Launcher)
	}
	if other.Chart != "" {
		out.Chart = other.Chart
	}
	if other.Report != "" {
		out.Report = other.Report
	}
	return out
}

func (m *Model) clone() *Model {
	if m == nil {
		return &Model{}
	}
	out := &Model{
		DatasetDir: m.DatasetDir,
		Sizes:      slices.Clone(m.Sizes),
		Launcher:   slices.Clone(m.Launcher),
		Chart:      m.Chart,
		Report:     m.Report,
	}
	if m.Seed != nil {
		seed := *m.Seed
		out.Seed = &seed
	}
	return out
}

// SeedOr returns the configured seed, or def when none is set.
func (m *Model) SeedOr(def int64) int64 {
	if m == nil || m.Seed == nil {
		return def
	}
	return *m.Seed
}

// Int64 returns a pointer to v, for building models in code.
func Int64(v int64) *int64 {
	return &v
}
