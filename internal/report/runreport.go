package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/specialistvlad/battlesched/internal/fit"
	"github.com/specialistvlad/battlesched/internal/fsutil"
	"github.com/specialistvlad/battlesched/internal/harness"
	"gopkg.in/yaml.v3"
)

// RunReport is the YAML document written after a sweep.
type RunReport struct {
	Subject   string        `yaml:"subject"`
	Seed      int64         `yaml:"seed"`
	CreatedAt time.Time     `yaml:"created_at"`
	Samples   []SampleEntry `yaml:"samples"`
	Models    []ModelEntry  `yaml:"models"`
	Best      string        `yaml:"best"`
}

type SampleEntry struct {
	Size    int     `yaml:"n"`
	Seconds float64 `yaml:"seconds"`
}

type ModelEntry struct {
	Name         string           `yaml:"name"`
	Label        string           `yaml:"label"`
	Coefficients fit.Coefficients `yaml:",inline"`
	RSS          float64          `yaml:"rss"`
	RSquared     float64          `yaml:"r_squared"`
}

// NewRunReport builds the report document for a finished sweep.
func NewRunReport(subjectName string, seed int64, samples []harness.Sample, result *fit.Result) *RunReport {
	r := &RunReport{
		Subject:   subjectName,
		Seed:      seed,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Best:      result.Best().Growth.Name,
	}
	for _, s := range samples {
		r.Samples = append(r.Samples, SampleEntry{Size: s.Size, Seconds: s.Seconds()})
	}
	for _, m := range result.Models() {
		r.Models = append(r.Models, ModelEntry{
			Name:         m.Growth.Name,
			Label:        m.Growth.Label,
			Coefficients: m.Coefficients,
			RSS:          m.RSS,
			RSquared:     m.RSquared,
		})
	}
	return r
}

// WriteRunReport encodes r as YAML to path, creating parent directories.
func WriteRunReport(path string, r *RunReport) error {
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode run report: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write run report %s: %w", path, err)
	}
	return nil
}
