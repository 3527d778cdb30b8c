package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/specialistvlad/battlesched/internal/ctxlog"
	"github.com/specialistvlad/battlesched/internal/dataset"
	"github.com/specialistvlad/battlesched/internal/fsutil"
	"github.com/specialistvlad/battlesched/internal/subject"
)

const (
	DefaultSeed       int64 = 42
	DefaultDatasetDir       = "datatest"
)

// DefaultSizes returns 1000, 2000, ... 2048000.
func DefaultSizes() []int {
	sizes := make([]int, 0, 12)
	for n := 1000; n <= 2048000; n *= 2 {
		sizes = append(sizes, n)
	}
	return sizes
}

// Sample is one measurement: the subject took Elapsed on Size records.
type Sample struct {
	Size    int
	Elapsed time.Duration
}

// Seconds returns the elapsed time in seconds.
func (s Sample) Seconds() float64 {
	return s.Elapsed.Seconds()
}

// Sizes and Timings split samples into the two series used for fitting.
func Sizes(samples []Sample) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = s.Size
	}
	return out
}

func Timings(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Seconds()
	}
	return out
}

// Experiment is a sweep over Sizes.
type Experiment struct {
	Subject    subject.Subject
	Sizes      []int
	Seed       int64
	DatasetDir string
	// Out receives one progress line per size. May be nil.
	Out io.Writer
}

// Run measures every size in order. Any dataset or measurement error aborts
// the whole sweep.
func (e *Experiment) Run(ctx context.Context) ([]Sample, error) {
	logger := ctxlog.FromContext(ctx)
	if e.Subject == nil {
		return nil, errors.New("experiment has no subject")
	}
	if len(e.Sizes) == 0 {
		return nil, errors.New("experiment has no sizes")
	}
	for i, n := range e.Sizes {
		if n <= 0 {
			return nil, fmt.Errorf("size must be positive, got %d", n)
		}
		if i > 0 && n <= e.Sizes[i-1] {
			return nil, fmt.Errorf("sizes must be strictly ascending, got %d after %d", n, e.Sizes[i-1])
		}
	}
	out := e.Out
	if out == nil {
		out = io.Discard
	}

	if err := fsutil.EnsureDir(e.DatasetDir); err != nil {
		return nil, err
	}
	logger.Debug("Sweep starting.", "subject", e.Subject.Name(), "sizes", len(e.Sizes), "dataset_dir", e.DatasetDir)

	samples := make([]Sample, 0, len(e.Sizes))
	for _, n := range e.Sizes {
		path := dataset.Path(e.DatasetDir, n)
		sizeCtx := ctxlog.With(ctx, "size", n)

		if _, err := dataset.Ensure(sizeCtx, path, n, e.Seed); err != nil {
			return nil, fmt.Errorf("failed to prepare dataset for n=%d: %w", n, err)
		}
		elapsed, err := e.Subject.Measure(sizeCtx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to measure n=%d: %w", n, err)
		}

		s := Sample{Size: n, Elapsed: elapsed}
		samples = append(samples, s)
		fmt.Fprintf(out, "n=%d, tiempo=%.4f segundos\n", n, s.Seconds())
	}

	logger.Debug("Sweep finished.", "samples", len(samples))
	return samples, nil
}
