package harness

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/battlesched/internal/dataset"
	"github.com/specialistvlad/battlesched/internal/scheduler"
	"github.com/specialistvlad/battlesched/internal/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSizes(t *testing.T) {
	sizes := DefaultSizes()
	require.Len(t, sizes, 12)
	assert.Equal(t, 1000, sizes[0])
	assert.Equal(t, 2048000, sizes[11])
	for i := 1; i < len(sizes); i++ {
		assert.Equal(t, sizes[i-1]*2, sizes[i])
	}
}

// linearStub pretends each record costs one microsecond and checks the
// dataset it was given really has that many records.
func linearStub(t *testing.T) subject.Func {
	return func(_ context.Context, path string) (time.Duration, error) {
		records, err := scheduler.Load(path)
		require.NoError(t, err)
		return time.Duration(len(records)) * time.Microsecond, nil
	}
}

func TestExperiment_Run(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := filepath.Join(t.TempDir(), "datatest")
	var out bytes.Buffer
	exp := &Experiment{
		Subject:    linearStub(t),
		Sizes:      []int{10, 20, 40},
		Seed:       DefaultSeed,
		DatasetDir: dir,
		Out:        &out,
	}

	// --- Act ---
	samples, err := exp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []Sample{
		{Size: 10, Elapsed: 10 * time.Microsecond},
		{Size: 20, Elapsed: 20 * time.Microsecond},
		{Size: 40, Elapsed: 40 * time.Microsecond},
	}, samples)
	assert.Equal(t, []int{10, 20, 40}, Sizes(samples))
	assert.InDeltaSlice(t, []float64{1e-5, 2e-5, 4e-5}, Timings(samples), 1e-12)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "n=10, tiempo=0.0000 segundos", lines[0])

	for _, n := range exp.Sizes {
		_, err := os.Stat(dataset.Path(dir, n))
		assert.NoError(t, err, "dataset for n=%d should be cached", n)
	}
}

func TestExperiment_ReusesCachedDatasets(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exp := &Experiment{Subject: linearStub(t), Sizes: []int{5, 10}, Seed: 1, DatasetDir: dir}

	_, err := exp.Run(context.Background())
	require.NoError(t, err)
	before, err := os.ReadFile(dataset.Path(dir, 10))
	require.NoError(t, err)

	// A different seed must not regenerate an existing file.
	exp.Seed = 2
	_, err = exp.Run(context.Background())
	require.NoError(t, err)
	after, err := os.ReadFile(dataset.Path(dir, 10))
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestExperiment_MeasureErrorAbortsSweep(t *testing.T) {
	t.Parallel()

	calls := 0
	boom := errors.New("boom")
	exp := &Experiment{
		Subject: subject.Func(func(context.Context, string) (time.Duration, error) {
			calls++
			if calls == 2 {
				return 0, boom
			}
			return time.Millisecond, nil
		}),
		Sizes:      []int{1, 2, 3},
		DatasetDir: t.TempDir(),
	}

	samples, err := exp.Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "n=2")
	assert.Nil(t, samples)
	assert.Equal(t, 2, calls, "sizes after the failure must not be measured")
}

func TestExperiment_InvalidSizes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		sizes []int
	}{
		{name: "empty", sizes: nil},
		{name: "non-positive", sizes: []int{0, 10}},
		{name: "not ascending", sizes: []int{10, 10}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exp := &Experiment{Subject: subject.InProcess{}, Sizes: tc.sizes, DatasetDir: t.TempDir()}
			_, err := exp.Run(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestExperiment_InProcessSubject(t *testing.T) {
	t.Parallel()

	exp := &Experiment{Subject: subject.InProcess{}, Sizes: []int{100, 200}, Seed: DefaultSeed, DatasetDir: t.TempDir()}

	samples, err := exp.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, samples, 2)
	for _, s := range samples {
		assert.Greater(t, s.Elapsed, time.Duration(0))
	}
}
