// Package dataset generates the synthetic battle datasets used by the
// benchmark harness and caches them on disk.
//
// A dataset is fully determined by its size and seed: generation uses a
// generator owned by the call and seeded with seed+n, so the same pair always
// yields the same bytes.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/specialistvlad/battlesched/internal/ctxlog"
	"github.com/specialistvlad/battlesched/internal/fsutil"
)

// Header is the first line of every dataset file.
var Header = []string{"tiempo", "peso"}

const (
	// MinValue and MaxValue bound both fields of a generated record.
	MinValue = 1
	MaxValue = 1000
)

// Path returns the cache file name for a dataset of n records inside dir.
func Path(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("dataset_%d.csv", n))
}

// NewRand returns a generator private to the caller.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generate writes the header and n records seeded by seed+n to w.
func Generate(w io.Writer, n int, seed int64) error {
	rng := NewRand(seed + int64(n))
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return err
	}
	row := make([]string, 2)
	for i := 0; i < n; i++ {
		row[0] = strconv.Itoa(rng.Intn(MaxValue-MinValue+1) + MinValue)
		row[1] = strconv.Itoa(rng.Intn(MaxValue-MinValue+1) + MinValue)
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Ensure makes sure a dataset of n records exists at path. An existing file
// is left untouched and created is false. Otherwise the dataset is generated
// into a temporary file next to path and renamed into place, so an
// interrupted run never leaves a truncated cache entry behind.
func Ensure(ctx context.Context, path string, n int, seed int64) (created bool, err error) {
	logger := ctxlog.FromContext(ctx)

	exists, err := fsutil.Exists(path)
	if err != nil {
		return false, err
	}
	if exists {
		logger.Debug("Dataset already cached.", "path", path, "size", n)
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := fsutil.EnsureDir(dir); err != nil {
		return false, err
	}

	tmp, err := os.CreateTemp(dir, ".dataset-*.tmp")
	if err != nil {
		return false, fmt.Errorf("failed to create temporary dataset file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Generate(tmp, n, seed); err != nil {
		return false, fmt.Errorf("failed to generate dataset of %d records: %w", n, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return false, fmt.Errorf("failed to set dataset permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return false, err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return false, fmt.Errorf("failed to move dataset into place: %w", err)
	}

	logger.Debug("Dataset generated.", "path", path, "size", n, "seed", seed)
	return true, nil
}
