package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/specialistvlad/battlesched/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("datatest", "dataset_1000.csv"), Path("datatest", 1000))
}

func TestGenerate_Format(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, 50, 42))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 51)
	assert.Equal(t, "tiempo,peso", lines[0])

	records, err := scheduler.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, records, 50)
	for _, r := range records {
		assert.GreaterOrEqual(t, r.Duration, int64(MinValue))
		assert.LessOrEqual(t, r.Duration, int64(MaxValue))
		assert.GreaterOrEqual(t, r.Weight, int64(MinValue))
		assert.LessOrEqual(t, r.Weight, int64(MaxValue))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	var a, b, c bytes.Buffer
	require.NoError(t, Generate(&a, 200, 42))
	require.NoError(t, Generate(&b, 200, 42))
	require.NoError(t, Generate(&c, 200, 43))

	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.NotEqual(t, a.Bytes(), c.Bytes())
}

func TestGenerate_SeedIsOffsetBySize(t *testing.T) {
	// seed+n is the effective seed, so (42, 100) and (41, 101) share a stream.
	var a, b bytes.Buffer
	require.NoError(t, Generate(&a, 100, 42))
	require.NoError(t, Generate(&b, 101, 41))

	linesA := strings.Split(a.String(), "\n")
	linesB := strings.Split(b.String(), "\n")
	assert.Equal(t, linesA[1:101], linesB[1:101])
}

func TestEnsure_CreatesThenCaches(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "datatest")
	path := Path(dir, 100)

	created, err := Ensure(ctx, path, 100, 42)
	require.NoError(t, err)
	assert.True(t, created)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	created, err = Ensure(ctx, path, 100, 42)
	require.NoError(t, err)
	assert.False(t, created)
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may be left behind")
}

func TestEnsure_RegenerationIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	pathA := Path(t.TempDir(), 300)
	pathB := Path(t.TempDir(), 300)

	_, err := Ensure(ctx, pathA, 300, 42)
	require.NoError(t, err)
	_, err = Ensure(ctx, pathB, 300, 42)
	require.NoError(t, err)

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEnsure_LeavesExistingFileUntouched(t *testing.T) {
	path := Path(t.TempDir(), 10)
	require.NoError(t, os.WriteFile(path, []byte("tiempo,peso\n1,1\n"), 0600))

	created, err := Ensure(context.Background(), path, 10, 42)

	require.NoError(t, err)
	assert.False(t, created)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tiempo,peso\n1,1\n", string(content))
}

func TestEnsure_DatasetIsWorldReadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permissions only")
	}
	path := filepath.Join(t.TempDir(), "dataset_10.csv")

	_, err := Ensure(context.Background(), path, 10, 42)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
