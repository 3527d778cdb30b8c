package subject

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subject.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0700))
	return path
}

func TestProcess_MeasuresElapsedTime(t *testing.T) {
	sh := requireShell(t)
	script := writeScript(t, "sleep 0.1\necho \"$1\"\n")
	p := &Process{Path: script, Launcher: []string{sh}}

	elapsed, err := p.Measure(context.Background(), "dataset.csv")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Equal(t, "subject.sh", p.Name())
}

func TestProcess_NonZeroExitIsNotAnError(t *testing.T) {
	sh := requireShell(t)
	script := writeScript(t, "exit 3\n")
	p := &Process{Path: script, Launcher: []string{sh}}

	elapsed, err := p.Measure(context.Background(), "dataset.csv")

	require.NoError(t, err)
	assert.Greater(t, elapsed, time.Duration(0))
}

func TestProcess_LaunchFailure(t *testing.T) {
	p := &Process{Path: filepath.Join(t.TempDir(), "does-not-exist")}

	_, err := p.Measure(context.Background(), "dataset.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to launch")
}

func TestProcess_Cancellation(t *testing.T) {
	sh := requireShell(t)
	script := writeScript(t, "sleep 5\n")
	p := &Process{Path: script, Launcher: []string{sh}}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Measure(ctx, "dataset.csv")

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestInProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte("tiempo,peso\n10,1\n2,5\n"), 0600))

	elapsed, err := InProcess{}.Measure(context.Background(), path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))

	_, err = InProcess{}.Measure(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestFunc(t *testing.T) {
	var got string
	f := Func(func(_ context.Context, path string) (time.Duration, error) {
		got = path
		return time.Second, nil
	})

	elapsed, err := f.Measure(context.Background(), "x.csv")

	require.NoError(t, err)
	assert.Equal(t, time.Second, elapsed)
	assert.Equal(t, "x.csv", got)
}

func TestProcess_RelativePath(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tp1"), []byte("#!/bin/sh\nexit 0\n"), 0700))
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	p := &Process{Path: "tp1"}

	_, err := p.Measure(context.Background(), "dataset.csv")

	require.NoError(t, err)
	assert.Equal(t, "tp1", p.Name())
}
