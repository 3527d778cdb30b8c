package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_PrintsOrderAndImpact(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeDataset(t, "tiempo,peso\n10,1\n2,5\n")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	impact, err := run(out, errOut, []string{path})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "22", impact.String())
	require.Equal(t, "El orden las batallas es: [[2, 5], [10, 1]]\nCoeficiente de impacto: 22\n", out.String())
}

func TestRun_Verify(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, "tiempo,peso\n5,5\n5,5\n3,0\n")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	impact, err := run(out, errOut, []string{"-verify", "-log-level", "info", path})

	require.NoError(t, err)
	require.Equal(t, "75", impact.String())
	require.Contains(t, out.String(), "[[5, 5], [5, 5], [3, 0]]")
	require.Contains(t, errOut.String(), "locally optimal")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, "tiempo,peso\nabc,5\n")
	out := &bytes.Buffer{}

	impact, err := run(out, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	require.Nil(t, impact)
	require.Empty(t, out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}

	impact, err := run(&bytes.Buffer{}, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Nil(t, impact)
	require.Contains(t, errOut.String(), "Usage:")
}
