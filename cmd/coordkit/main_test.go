// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/coordkit/transform"
	"github.com/katalvlaran/coordkit/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestConvert(t *testing.T) {
	out, _, err := run(t, "convert", "960", "540")
	require.NoError(t, err)
	assert.Equal(t, "0.500000 0.500000\n", out)

	out, _, err = run(t, "convert", "1920", "1080", "--precision", "3")
	require.NoError(t, err)
	assert.Equal(t, "1.000 1.000\n", out)

	out, _, err = run(t, "convert", "0.25", "0.75", "--from", "screen", "--to", "normalized", "--inverse", "--precision", "2")
	require.NoError(t, err)
	assert.Equal(t, "480.00 810.00\n", out)

	out, _, err = run(t, "convert", "1000", "550", "--to", "logical", "--precision", "3")
	require.NoError(t, err)
	assert.Equal(t, "533.333 300.000\n", out)
}

func TestConvert_Errors(t *testing.T) {
	_, _, err := run(t, "convert", "1", "2", "--from", "page")
	require.ErrorIs(t, err, viewport.ErrUnknownSpace)

	_, _, err = run(t, "convert", "x", "2")
	require.Error(t, err)

	_, _, err = run(t, "convert", "1")
	require.Error(t, err)
}

func TestConvert_DisplayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.toml")
	require.NoError(t, os.WriteFile(path, []byte("window_x = 0\nwindow_y = 0\ndpi_scale = 1.0\n"), 0o600))

	out, stderr, err := run(t, "--display", path, "-v", "1", "convert", "800", "450", "--to", "logical", "--precision", "1")
	require.NoError(t, err)
	assert.Equal(t, "800.0 450.0\n", out)
	assert.Contains(t, stderr, "display loaded")

	_, _, err = run(t, "--display", filepath.Join(t.TempDir(), "missing.toml"), "convert", "1", "1")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCalibrate_RecoversBias(t *testing.T) {
	out, _, err := run(t, "calibrate", "--kind", "affine", "--jitter", "0", "--bias-x", "3", "--bias-y", "-2", "--test", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var d transform.Descriptor
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &d))
	assert.Equal(t, transform.KindAffine, d.Kind)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 1, -3, 2}, d.Params, 1e-9)

	assert.Contains(t, lines[1], "calibration (5 samples)")
	assert.Contains(t, lines[1], "improvement 100.0%")
	assert.Contains(t, lines[2], "test (4 points)")
}

func TestCalibrate_AllKinds(t *testing.T) {
	for _, k := range transform.Kinds() {
		out, _, err := run(t, "calibrate", "--kind", k.String(), "--seed", "7")
		require.NoError(t, err, k.String())
		assert.Contains(t, out, `"kind":"`+k.String()+`"`)
	}

	_, _, err := run(t, "calibrate", "--kind", "shear")
	require.ErrorIs(t, err, transform.ErrUnknownKind)

	_, _, err = run(t, "calibrate", "--jitter", "-1")
	require.Error(t, err)
}

func TestCalibrate_VerboseLogs(t *testing.T) {
	_, stderr, err := run(t, "-v", "1", "calibrate")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg"="fit done"`)

	_, stderr, err = run(t, "calibrate")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestBatch(t *testing.T) {
	out, _, err := run(t, "batch", "--seed", "3", "--limit", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(transform.Kinds()))
	for i, k := range transform.Kinds() {
		assert.True(t, strings.HasPrefix(lines[i], k.String()), lines[i])
	}
}

func TestBatch_VerboseLogsFromWorkers(t *testing.T) {
	out, stderr, err := run(t, "-v", "1", "batch", "--limit", "4")
	require.NoError(t, err)

	n := len(transform.Kinds())
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), n)
	assert.Equal(t, n, strings.Count(stderr, `"msg"="batch job done"`))
	assert.Equal(t, n, strings.Count(stderr, `"msg"="fit done"`))
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		assert.True(t, strings.HasPrefix(line, "coordkit "), line)
	}
}
