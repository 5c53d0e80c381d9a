package main

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/radial-fractal/internal/config"
	"os"
	"path/filepath"
	"testing"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := mainCmd()
	cmd.SetArgs(args)
	cmd.SetOut(new(nopWriter))
	cmd.SetErr(new(nopWriter))
	return cmd.ExecuteContext(context.Background())
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }

var small = []string{
	"--seed", "5",
	"--depth", "2",
	"--width", "64",
	"--height", "48",
	"--radius-margin", "4",
	"--bounds-margin", "2",
	"--log-level", "error",
}

func TestFrame(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "frame.png")
	metricsFile := filepath.Join(dir, "fractal.prom")

	args := append([]string{"frame", "--out", out, "--frame", "3", "--metrics-file", metricsFile}, small...)
	require.NoError(t, run(t, args...))

	assert.FileExists(t, out)
	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fractal_frames_total 1")
}

func TestSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.svg")

	args := append([]string{"svg", "--out", out, "--both"}, small...)
	require.NoError(t, run(t, args...))
	assert.FileExists(t, out)
}

func TestFrames(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fractal.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("frame:\n  frames_per_cycle: 2\n"), 0o644))

	out := filepath.Join(dir, "frames")
	args := append([]string{"frames", "--config", cfgPath, "--out", out}, small...)
	require.NoError(t, run(t, args...))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fractal.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("tree:\n  min_children: 4\n  max_children: 3\n"), 0o644))
	out := filepath.Join(dir, "frame.png")

	// The file alone is invalid.
	args := append([]string{"frame", "--config", cfgPath, "--out", out}, small...)
	assert.ErrorIs(t, run(t, args...), config.ErrInvalid)
	assert.NoFileExists(t, out)

	// Flags fix it before anything is validated.
	args = append(args, "--min-children", "2", "--max-children", "3", "--region", "rectangle")
	require.NoError(t, run(t, args...))
	assert.FileExists(t, out)
}

func TestInvalidFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	err := run(t, "frame", "--out", out, "--min-children", "4", "--max-children", "2")
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.NoFileExists(t, out)

	assert.Error(t, run(t, "frame", "--out", out, "--log-level", "loud"))

	err = run(t, "frame", "--out", out, "--width", "64", "--height", "48")
	assert.ErrorIs(t, err, config.ErrInvalid, "default margins leave no room")

	err = run(t, "frame", "--out", out, "--region", "triangle")
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.NoFileExists(t, out)
}
