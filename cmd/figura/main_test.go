package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgeom/figura/shape"
)

// execute runs the CLI against args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return buf.String(), err
}

// TestSolve_Parallelogram: the table carries the derived diagonals.
func TestSolve_Parallelogram(t *testing.T) {
	out, err := execute(t, "solve", "--shape", "parallelogram",
		"--set", "base=5", "--set", "side=3", "--set", "angle=60")
	require.NoError(t, err)
	assert.Contains(t, out, "parallelogram")
	assert.Contains(t, out, "7.0000 u")
	assert.Contains(t, out, "4.3589 u")
}

// TestSolve_RejectsInfeasible: resolver failures surface as command
// errors with the family context intact.
func TestSolve_RejectsInfeasible(t *testing.T) {
	_, err := execute(t, "solve", "--shape", "parallelogram",
		"--set", "side=3", "--set", "height=5")
	require.Error(t, err)
	assert.ErrorIs(t, err, shape.ErrInfeasible)
}

// TestSolve_SnapshotRoundTrip: --out persists the state and --in
// restores it for a later inverse entry.
func TestSolve_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyramid.json")

	_, err := execute(t, "solve", "--shape", "pyramid",
		"--set", "base_edge=6", "--set", "height=4", "--out", path)
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	out, err := execute(t, "solve", "--shape", "pyramid",
		"--in", path, "--set", "volume=48")
	require.NoError(t, err)
	assert.Contains(t, out, "48.0000 u³")
}

// TestDetect_RightTriangle: the 3-4-5 scenario classifies and prints
// the resolved family.
func TestDetect_RightTriangle(t *testing.T) {
	out, err := execute(t, "detect", "--points", "0,0;3,0;0,4")
	require.NoError(t, err)
	assert.Contains(t, out, "detected: right_triangle")
	assert.Contains(t, out, "5.0000 u")
}

// TestMesh_Uniform: a solved uniform solid prints its wireframe JSON.
func TestMesh_Uniform(t *testing.T) {
	out, err := execute(t, "mesh", "--solid", "icosahedron", "--edge", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "\"Vertices\"")
	assert.Contains(t, out, "\"Faces\"")
}

// TestMesh_ParameterizedSolid: --sides and --set reach the prism path.
func TestMesh_ParameterizedSolid(t *testing.T) {
	out, err := execute(t, "mesh", "--solid", "prism", "--sides", "6",
		"--edge", "2", "--set", "height=5")
	require.NoError(t, err)
	assert.Contains(t, out, "\"Edges\"")
}

// TestDraw_Kite: the draw command emits the projection JSON.
func TestDraw_Kite(t *testing.T) {
	out, err := execute(t, "draw", "--shape", "kite",
		"--set", "side_a=2", "--set", "side_b=3", "--set", "angle=60")
	require.NoError(t, err)
	assert.Contains(t, out, "\"Points\"")
	assert.Contains(t, out, "\"Labels\"")
}

// TestNewShape_Unknown lists the uniform catalog in the error.
func TestNewShape_Unknown(t *testing.T) {
	_, err := newShape("klein_bottle", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cube")
}

// TestParsePoints rejects malformed pairs.
func TestParsePoints(t *testing.T) {
	pts, err := parsePoints("0,0; 1,0 ;1,1")
	require.NoError(t, err)
	assert.Len(t, pts, 3)

	_, err = parsePoints("0,0;oops")
	assert.Error(t, err)
}
