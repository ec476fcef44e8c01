package solid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgeom/figura/shape"
	"github.com/quantgeom/figura/solid"
)

// TestPyramid_Scenario pins base_edge=6, height=4: slant 5, base area
// 36, lateral area 60, volume 48.
func TestPyramid_Scenario(t *testing.T) {
	p := solid.NewPyramid()
	require.NoError(t, shape.Set(p, "base_edge", 6))
	require.NoError(t, shape.Set(p, "height", 4))

	slant, ok := p.Value("slant_height")
	require.True(t, ok)
	assert.InDelta(t, 5, slant, 1e-12)

	base, _ := p.Value("base_area")
	assert.InDelta(t, 36, base, 1e-12)
	lat, _ := p.Value("lateral_area")
	assert.InDelta(t, 60, lat, 1e-12)
	surf, _ := p.Value("surface_area")
	assert.InDelta(t, 96, surf, 1e-12)
	vol, _ := p.Value("volume")
	assert.InDelta(t, 48, vol, 1e-12)
	le, _ := p.Value("lateral_edge")
	assert.InDelta(t, math.Sqrt(34), le, 1e-12)
}

// TestPyramid_InverseEntry: each derived metric recovers the missing
// canonical dimension, and the whole metric set is rebuilt from it.
func TestPyramid_InverseEntry(t *testing.T) {
	p := solid.NewPyramid()
	require.NoError(t, shape.Set(p, "base_edge", 6))
	require.NoError(t, shape.Set(p, "volume", 48))
	h, _ := p.Value("height")
	assert.InDelta(t, 4, h, 1e-9)

	p = solid.NewPyramid()
	require.NoError(t, shape.Set(p, "height", 4))
	require.NoError(t, shape.Set(p, "slant_height", 5))
	a, _ := p.Value("base_edge")
	assert.InDelta(t, 6, a, 1e-9)

	p = solid.NewPyramid()
	require.NoError(t, shape.Set(p, "base_area", 36))
	require.NoError(t, shape.Set(p, "lateral_area", 60))
	h, _ = p.Value("height")
	assert.InDelta(t, 4, h, 1e-9)

	// Height-only lateral-area inversion solves the quartic in the edge.
	p = solid.NewPyramid()
	require.NoError(t, shape.Set(p, "height", 4))
	require.NoError(t, shape.Set(p, "lateral_area", 60))
	a, _ = p.Value("base_edge")
	assert.InDelta(t, 6, a, 1e-9)
}

// TestPyramid_InverseGates: out-of-domain and disagreeing inverse input
// is rejected with the prior state intact.
func TestPyramid_InverseGates(t *testing.T) {
	p := solid.NewPyramid()
	require.ErrorIs(t, shape.Set(p, "volume", 48), shape.ErrUnsetParameter)

	require.NoError(t, shape.Set(p, "base_edge", 6))
	require.ErrorIs(t, shape.Set(p, "slant_height", 2), shape.ErrInfeasible, "slant at or below apothem")
	require.ErrorIs(t, shape.Set(p, "surface_area", 30), shape.ErrInfeasible, "surface below base area")

	require.NoError(t, shape.Set(p, "height", 4))
	require.ErrorIs(t, shape.Set(p, "volume", 50), shape.ErrInfeasible, "disagrees with solved dims")
	vol, _ := p.Value("volume")
	assert.InDelta(t, 48, vol, 1e-12, "prior state intact")
	require.NoError(t, shape.Set(p, "volume", 48), "consistent restatement accepted")
}

// TestFrustum_Metrics: base 6, top 2, height 3 gives slant √13 and
// volume 52 by the h/3·(A₁+A₂+√(A₁A₂)) form.
func TestFrustum_Metrics(t *testing.T) {
	f := solid.NewFrustum()
	require.NoError(t, shape.Set(f, "base_edge", 6))
	require.NoError(t, shape.Set(f, "top_edge", 2))
	require.NoError(t, shape.Set(f, "height", 3))

	slant, _ := f.Value("slant_height")
	assert.InDelta(t, math.Sqrt(13), slant, 1e-12)
	vol, _ := f.Value("volume")
	assert.InDelta(t, 52, vol, 1e-12)
	lat, _ := f.Value("lateral_area")
	assert.InDelta(t, 16*math.Sqrt(13), lat, 1e-12)
	surf, _ := f.Value("surface_area")
	assert.InDelta(t, 40+16*math.Sqrt(13), surf, 1e-12)
}

// TestFrustum_InverseAndGates: volume inverts to the height; a top edge
// at or above the base edge cannot stand.
func TestFrustum_InverseAndGates(t *testing.T) {
	f := solid.NewFrustum()
	require.NoError(t, shape.Set(f, "base_edge", 6))
	require.NoError(t, shape.Set(f, "top_edge", 2))
	require.NoError(t, shape.Set(f, "volume", 52))
	h, _ := f.Value("height")
	assert.InDelta(t, 3, h, 1e-9)

	require.ErrorIs(t, shape.Set(f, "top_edge", 7), shape.ErrInfeasible)
	top, _ := f.Value("top_edge")
	assert.InDelta(t, 2, top, 1e-12)

	f2 := solid.NewFrustum()
	require.ErrorIs(t, shape.Set(f2, "volume", 10), shape.ErrUnsetParameter)
}

// TestPrism_HexagonalMetrics: n=6, edge 2, height 5.
func TestPrism_HexagonalMetrics(t *testing.T) {
	p, err := solid.NewPrism(6)
	require.NoError(t, err)
	require.NoError(t, shape.Set(p, "base_edge", 2))
	require.NoError(t, shape.Set(p, "height", 5))

	base, _ := p.Value("base_area")
	assert.InDelta(t, 6*math.Sqrt(3), base, 1e-9)
	lat, _ := p.Value("lateral_area")
	assert.InDelta(t, 60, lat, 1e-9)
	vol, _ := p.Value("volume")
	assert.InDelta(t, 30*math.Sqrt(3), vol, 1e-9)

	// Inverse: lateral area recovers the height from the edge.
	p2, _ := solid.NewPrism(6)
	require.NoError(t, shape.Set(p2, "base_edge", 2))
	require.NoError(t, shape.Set(p2, "lateral_area", 60))
	h, _ := p2.Value("height")
	assert.InDelta(t, 5, h, 1e-9)

	_, err = solid.NewPrism(2)
	require.Error(t, err)
}

// TestAntiprism_SingleDOF: the square antiprism is fully determined by
// its edge; every derived metric round-trips back to it.
func TestAntiprism_SingleDOF(t *testing.T) {
	a, err := solid.NewAntiprism(4)
	require.NoError(t, err)
	require.NoError(t, shape.Set(a, "edge", 2))

	h, ok := a.Value("height")
	require.True(t, ok)
	sec := 1 / math.Cos(math.Pi/8)
	assert.InDelta(t, 2*math.Sqrt(1-sec*sec/4), h, 1e-12)

	lat, _ := a.Value("lateral_area")
	assert.InDelta(t, 8*math.Sqrt(3), lat, 1e-9, "2n unit triangles at edge 2")

	for _, key := range []string{"height", "base_area", "lateral_area", "surface_area", "volume"} {
		v, ok := a.Value(key)
		require.True(t, ok, key)
		fresh, _ := solid.NewAntiprism(4)
		require.NoError(t, shape.Set(fresh, key, v), key)
		edge, _ := fresh.Value("edge")
		assert.InDelta(t, 2, edge, 1e-9, key)
	}
}

// TestUniform_CatalogMetrics: cube coefficients are exact; the
// icosahedron inverse recovers the edge from the volume.
func TestUniform_CatalogMetrics(t *testing.T) {
	cube, err := solid.NewUniform("cube")
	require.NoError(t, err)
	require.NoError(t, shape.Set(cube, "edge", 2))

	area, _ := cube.Value("surface_area")
	assert.InDelta(t, 24, area, 1e-12)
	vol, _ := cube.Value("volume")
	assert.InDelta(t, 8, vol, 1e-12)
	cr, _ := cube.Value("circumradius")
	assert.InDelta(t, math.Sqrt(3), cr, 1e-12)

	v, e, f := cube.Counts()
	assert.Equal(t, 8, v)
	assert.Equal(t, 12, e)
	assert.Equal(t, 6, f)

	ico, err := solid.NewUniform("icosahedron")
	require.NoError(t, err)
	want := 5 * (3 + math.Sqrt(5)) / 12 * 27
	require.NoError(t, shape.Set(ico, "volume", want))
	edge, _ := ico.Value("edge")
	assert.InDelta(t, 3, edge, 1e-9)

	_, err = solid.NewUniform("hexaflexagon")
	require.Error(t, err)
}

// TestUniform_EulerCharacteristic: every catalog row satisfies
// V − E + F = 2.
func TestUniform_EulerCharacteristic(t *testing.T) {
	for _, name := range solid.UniformNames() {
		u, err := solid.NewUniform(name)
		require.NoError(t, err)
		v, e, f := u.Counts()
		assert.Equal(t, 2, v-e+f, name)
	}
}

// TestTesseract_Metrics: edge 3 fixes every 4-cube metric.
func TestTesseract_Metrics(t *testing.T) {
	ts := solid.NewTesseract()
	require.NoError(t, shape.Set(ts, "edge", 3))

	fa, _ := ts.Value("face_area")
	assert.InDelta(t, 216, fa, 1e-12)
	sv, _ := ts.Value("surface_volume")
	assert.InDelta(t, 216, sv, 1e-12)
	hv, _ := ts.Value("hyper_volume")
	assert.InDelta(t, 81, hv, 1e-12)
	hd, _ := ts.Value("hyper_diagonal")
	assert.InDelta(t, 6, hd, 1e-12)

	// Inverse round-trip through the hypervolume.
	ts2 := solid.NewTesseract()
	require.NoError(t, shape.Set(ts2, "hyper_volume", 81))
	edge, _ := ts2.Value("edge")
	assert.InDelta(t, 3, edge, 1e-9)
}

// TestSolid_RejectNonPositive: every calculator refuses non-positive
// input with no mutation.
func TestSolid_RejectNonPositive(t *testing.T) {
	prism, _ := solid.NewPrism(5)
	anti, _ := solid.NewAntiprism(5)
	uni, _ := solid.NewUniform("octahedron")
	shapes := []struct {
		s   shape.Shape
		key string
	}{
		{solid.NewPyramid(), "base_edge"},
		{solid.NewFrustum(), "height"},
		{prism, "base_edge"},
		{anti, "edge"},
		{uni, "edge"},
		{solid.NewTesseract(), "edge"},
	}
	for _, entry := range shapes {
		for _, bad := range []float64{0, -2, math.Inf(1), math.NaN()} {
			assert.ErrorIs(t, entry.s.Resolve(entry.key, bad), shape.ErrNonPositive, "%s %v", entry.s.Kind(), bad)
			_, ok := entry.s.Value(entry.key)
			assert.False(t, ok)
		}
	}
}

// TestSolid_SnapshotRoundTrip: a solved frustum survives a snapshot
// restore; derived entries in the snapshot are recomputed, not trusted.
func TestSolid_SnapshotRoundTrip(t *testing.T) {
	f := solid.NewFrustum()
	require.NoError(t, shape.Set(f, "base_edge", 6))
	require.NoError(t, shape.Set(f, "top_edge", 2))
	require.NoError(t, shape.Set(f, "height", 3))

	fresh := solid.NewFrustum()
	require.NoError(t, fresh.Restore(shape.Snapshot(f)))
	assert.Equal(t, shape.Snapshot(f), shape.Snapshot(fresh))

	require.ErrorIs(t, fresh.Restore(map[string]float64{"girth": 1}), shape.ErrBadSnapshot)
}

// TestMetricsConstructors_ProgrammerErrors: low-level builders raise on
// non-positive dimensions bypassing the calculators.
func TestMetricsConstructors_ProgrammerErrors(t *testing.T) {
	_, err := solid.NewPyramidMetrics(0, 4)
	require.ErrorIs(t, err, solid.ErrDimension)
	_, err = solid.NewFrustumMetrics(2, -1, 3)
	require.ErrorIs(t, err, solid.ErrDimension)
	_, err = solid.NewFrustumMetrics(2, 3, 1)
	require.Error(t, err, "top edge at or above base edge")
	_, err = solid.NewAntiprismMetrics(4, -1)
	require.ErrorIs(t, err, solid.ErrDimension)
	_, err = solid.NewUniformMetrics("cube", 0)
	require.ErrorIs(t, err, solid.ErrDimension)
}
