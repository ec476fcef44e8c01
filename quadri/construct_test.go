package quadri_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/quadri"
	"github.com/quantgeom/figura/shape"
)

// TestKite_Construction: a kite with sides 2/3 and apex 60° builds a
// simple convex-ordered vertex chain with perimeter 10.
func TestKite_Construction(t *testing.T) {
	k := quadri.NewKite()
	require.NoError(t, shape.Set(k, "side_a", 2))
	require.NoError(t, shape.Set(k, "side_b", 3))
	require.NoError(t, shape.Set(k, "angle", 60))

	per, ok := k.Value("perimeter")
	require.True(t, ok)
	assert.InDelta(t, 10, per, 1e-12)

	area, ok := k.Value("area")
	require.True(t, ok)
	assert.Greater(t, area, 0.0)

	verts, built := k.Vertices()
	require.True(t, built)
	assert.True(t, geom.IsSimple(verts[:]))

	// Equal-pair check: apex-adjacent sides measure side_a, the far
	// pair side_b.
	assert.InDelta(t, 2, geom.Dist(verts[0], verts[1]), 1e-9)
	assert.InDelta(t, 2, geom.Dist(verts[0], verts[3]), 1e-9)
	assert.InDelta(t, 3, geom.Dist(verts[1], verts[2]), 1e-9)
	assert.InDelta(t, 3, geom.Dist(verts[2], verts[3]), 1e-9)
}

// TestKiteDart_AngleRanges: each variant rejects angles outside its
// convexity-specific open range with no mutation.
func TestKiteDart_AngleRanges(t *testing.T) {
	k := quadri.NewKite()
	for _, bad := range []float64{180, 200, 359} {
		require.ErrorIs(t, k.Resolve("angle", bad), shape.ErrInfeasible, "kite %v", bad)
	}
	require.NoError(t, k.Resolve("angle", 90))

	d := quadri.NewDart()
	for _, bad := range []float64{45, 180, 360, 400} {
		require.ErrorIs(t, d.Resolve("angle", bad), shape.ErrInfeasible, "dart %v", bad)
	}
	require.NoError(t, d.Resolve("angle", 270))
}

// TestKiteDart_BranchSimplicitySweep cross-checks the branch-selection
// heuristic (higher candidate for the kite, axis-nearest for the dart)
// against an independent segment-crossing test across the full angle
// range of each variant.
func TestKiteDart_BranchSimplicitySweep(t *testing.T) {
	for deg := 5.0; deg < 180; deg += 5 {
		k := quadri.NewKite()
		require.NoError(t, shape.Set(k, "side_a", 2))
		require.NoError(t, shape.Set(k, "side_b", 3))
		if err := shape.Set(k, "angle", deg); err != nil {
			require.ErrorIs(t, err, shape.ErrInfeasible, "kite angle=%v", deg)
			continue
		}
		verts, built := k.Vertices()
		require.True(t, built)
		assert.True(t, geom.IsSimple(verts[:]), "kite angle=%v", deg)
	}

	for deg := 185.0; deg < 360; deg += 5 {
		d := quadri.NewDart()
		require.NoError(t, shape.Set(d, "side_a", 2))
		require.NoError(t, shape.Set(d, "side_b", 3))
		if err := shape.Set(d, "angle", deg); err != nil {
			require.ErrorIs(t, err, shape.ErrInfeasible, "dart angle=%v", deg)
			continue
		}
		verts, built := d.Vertices()
		require.True(t, built)
		assert.True(t, geom.IsSimple(verts[:]), "dart angle=%v", deg)
	}
}

// TestKite_UnreachableConstruction: a far side too short to reach
// across the apex opening is infeasible and leaves the basis intact.
func TestKite_UnreachableConstruction(t *testing.T) {
	k := quadri.NewKite()
	require.NoError(t, shape.Set(k, "side_a", 10))
	require.NoError(t, shape.Set(k, "angle", 170))
	// Chord between the equal-pair ends is 2·10·sin(85°) ≈ 19.9; a far
	// side of 1 cannot span half of it.
	err := shape.Set(k, "side_b", 1)
	require.ErrorIs(t, err, shape.ErrInfeasible)
	require.ErrorIs(t, err, geom.ErrNoIntersection)

	_, ok := k.Value("side_b")
	assert.False(t, ok)
	_, built := k.Vertices()
	assert.False(t, built)
}

// TestCyclic_Scenario pins sides 3,4,5,6: semiperimeter 9 and
// Brahmagupta area √(6·5·4·3) ≈ 18.974.
func TestCyclic_Scenario(t *testing.T) {
	c := quadri.NewCyclic()
	require.NoError(t, shape.Set(c, "side_a", 3))
	require.NoError(t, shape.Set(c, "side_b", 4))
	require.NoError(t, shape.Set(c, "side_c", 5))
	require.NoError(t, shape.Set(c, "side_d", 6))

	semi, ok := c.Value("semiperimeter")
	require.True(t, ok)
	assert.InDelta(t, 9, semi, 1e-12)

	area, _ := c.Value("area")
	assert.InDelta(t, math.Sqrt(360), area, 1e-9)

	// The vertex walk closes: the last chord measures side_d.
	verts, built := c.Vertices()
	require.True(t, built)
	for i, want := range []float64{3, 4, 5} {
		assert.InDelta(t, want, geom.Dist(verts[i], verts[i+1]), 1e-9)
	}
	assert.InDelta(t, 6, geom.Dist(verts[3], verts[0]), 1e-9)

	radius, _ := c.Value("circumradius")
	for _, v := range verts {
		assert.InDelta(t, radius, math.Hypot(v.X, v.Y), 1e-9, "vertices on circumcircle")
	}
}

// TestCyclic_RadicandGate: one side at or beyond the sum of the others
// admits no convex cyclic quadrilateral.
func TestCyclic_RadicandGate(t *testing.T) {
	c := quadri.NewCyclic()
	require.NoError(t, shape.Set(c, "side_a", 1))
	require.NoError(t, shape.Set(c, "side_b", 1))
	require.NoError(t, shape.Set(c, "side_c", 1))
	require.ErrorIs(t, shape.Set(c, "side_d", 10), shape.ErrInfeasible)
	_, ok := c.Value("side_d")
	assert.False(t, ok)
}

// TestTangential_PitotGateAndArea: sides must satisfy a+c ≈ b+d; the
// area unlocks with the inradius as r·s.
func TestTangential_PitotGateAndArea(t *testing.T) {
	tq := quadri.NewTangential()
	require.NoError(t, shape.Set(tq, "side_a", 3))
	require.NoError(t, shape.Set(tq, "side_b", 4))
	require.NoError(t, shape.Set(tq, "side_c", 5))
	require.ErrorIs(t, shape.Set(tq, "side_d", 6), shape.ErrInfeasible, "3+5 ≠ 4+6")

	require.NoError(t, shape.Set(tq, "side_d", 4))
	semi, _ := tq.Value("semiperimeter")
	assert.InDelta(t, 8, semi, 1e-12)

	_, ok := tq.Value("area")
	assert.False(t, ok, "area waits for the inradius")
	require.NoError(t, shape.Set(tq, "inradius", 1.5))
	area, _ := tq.Value("area")
	assert.InDelta(t, 12, area, 1e-9)
}

// TestBicentric_BothGates: a square's side multiset passes both gates;
// the inradius then follows from area = r·s.
func TestBicentric_BothGates(t *testing.T) {
	b := quadri.NewBicentric()
	for _, key := range []string{"side_a", "side_b", "side_c", "side_d"} {
		require.NoError(t, shape.Set(b, key, 2))
	}
	area, _ := b.Value("area")
	assert.InDelta(t, 4, area, 1e-9)
	inr, _ := b.Value("inradius")
	assert.InDelta(t, 1, inr, 1e-9)
	cr, _ := b.Value("circumradius")
	assert.InDelta(t, math.Sqrt2, cr, 1e-9)

	// Pitot violation is a hard rejection even when the cyclic gate
	// would pass.
	b2 := quadri.NewBicentric()
	require.NoError(t, shape.Set(b2, "side_a", 3))
	require.NoError(t, shape.Set(b2, "side_b", 4))
	require.NoError(t, shape.Set(b2, "side_c", 5))
	require.ErrorIs(t, shape.Set(b2, "side_d", 6), shape.ErrInfeasible)
}

// TestByDiagonals_Area: area = ½·p·q·sin θ, with the angle confined to
// (0°, 180°).
func TestByDiagonals_Area(t *testing.T) {
	b := quadri.NewByDiagonals()
	require.NoError(t, shape.Set(b, "diagonal_p", 6))
	require.NoError(t, shape.Set(b, "diagonal_q", 8))
	require.NoError(t, shape.Set(b, "angle", 90))

	area, ok := b.Value("area")
	require.True(t, ok)
	assert.InDelta(t, 24, area, 1e-9)

	require.ErrorIs(t, b.Resolve("angle", 180), shape.ErrInfeasible)
}
