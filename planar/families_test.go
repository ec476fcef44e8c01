package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgeom/figura/planar"
	"github.com/quantgeom/figura/shape"
)

// newFamilies builds one fresh instance of every single-DOF family with
// a usable first entry for the generic property checks.
func newFamilies(t *testing.T) []struct {
	name  string
	s     shape.Shape
	seed  string
	value float64
} {
	t.Helper()
	hex, err := planar.NewRegularPolygon(6)
	require.NoError(t, err)
	rose, err := planar.NewRose(3)
	require.NoError(t, err)

	return []struct {
		name  string
		s     shape.Shape
		seed  string
		value float64
	}{
		{"circle", planar.NewCircle(), "radius", 5},
		{"square", planar.NewSquare(), "side", 4},
		{"hexagon", hex, "side", 2},
		{"vesica", planar.NewVesica(), "radius", 3},
		{"rose", rose, "amplitude", 2},
		{"crescent", planar.NewCrescent(), "radius", 4},
		{"seed_of_life", planar.NewSeedOfLife(), "circle_radius", 2},
		{"flower_of_life", planar.NewFlowerOfLife(), "circle_radius", 2},
	}
}

// TestFamilies_RejectNonPositive: v ≤ 0 must fail for every resolver and
// leave state unchanged (the universal rejection property).
func TestFamilies_RejectNonPositive(t *testing.T) {
	for _, f := range newFamilies(t) {
		f.s.Clear()
		for _, bad := range []float64{0, -1} {
			err := f.s.Resolve(f.seed, bad)
			assert.ErrorIs(t, err, shape.ErrNonPositive, "%s %v", f.name, bad)
		}
		_, ok := f.s.Value(f.seed)
		assert.False(t, ok, "%s: rejected input must not populate", f.name)
	}
}

// TestFamilies_Idempotence: resolving the same key/value twice yields an
// identical snapshot.
func TestFamilies_Idempotence(t *testing.T) {
	for _, f := range newFamilies(t) {
		require.NoError(t, f.s.Resolve(f.seed, f.value), f.name)
		first := shape.Snapshot(f.s)
		require.NoError(t, f.s.Resolve(f.seed, f.value), f.name)
		assert.Equal(t, first, shape.Snapshot(f.s), f.name)
	}
}

// TestFamilies_RoundTrip: set A, read derived B, clear, set B to the
// derived value — A must be recovered within 1e-9 relative tolerance.
func TestFamilies_RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		fresh  func() shape.Shape
		a      string
		b      string
		valueA float64
	}{
		{"circle radius↔area", func() shape.Shape { return planar.NewCircle() }, "radius", "area", 5},
		{"square side↔diagonal", func() shape.Shape { return planar.NewSquare() }, "side", "diagonal", 4},
		{"vesica radius↔area", func() shape.Shape { return planar.NewVesica() }, "radius", "area", 3},
		{"crescent radius↔area", func() shape.Shape { return planar.NewCrescent() }, "radius", "area", 4},
	}
	for _, tc := range cases {
		s := tc.fresh()
		require.NoError(t, shape.Set(s, tc.a, tc.valueA), tc.name)
		bVal, ok := s.Value(tc.b)
		require.True(t, ok, tc.name)

		s = tc.fresh()
		require.NoError(t, shape.Set(s, tc.b, bVal), tc.name)
		got, ok := s.Value(tc.a)
		require.True(t, ok, tc.name)
		assert.InEpsilon(t, tc.valueA, got, 1e-9, tc.name)
	}
}

// TestFamilies_ClearResetsValues: clear_all unsets values but keeps the
// catalog and structural constants.
func TestFamilies_ClearResetsValues(t *testing.T) {
	for _, f := range newFamilies(t) {
		require.NoError(t, f.s.Resolve(f.seed, f.value))
		cat := len(f.s.Catalog())
		f.s.Clear()
		_, ok := f.s.Value(f.seed)
		assert.False(t, ok, f.name)
		assert.Len(t, f.s.Catalog(), cat, f.name)
	}
}

// TestRegularPolygon_Hexagon pins hexagon closed forms: area = 3√3/2·s²,
// circumradius = s, apothem = s√3/2.
func TestRegularPolygon_Hexagon(t *testing.T) {
	hex, err := planar.NewRegularPolygon(6)
	require.NoError(t, err)
	require.NoError(t, shape.Set(hex, "side", 2))

	area, _ := hex.Value("area")
	assert.InDelta(t, 10.392304845413264, area, 1e-9)
	cr, _ := hex.Value("circumradius")
	assert.InDelta(t, 2, cr, 1e-9, "hexagon circumradius equals side")
	ap, _ := hex.Value("apothem")
	assert.InDelta(t, 1.7320508075688772, ap, 1e-9)
	ia, _ := hex.Value("interior_angle")
	assert.InDelta(t, 120, ia, 1e-12)
	ca, _ := hex.Value("central_angle")
	assert.InDelta(t, 60, ca, 1e-12)
}

// TestRegularPolygon_BadOrder rejects n < 3 at construction.
func TestRegularPolygon_BadOrder(t *testing.T) {
	_, err := planar.NewRegularPolygon(2)
	assert.ErrorIs(t, err, planar.ErrBadOrder)
	_, err = planar.NewRose(0)
	assert.ErrorIs(t, err, planar.ErrBadOrder)
}

// TestRose_PetalCounts covers the odd/even petal rule and area inverse.
func TestRose_PetalCounts(t *testing.T) {
	odd, err := planar.NewRose(3)
	require.NoError(t, err)
	n, _ := odd.Value("petal_count")
	assert.Equal(t, 3.0, n, "odd k keeps k petals")

	even, err := planar.NewRose(4)
	require.NoError(t, err)
	n, _ = even.Value("petal_count")
	assert.Equal(t, 8.0, n, "even k doubles the petals")

	require.NoError(t, shape.Set(even, "amplitude", 2))
	area, _ := even.Value("area")
	assert.InDelta(t, 6.283185307179586, area, 1e-9, "πa²/2 for even k")

	require.NoError(t, shape.Set(odd, "area", 3.141592653589793))
	a, _ := odd.Value("amplitude")
	assert.InDelta(t, 2, a, 1e-9, "πa²/4 inverse for odd k")
}

// TestSacred_DefaultedConstruction: sacred composites start resolved at
// radius 1 (defaulted), unlike every other family.
func TestSacred_DefaultedConstruction(t *testing.T) {
	seed := planar.NewSeedOfLife()
	r, ok := seed.Value("circle_radius")
	require.True(t, ok, "sacred shapes construct defaulted")
	assert.Equal(t, 1.0, r)

	count, _ := seed.Value("circle_count")
	assert.Equal(t, 7.0, count)
	bound, _ := seed.Value("bounding_radius")
	assert.Equal(t, 2.0, bound)

	flower := planar.NewFlowerOfLife()
	count, _ = flower.Value("circle_count")
	assert.Equal(t, 19.0, count)

	require.NoError(t, shape.Set(flower, "overall_diameter", 12))
	r, _ = flower.Value("circle_radius")
	assert.InDelta(t, 2, r, 1e-9, "diameter = 2·3·r for the flower")
}
