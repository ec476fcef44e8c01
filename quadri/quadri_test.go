package quadri_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgeom/figura/quadri"
	"github.com/quantgeom/figura/shape"
)

// TestParallelogram_Scenario pins base=5, side=3, angle=60°:
// height = 3·sin 60° ≈ 2.598, area ≈ 12.99, diagonals √19 and 7 by the
// law of cosines.
func TestParallelogram_Scenario(t *testing.T) {
	p := quadri.NewParallelogram()
	require.NoError(t, shape.Set(p, "base", 5))
	require.NoError(t, shape.Set(p, "side", 3))
	require.NoError(t, shape.Set(p, "angle", 60))

	h, ok := p.Value("height")
	require.True(t, ok)
	assert.InDelta(t, 2.598, h, 1e-3)

	area, _ := p.Value("area")
	assert.InDelta(t, 12.99, area, 1e-2)

	dShort, _ := p.Value("diagonal_short")
	assert.InDelta(t, math.Sqrt(19), dShort, 1e-9)
	dLong, _ := p.Value("diagonal_long")
	assert.InDelta(t, 7, dLong, 1e-9)
}

// TestParallelogram_InfersFromHeight: side+height derive the angle, and
// a basis completed in any order reaches the same state.
func TestParallelogram_InfersFromHeight(t *testing.T) {
	p := quadri.NewParallelogram()
	require.NoError(t, shape.Set(p, "side", 3))
	require.NoError(t, shape.Set(p, "height", 1.5))

	angle, ok := p.Value("angle")
	require.True(t, ok)
	assert.InDelta(t, 30, angle, 1e-9)

	require.NoError(t, shape.Set(p, "base", 4))
	area, _ := p.Value("area")
	assert.InDelta(t, 6, area, 1e-9)
}

// TestParallelogram_Gates: height above side is infeasible, and an
// over-determined disagreeing triple is rejected with no mutation.
func TestParallelogram_Gates(t *testing.T) {
	p := quadri.NewParallelogram()
	require.NoError(t, shape.Set(p, "side", 3))

	err := shape.Set(p, "height", 4)
	require.ErrorIs(t, err, shape.ErrInfeasible)
	_, ok := p.Value("height")
	assert.False(t, ok, "rejected stage must not leak")

	require.NoError(t, shape.Set(p, "angle", 60))
	// height is now derived; a disagreeing re-stage must be rejected.
	err = shape.Set(p, "height", 1)
	require.ErrorIs(t, err, shape.ErrInfeasible)
	h, _ := p.Value("height")
	assert.InDelta(t, 3*math.Sin(math.Pi/3), h, 1e-9, "prior state intact")
}

// TestRhombus_DiagonalsDeriveSideAndAngle: p=8, q=6 gives side 5 and the
// acute angle 2·atan(6/8); supplying them unsorted canonicalizes.
func TestRhombus_DiagonalsDeriveSideAndAngle(t *testing.T) {
	r := quadri.NewRhombus()
	require.NoError(t, shape.Set(r, "diagonal_long", 6))
	require.NoError(t, shape.Set(r, "diagonal_short", 8))

	long, _ := r.Value("diagonal_long")
	short, _ := r.Value("diagonal_short")
	assert.InDelta(t, 8, long, 1e-12, "diagonals sorted long ≥ short")
	assert.InDelta(t, 6, short, 1e-12)

	side, ok := r.Value("side")
	require.True(t, ok)
	assert.InDelta(t, 5, side, 1e-9)

	angle, _ := r.Value("angle")
	assert.InDelta(t, 2*math.Atan2(6, 8)/(math.Pi/180), angle, 1e-9)

	area, _ := r.Value("area")
	assert.InDelta(t, 24, area, 1e-9)
	inr, _ := r.Value("inradius")
	assert.InDelta(t, 2.4, inr, 1e-9)
}

// TestRhombus_ObtuseAngleCanonicalizes: 120° folds to the acute 60°.
func TestRhombus_ObtuseAngleCanonicalizes(t *testing.T) {
	r := quadri.NewRhombus()
	require.NoError(t, shape.Set(r, "side", 2))
	require.NoError(t, shape.Set(r, "angle", 120))

	angle, _ := r.Value("angle")
	assert.InDelta(t, 60, angle, 1e-9)
	height, _ := r.Value("height")
	assert.InDelta(t, 2*math.Sin(math.Pi/3), height, 1e-9)
}

// TestRhombus_DiagonalGate: a diagonal at or above 2·side cannot close.
func TestRhombus_DiagonalGate(t *testing.T) {
	r := quadri.NewRhombus()
	require.NoError(t, shape.Set(r, "side", 2))
	err := shape.Set(r, "diagonal_long", 4.5)
	require.ErrorIs(t, err, shape.ErrInfeasible)
	_, ok := r.Value("diagonal_long")
	assert.False(t, ok)
}

// TestTrapezoid_FourSideClosure: bases 10/4 with legs 5/5 place the
// height at 4 (two 3-4-5 corner triangles).
func TestTrapezoid_FourSideClosure(t *testing.T) {
	tr := quadri.NewTrapezoid()
	require.NoError(t, shape.Set(tr, "base_long", 10))
	require.NoError(t, shape.Set(tr, "base_short", 4))
	require.NoError(t, shape.Set(tr, "leg_left", 5))
	require.NoError(t, shape.Set(tr, "leg_right", 5))

	h, ok := tr.Value("height")
	require.True(t, ok)
	assert.InDelta(t, 4, h, 1e-9)
	area, _ := tr.Value("area")
	assert.InDelta(t, 28, area, 1e-9)
	mid, _ := tr.Value("midsegment")
	assert.InDelta(t, 7, mid, 1e-9)
	per, _ := tr.Value("perimeter")
	assert.InDelta(t, 24, per, 1e-9)
}

// TestTrapezoid_Gates: inverted bases and a non-closing side multiset
// are infeasible; a staged height disagreeing with the closure is too.
func TestTrapezoid_Gates(t *testing.T) {
	tr := quadri.NewTrapezoid()
	require.NoError(t, shape.Set(tr, "base_long", 4))
	require.ErrorIs(t, shape.Set(tr, "base_short", 6), shape.ErrInfeasible)

	tr = quadri.NewTrapezoid()
	require.NoError(t, shape.Set(tr, "base_long", 10))
	require.NoError(t, shape.Set(tr, "base_short", 4))
	require.NoError(t, shape.Set(tr, "leg_left", 1))
	require.ErrorIs(t, shape.Set(tr, "leg_right", 1), shape.ErrInfeasible)

	tr = quadri.NewTrapezoid()
	require.NoError(t, shape.Set(tr, "height", 1))
	require.NoError(t, shape.Set(tr, "base_long", 10))
	require.NoError(t, shape.Set(tr, "base_short", 4))
	require.NoError(t, shape.Set(tr, "leg_left", 5))
	require.ErrorIs(t, shape.Set(tr, "leg_right", 5), shape.ErrInfeasible)
}

// TestIsoTrapezoid_LegHeightRules: bases 10/4 with leg 5 derive height 4
// and the symmetric diagonal √(h² + ((a+b)/2)²).
func TestIsoTrapezoid_LegHeightRules(t *testing.T) {
	tr := quadri.NewIsoTrapezoid()
	require.NoError(t, shape.Set(tr, "base_long", 10))
	require.NoError(t, shape.Set(tr, "base_short", 4))
	require.NoError(t, shape.Set(tr, "leg", 5))

	h, ok := tr.Value("height")
	require.True(t, ok)
	assert.InDelta(t, 4, h, 1e-9)
	diag, _ := tr.Value("diagonal")
	assert.InDelta(t, math.Hypot(4, 7), diag, 1e-9)
	per, _ := tr.Value("perimeter")
	assert.InDelta(t, 24, per, 1e-9)

	// Height-first derives the leg instead.
	tr2 := quadri.NewIsoTrapezoid()
	require.NoError(t, shape.Set(tr2, "base_long", 10))
	require.NoError(t, shape.Set(tr2, "base_short", 4))
	require.NoError(t, shape.Set(tr2, "height", 4))
	leg, _ := tr2.Value("leg")
	assert.InDelta(t, 5, leg, 1e-9)
}

// TestIsoTrapezoid_LegTooShort: a leg that cannot span the base overhang
// is infeasible.
func TestIsoTrapezoid_LegTooShort(t *testing.T) {
	tr := quadri.NewIsoTrapezoid()
	require.NoError(t, shape.Set(tr, "base_long", 10))
	require.NoError(t, shape.Set(tr, "base_short", 4))
	require.ErrorIs(t, shape.Set(tr, "leg", 2), shape.ErrInfeasible)
}

// TestRectangle_InverseEntry: each aggregate inverts to the missing
// dimension once the other is known.
func TestRectangle_InverseEntry(t *testing.T) {
	r := quadri.NewRectangle()
	require.NoError(t, shape.Set(r, "width", 3))
	require.NoError(t, shape.Set(r, "area", 12))
	h, _ := r.Value("height")
	assert.InDelta(t, 4, h, 1e-9)
	diag, _ := r.Value("diagonal")
	assert.InDelta(t, 5, diag, 1e-9)

	r = quadri.NewRectangle()
	require.NoError(t, shape.Set(r, "height", 4))
	require.NoError(t, shape.Set(r, "diagonal", 5))
	w, _ := r.Value("width")
	assert.InDelta(t, 3, w, 1e-9)

	r = quadri.NewRectangle()
	require.NoError(t, shape.Set(r, "width", 3))
	require.NoError(t, shape.Set(r, "perimeter", 14))
	h, _ = r.Value("height")
	assert.InDelta(t, 4, h, 1e-9)
}

// TestRectangle_InverseEntryGates: aggregates without a known dimension
// wait on the basis; out-of-domain inversions are infeasible.
func TestRectangle_InverseEntryGates(t *testing.T) {
	r := quadri.NewRectangle()
	require.ErrorIs(t, shape.Set(r, "area", 12), shape.ErrUnsetParameter)

	require.NoError(t, shape.Set(r, "width", 3))
	require.ErrorIs(t, shape.Set(r, "diagonal", 2), shape.ErrInfeasible)
	require.ErrorIs(t, shape.Set(r, "perimeter", 5), shape.ErrInfeasible)

	// Full basis: an aggregate is accepted only when consistent.
	require.NoError(t, shape.Set(r, "height", 4))
	require.NoError(t, shape.Set(r, "area", 12))
	require.ErrorIs(t, shape.Set(r, "area", 13), shape.ErrInfeasible)
}

// TestQuadri_RejectNonPositive: every resolver in the package refuses
// non-positive input with no mutation.
func TestQuadri_RejectNonPositive(t *testing.T) {
	shapes := []struct {
		s   shape.Shape
		key string
	}{
		{quadri.NewParallelogram(), "base"},
		{quadri.NewRhombus(), "side"},
		{quadri.NewTrapezoid(), "base_long"},
		{quadri.NewIsoTrapezoid(), "leg"},
		{quadri.NewRectangle(), "width"},
		{quadri.NewKite(), "side_a"},
		{quadri.NewDart(), "side_b"},
		{quadri.NewCyclic(), "side_a"},
		{quadri.NewTangential(), "side_b"},
		{quadri.NewBicentric(), "side_c"},
		{quadri.NewByDiagonals(), "diagonal_p"},
	}
	for _, entry := range shapes {
		for _, bad := range []float64{0, -1, math.Inf(1), math.NaN()} {
			err := entry.s.Resolve(entry.key, bad)
			assert.ErrorIs(t, err, shape.ErrNonPositive, "%s %v", entry.s.Kind(), bad)
			_, ok := entry.s.Value(entry.key)
			assert.False(t, ok, "%s: no mutation on rejection", entry.s.Kind())
		}
	}
}

// TestQuadri_Idempotence: resolving the same key/value twice yields the
// identical snapshot.
func TestQuadri_Idempotence(t *testing.T) {
	p := quadri.NewParallelogram()
	require.NoError(t, shape.Set(p, "base", 5))
	require.NoError(t, shape.Set(p, "side", 3))
	require.NoError(t, shape.Set(p, "angle", 60))
	first := shape.Snapshot(p)

	require.NoError(t, shape.Set(p, "angle", 60))
	assert.Equal(t, first, shape.Snapshot(p))
}

// TestQuadri_SnapshotRoundTrip: a solved rhombus survives a snapshot
// restore into a fresh instance.
func TestQuadri_SnapshotRoundTrip(t *testing.T) {
	r := quadri.NewRhombus()
	require.NoError(t, shape.Set(r, "side", 5))
	require.NoError(t, shape.Set(r, "angle", 73))

	fresh := quadri.NewRhombus()
	require.NoError(t, fresh.Restore(shape.Snapshot(r)))
	assert.Equal(t, shape.Snapshot(r), shape.Snapshot(fresh))
}
