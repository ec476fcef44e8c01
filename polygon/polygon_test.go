package polygon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/quantgeom/figura/polygon"
	"github.com/quantgeom/figura/shape"
)

// TestIrregular_ForwardMetrics: a unit right triangle carries the
// shoelace area, perimeter and centroid.
func TestIrregular_ForwardMetrics(t *testing.T) {
	p, err := polygon.NewIrregular([]r2.Vec{{}, {X: 3}, {Y: 4}})
	require.NoError(t, err)

	area, ok := p.Value("area")
	require.True(t, ok)
	assert.InDelta(t, 6, area, 1e-12)
	per, _ := p.Value("perimeter")
	assert.InDelta(t, 12, per, 1e-12)
	cx, _ := p.Value("centroid_x")
	assert.InDelta(t, 1, cx, 1e-12)
	cy, _ := p.Value("centroid_y")
	assert.InDelta(t, 4.0/3, cy, 1e-12)
}

// TestIrregular_CoordinateEdit: moving one vertex reshapes the derived
// trio; negative coordinates are legal.
func TestIrregular_CoordinateEdit(t *testing.T) {
	p, err := polygon.NewIrregular([]r2.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}})
	require.NoError(t, err)

	area, _ := p.Value("area")
	assert.InDelta(t, 4, area, 1e-12)

	require.NoError(t, shape.Set(p, "x1", 4))
	area, _ = p.Value("area")
	assert.InDelta(t, 6, area, 1e-12)

	require.NoError(t, shape.Set(p, "x0", -2))
	area, _ = p.Value("area")
	assert.InDelta(t, 8, area, 1e-12)
}

// TestIrregular_Gates: too few points, readonly keys, unknown keys,
// non-finite coordinates.
func TestIrregular_Gates(t *testing.T) {
	_, err := polygon.NewIrregular([]r2.Vec{{}, {X: 1}})
	require.ErrorIs(t, err, shape.ErrPointCount)

	p, err := polygon.NewIrregular([]r2.Vec{{}, {X: 1}, {Y: 1}})
	require.NoError(t, err)
	require.ErrorIs(t, shape.Set(p, "area", 10), shape.ErrReadonlyKey)
	require.ErrorIs(t, shape.Set(p, "x7", 1), shape.ErrUnknownKey)
	require.ErrorIs(t, p.Resolve("x0", math.NaN()), shape.ErrNonPositive)
}

// TestIrregular_SnapshotRoundTrip: snapshots carry coordinates and
// derived values; restore rebuilds from the coordinates alone.
func TestIrregular_SnapshotRoundTrip(t *testing.T) {
	p, err := polygon.NewIrregular([]r2.Vec{{}, {X: 3}, {X: 3, Y: 2}, {Y: 2}})
	require.NoError(t, err)

	fresh, err := polygon.NewIrregular(make([]r2.Vec, 4))
	require.NoError(t, err)
	require.NoError(t, fresh.Restore(shape.Snapshot(p)))
	assert.Equal(t, shape.Snapshot(p), shape.Snapshot(fresh))

	require.ErrorIs(t, fresh.Restore(map[string]float64{"zz": 0}), shape.ErrBadSnapshot)
}
