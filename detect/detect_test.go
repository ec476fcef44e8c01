package detect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/quantgeom/figura/detect"
	"github.com/quantgeom/figura/shape"
)

// TestClassify_RightTriangleScenario pins the 3-4-5 detection: a right
// triangle seeded base=3, height=4.
func TestClassify_RightTriangleScenario(t *testing.T) {
	s, err := detect.Classify([]r2.Vec{{}, {X: 3}, {Y: 4}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindRightTriangle, s.Kind())

	base, _ := s.Value("base")
	assert.InDelta(t, 3, base, 1e-9)
	height, _ := s.Value("height")
	assert.InDelta(t, 4, height, 1e-9)
	hyp, _ := s.Value("hypotenuse")
	assert.InDelta(t, 5, hyp, 1e-9)
}

// TestClassify_TriangleFamilies: equilateral beats isosceles,
// isosceles-right splits to the right triangle, the rest falls through
// to scalene.
func TestClassify_TriangleFamilies(t *testing.T) {
	eq, err := detect.Classify([]r2.Vec{{}, {X: 2}, {X: 1, Y: math.Sqrt(3)}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindEquilateralTriangle, eq.Kind())
	side, _ := eq.Value("side")
	assert.InDelta(t, 2, side, 1e-9)

	iso, err := detect.Classify([]r2.Vec{{}, {X: 4}, {X: 2, Y: 5}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindIsoscelesTriangle, iso.Kind())
	base, _ := iso.Value("base")
	assert.InDelta(t, 4, base, 1e-9)

	// Isosceles right: legs 1,1, hypotenuse √2 re-classifies as right.
	isoRight, err := detect.Classify([]r2.Vec{{}, {X: 1}, {Y: 1}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindRightTriangle, isoRight.Kind())

	sc, err := detect.Classify([]r2.Vec{{}, {X: 4}, {X: 1, Y: 2}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindScaleneTriangle, sc.Kind())
}

// TestClassify_QuadrilateralPriority: square wins over every other
// 4-point predicate; each weaker family follows in order.
func TestClassify_QuadrilateralPriority(t *testing.T) {
	sq, err := detect.Classify([]r2.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindSquare, sq.Kind())

	rect, err := detect.Classify([]r2.Vec{{}, {X: 3}, {X: 3, Y: 2}, {Y: 2}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindRectangle, rect.Kind())
	w, _ := rect.Value("width")
	assert.InDelta(t, 3, w, 1e-9)

	// Rhombus: side 5 with diagonals 8 and 6.
	rh, err := detect.Classify([]r2.Vec{{X: 4}, {Y: 3}, {X: -4}, {Y: -3}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindRhombus, rh.Kind())
	side, _ := rh.Value("side")
	assert.InDelta(t, 5, side, 1e-9)
	dl, _ := rh.Value("diagonal_long")
	assert.InDelta(t, 8, dl, 1e-9)

	// Parallelogram: base 4, side 2 at 60°.
	offset := r2.Vec{X: 2 * math.Cos(math.Pi / 3), Y: 2 * math.Sin(math.Pi / 3)}
	para, err := detect.Classify([]r2.Vec{
		{}, {X: 4},
		{X: 4 + offset.X, Y: offset.Y}, offset,
	}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindParallelogram, para.Kind())
	angle, _ := para.Value("angle")
	assert.InDelta(t, 60, angle, 1e-6)

	irr, err := detect.Classify([]r2.Vec{{}, {X: 5}, {X: 4, Y: 3}, {X: 1, Y: 2}}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindIrregularPolygon, irr.Kind())
}

// TestClassify_PolygonPathAndPointCount: 5 points build the irregular
// polygon; fewer than 3 is a hard error.
func TestClassify_PolygonPathAndPointCount(t *testing.T) {
	p, err := detect.Classify([]r2.Vec{
		{}, {X: 2}, {X: 3, Y: 2}, {X: 1, Y: 3}, {X: -1, Y: 2},
	}, detect.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, shape.KindIrregularPolygon, p.Kind())
	area, ok := p.Value("area")
	require.True(t, ok)
	assert.Greater(t, area, 0.0)

	_, err = detect.Classify([]r2.Vec{{}, {X: 1}}, detect.DefaultOptions())
	require.ErrorIs(t, err, shape.ErrPointCount)
}

// TestClassify_TolerancesAreOptions: a slightly bent square flips
// between square and irregular as SideTol narrows.
func TestClassify_TolerancesAreOptions(t *testing.T) {
	pts := []r2.Vec{{}, {X: 2.0005}, {X: 2.0005, Y: 2}, {Y: 2}}

	loose, err := detect.Classify(pts, detect.Options{SideTol: 1e-2, RightTol: 1e-2})
	require.NoError(t, err)
	assert.Equal(t, shape.KindSquare, loose.Kind())

	strict, err := detect.Classify(pts, detect.Options{SideTol: 1e-7, RightTol: 1e-7})
	require.NoError(t, err)
	assert.NotEqual(t, shape.KindSquare, strict.Kind())
}
