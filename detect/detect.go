package detect

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/planar"
	"github.com/quantgeom/figura/polygon"
	"github.com/quantgeom/figura/quadri"
	"github.com/quantgeom/figura/shape"
	"github.com/quantgeom/figura/triangle"
)

// Options carries the measurement tolerances of the classifier.
type Options struct {
	// SideTol is the relative tolerance for treating two measured
	// lengths as equal.
	SideTol float64
	// RightTol is the relative tolerance of the Pythagorean test.
	RightTol float64
}

// DefaultOptions returns the standard detection tolerances.
func DefaultOptions() Options {
	return Options{SideTol: 1e-4, RightTol: 1e-4}
}

func (o Options) normalize() Options {
	if o.SideTol <= 0 {
		o.SideTol = DefaultOptions().SideTol
	}
	if o.RightTol <= 0 {
		o.RightTol = DefaultOptions().RightTol
	}
	return o
}

// Classify measures pts and seeds the most specific matching family:
// triangle families for 3 points, quadrilateral families for 4, the
// irregular polygon for 5 or more. The priority order is the tie-break
// policy; the first matching predicate wins.
func Classify(pts []r2.Vec, opts Options) (shape.Shape, error) {
	opts = opts.normalize()
	switch {
	case len(pts) < 3:
		return nil, fmt.Errorf("detect: %d points below 3: %w", len(pts), shape.ErrPointCount)
	case len(pts) == 3:
		return classifyTriangle(pts, opts)
	case len(pts) == 4:
		return classifyQuadrilateral(pts, opts)
	default:
		return polygon.NewIrregular(pts)
	}
}

// classifyTriangle tests, in order: equilateral, isosceles (split
// right/plain by base ≈ leg·√2), right, scalene.
func classifyTriangle(pts []r2.Vec, opts Options) (shape.Shape, error) {
	a := geom.Dist(pts[0], pts[1])
	b := geom.Dist(pts[1], pts[2])
	c := geom.Dist(pts[2], pts[0])
	// Ascending: a ≤ b ≤ c.
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	equal := func(x, y float64) bool { return geom.EqualRel(x, y, opts.SideTol) }

	switch {
	case equal(a, c):
		s := triangle.NewEquilateral()
		return s, shape.Set(s, "side", (a+b+c)/3)

	case equal(a, b) || equal(b, c):
		leg, base := a, c
		if equal(b, c) {
			leg, base = c, a
		}
		if geom.EqualRel(base, leg*math.Sqrt2, opts.RightTol) {
			s := triangle.NewRight()
			if err := shape.Set(s, "base", leg); err != nil {
				return nil, err
			}
			return s, shape.Set(s, "height", leg)
		}
		s := triangle.NewIsosceles()
		if err := shape.Set(s, "base", base); err != nil {
			return nil, err
		}
		return s, shape.Set(s, "leg", leg)

	case geom.EqualRel(a*a+b*b, c*c, opts.RightTol):
		s := triangle.NewRight()
		if err := shape.Set(s, "base", a); err != nil {
			return nil, err
		}
		return s, shape.Set(s, "height", b)

	default:
		s := triangle.NewScalene()
		if err := shape.Set(s, "side_a", a); err != nil {
			return nil, err
		}
		if err := shape.Set(s, "side_b", b); err != nil {
			return nil, err
		}
		return s, shape.Set(s, "side_c", c)
	}
}

// classifyQuadrilateral tests, in order: square, rectangle, rhombus,
// parallelogram, irregular quadrilateral.
func classifyQuadrilateral(pts []r2.Vec, opts Options) (shape.Shape, error) {
	var sides [4]float64
	for i := range pts {
		sides[i] = geom.Dist(pts[i], pts[(i+1)%4])
	}
	d02 := geom.Dist(pts[0], pts[2])
	d13 := geom.Dist(pts[1], pts[3])

	equal := func(x, y float64) bool { return geom.EqualRel(x, y, opts.SideTol) }
	allEqual := equal(sides[0], sides[1]) && equal(sides[1], sides[2]) && equal(sides[2], sides[3])
	oppositeEqual := equal(sides[0], sides[2]) && equal(sides[1], sides[3])
	diagEqual := equal(d02, d13)

	switch {
	case allEqual && diagEqual:
		s := planar.NewSquare()
		return s, shape.Set(s, "side", mean(sides[:]))

	case oppositeEqual && diagEqual:
		s := quadri.NewRectangle()
		if err := shape.Set(s, "width", (sides[0]+sides[2])/2); err != nil {
			return nil, err
		}
		return s, shape.Set(s, "height", (sides[1]+sides[3])/2)

	case allEqual:
		s := quadri.NewRhombus()
		if err := shape.Set(s, "side", mean(sides[:])); err != nil {
			return nil, err
		}
		return s, shape.Set(s, "diagonal_long", math.Max(d02, d13))

	case oppositeEqual:
		s := quadri.NewParallelogram()
		if err := shape.Set(s, "base", (sides[0]+sides[2])/2); err != nil {
			return nil, err
		}
		if err := shape.Set(s, "side", (sides[1]+sides[3])/2); err != nil {
			return nil, err
		}
		return s, shape.Set(s, "angle", vertexAngleDeg(pts[1], pts[0], pts[3]))

	default:
		return polygon.NewIrregular(pts)
	}
}

func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// vertexAngleDeg measures the interior angle at o between rays o→p and
// o→q.
func vertexAngleDeg(p, o, q r2.Vec) float64 {
	u := r2.Sub(p, o)
	w := r2.Sub(q, o)
	dot := u.X*w.X + u.Y*w.Y
	cross := u.X*w.Y - u.Y*w.X
	return math.Abs(math.Atan2(cross, dot)) * 180 / math.Pi
}
